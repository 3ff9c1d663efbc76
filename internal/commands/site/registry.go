package sitecmd

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract used when wiring handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterSiteCommands.
type HandlerSet struct {
	Build  *BuildSiteHandler
	Render *RenderFileHandler
}

// RegisterSiteCommands builds the site handlers and registers them with reg
// when it is not nil.
func RegisterSiteCommands(reg CommandRegistry, service generator.Service, parse interfaces.ParseOptions, provider interfaces.LoggerProvider) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("site command registration: generator service is nil")
	}

	logger := commands.CommandLogger(provider, "site")
	set := &HandlerSet{
		Build:  NewBuildSiteHandler(service, logger),
		Render: NewRenderFileHandler(parse, logger),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Build); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Render); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// DispatcherRegistry subscribes site handlers to the process wide go-command
// dispatcher so messages can be sent with dispatcher.Dispatch.
type DispatcherRegistry struct {
	// RunnerOptions apply to every subscription, e.g. runner.WithMaxRetries.
	RunnerOptions []runner.Option
	unsubscribe   []func()
}

// RegisterCommand implements CommandRegistry.
func (r *DispatcherRegistry) RegisterCommand(handler any) error {
	switch h := handler.(type) {
	case *BuildSiteHandler:
		sub := dispatcher.SubscribeCommand[BuildSiteCommand](h, r.RunnerOptions...)
		r.unsubscribe = append(r.unsubscribe, sub.Unsubscribe)
	case *RenderFileHandler:
		sub := dispatcher.SubscribeCommand[RenderFileCommand](h, r.RunnerOptions...)
		r.unsubscribe = append(r.unsubscribe, sub.Unsubscribe)
	default:
		return fmt.Errorf("site command registration: unsupported handler %T", handler)
	}
	return nil
}

// Close removes every subscription made through the registry.
func (r *DispatcherRegistry) Close() {
	for _, fn := range r.unsubscribe {
		fn()
	}
	r.unsubscribe = nil
}
