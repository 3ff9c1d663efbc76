package interfaces

import "context"

// Logger is the leveled logger every sitegen component writes to. Arguments
// after the message are alternating key/value pairs. The method set matches
// go-logger's glog.Logger so its loggers can be adapted one to one.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name (sitegen, sitegen.markdown, ...).
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can carry fields across calls.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
