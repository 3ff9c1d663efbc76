package htmlnode

import (
	"strings"
)

// Node is implemented by the two shapes of the output tree: *Leaf and *Parent.
// Rendering never mutates the receiver, so a tree can be rendered repeatedly.
type Node interface {
	Render() (string, error)
	render(b *strings.Builder) error
}

// Leaf is a text unit, optionally wrapped in a tag. A leaf without a tag
// renders as its raw value.
type Leaf struct {
	Tag   string
	Value *string
	Attrs *Attributes
}

// Parent is a tag that exclusively owns an ordered list of child nodes.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    *Attributes
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// NewLeaf returns a leaf with the given tag and value. Attributes are only
// allocated when at least one pair is supplied.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{
		Tag:   tag,
		Value: &value,
		Attrs: attributesFrom(attrs),
	}
}

// NewText returns a tagless leaf holding literal text.
func NewText(value string) *Leaf {
	return NewLeaf("", value)
}

// NewParent returns a parent node. A nil children slice is kept as-is so the
// structural check at render time can report it.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{
		Tag:      tag,
		Children: children,
		Attrs:    attributesFrom(attrs),
	}
}

// Render returns the HTML for the leaf.
func (l *Leaf) Render() (string, error) {
	var b strings.Builder
	if err := l.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) render(b *strings.Builder) error {
	if l.Value == nil {
		return structuralError(ErrLeafValueMissing, l.Tag)
	}
	if l.Tag == "" {
		b.WriteString(*l.Value)
		return nil
	}
	b.WriteByte('<')
	b.WriteString(l.Tag)
	l.Attrs.write(b)
	b.WriteByte('>')
	b.WriteString(*l.Value)
	b.WriteString("</")
	b.WriteString(l.Tag)
	b.WriteByte('>')
	return nil
}

// Render returns the HTML for the parent and every descendant.
func (p *Parent) Render() (string, error) {
	var b strings.Builder
	if err := p.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) render(b *strings.Builder) error {
	if p.Tag == "" {
		return structuralError(ErrParentTagMissing, "")
	}
	if p.Children == nil {
		return structuralError(ErrParentChildrenMissing, p.Tag)
	}

	b.WriteByte('<')
	b.WriteString(p.Tag)
	p.Attrs.write(b)
	b.WriteByte('>')
	for _, child := range p.Children {
		if child == nil {
			return structuralError(ErrChildNil, p.Tag)
		}
		if err := child.render(b); err != nil {
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(p.Tag)
	b.WriteByte('>')
	return nil
}

// Render is a convenience wrapper so callers holding a Node interface value
// can treat a nil node as a structural error instead of panicking.
func Render(node Node) (string, error) {
	if node == nil {
		return "", structuralError(ErrChildNil, "")
	}
	return node.Render()
}

// WalkFunc is invoked for every node visited by Walk. Returning false skips
// the children of a parent.
type WalkFunc func(node Node, depth int) bool

// Walk visits node and its descendants depth-first in child order.
func Walk(node Node, fn WalkFunc) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn WalkFunc) {
	if node == nil || fn == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	parent, ok := node.(*Parent)
	if !ok {
		return
	}
	for _, child := range parent.Children {
		walk(child, depth+1, fn)
	}
}
