package htmlnode

import "strings"

// Attr is a single name/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an attribute mapping that remembers insertion order so
// rendering is deterministic.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes builds an attribute set from the supplied pairs. Calling it
// with no arguments yields a present-but-empty set.
func NewAttributes(attrs ...Attr) *Attributes {
	a := &Attributes{values: make(map[string]string, len(attrs))}
	for _, attr := range attrs {
		a.Set(attr.Key, attr.Value)
	}
	return a
}

func attributesFrom(attrs []Attr) *Attributes {
	if len(attrs) == 0 {
		return nil
	}
	return NewAttributes(attrs...)
}

// Set stores value under key. Existing keys keep their original position.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = map[string]string{}
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	value, ok := a.values[key]
	return value, ok
}

// Len reports the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Pairs returns the attributes in insertion order.
func (a *Attributes) Pairs() []Attr {
	if a == nil {
		return nil
	}
	out := make([]Attr, 0, len(a.keys))
	for _, key := range a.keys {
		out = append(out, Attr{Key: key, Value: a.values[key]})
	}
	return out
}

// String renders the attribute list as it appears inside an opening tag.
// A nil set renders as "", an empty set as a single space.
func (a *Attributes) String() string {
	var b strings.Builder
	a.write(&b)
	return b.String()
}

func (a *Attributes) write(b *strings.Builder) {
	if a == nil {
		return
	}
	if len(a.keys) == 0 {
		b.WriteByte(' ')
		return
	}
	for _, key := range a.keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(a.values[key])
		b.WriteByte('"')
	}
}
