package ast

import "strings"

// Attr is a single name=value pair.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute map. Keys are unique; setting an existing
// key replaces its value but keeps its original position, so iteration follows
// the order in which keys first appeared.
//
// The zero value is an empty attribute map, ready to use.
type Attributes struct {
	list  []Attr
	index map[string]int
}

// NewAttributes folds attrs left to right into an attribute map.
func NewAttributes(attrs ...Attr) Attributes {
	var a Attributes
	for _, at := range attrs {
		a.Set(at.Key, at.Value)
	}
	return a
}

// Set sets the value for key. It is meant to be used while building a tree;
// attribute maps of a parsed document are not modified afterwards.
func (a *Attributes) Set(key, value string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[key]; ok {
		a.list[i].Value = value
		return
	}
	a.index[key] = len(a.list)
	a.list = append(a.list, Attr{Key: key, Value: value})
}

// Get returns the value for key and whether key is present.
func (a Attributes) Get(key string) (string, bool) {
	if i, ok := a.index[key]; ok {
		return a.list[i].Value, true
	}
	return "", false
}

// Has is a predicate: is key present?
func (a Attributes) Has(key string) bool {
	_, ok := a.index[key]
	return ok
}

// Len returns the number of distinct keys.
func (a Attributes) Len() int {
	return len(a.list)
}

// List returns the attributes in insertion order.
func (a Attributes) List() []Attr {
	l := make([]Attr, len(a.list))
	copy(l, a.list)
	return l
}

func (a Attributes) String() string {
	var b strings.Builder
	for _, at := range a.list {
		b.WriteByte(' ')
		b.WriteString(at.Key)
		b.WriteByte('=')
		b.WriteString(at.Value)
	}
	return b.String()
}
