package style

import (
	"fmt"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are never case-folded; STML
// passes them through as written by the author.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Declaration returns a CSS declaration "key: value".
func (kv KeyValue) Declaration() string {
	return kv.Key + ": " + kv.Value.String()
}

// Rank is the specificity of a property write. Lower ranks take precedence.
type Rank int

// Ranks used by the STML attribute vocabulary.
const (
	RankExact     Rank = 0 // attribute addresses exactly this property
	RankAxis      Rank = 1 // attribute addresses two sides at once
	RankShorthand Rank = 2 // attribute is a CSS shorthand
)

type rankedProperty struct {
	value Property
	rank  Rank
}

// PropertySet holds the CSS properties of a single element. It remembers the
// order in which properties have first been set. The zero value is an empty
// set, ready to use. nil is a legal (empty) set for all read operations.
type PropertySet struct {
	keys  []string
	props map[string]rankedProperty
}

// NewPropertySet returns a new empty property set.
func NewPropertySet() *PropertySet {
	return &PropertySet{}
}

// Set writes a property with a given rank. If the property is already present
// with a lower rank, the write is dropped and Set returns false. Otherwise the
// value is replaced, but the property keeps its position.
func (ps *PropertySet) Set(key string, p Property, rank Rank) bool {
	if ps.props == nil {
		ps.props = make(map[string]rankedProperty)
	}
	if current, ok := ps.props[key]; ok {
		if rank > current.rank {
			tracer().Debugf("styling: %s=%s (rank %d) shadowed by %s (rank %d)",
				key, p, rank, current.value, current.rank)
			return false
		}
	} else {
		ps.keys = append(ps.keys, key)
	}
	ps.props[key] = rankedProperty{value: p, rank: rank}
	return true
}

// Get a property's value.
func (ps *PropertySet) Get(key string) (Property, bool) {
	if ps == nil || ps.props == nil {
		return NullStyle, false
	}
	rp, ok := ps.props[key]
	return rp.value, ok
}

// IsSet is a predicate: has a property been written?
func (ps *PropertySet) IsSet(key string) bool {
	_, ok := ps.Get(key)
	return ok
}

// Len returns the number of properties.
func (ps *PropertySet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.keys)
}

// Properties returns all properties in order of creation.
func (ps *PropertySet) Properties() []KeyValue {
	if ps == nil {
		return nil
	}
	r := make([]KeyValue, len(ps.keys))
	for i, k := range ps.keys {
		r[i] = KeyValue{k, ps.props[k].value}
	}
	return r
}

// Declarations returns all properties as CSS declarations "key: value",
// in order of creation.
func (ps *PropertySet) Declarations() []string {
	props := ps.Properties()
	decl := make([]string, len(props))
	for i, kv := range props {
		decl[i] = kv.Declaration()
	}
	return decl
}

// String returns the declarations of a set, separated by "; ".
func (ps *PropertySet) String() string {
	return strings.Join(ps.Declarations(), "; ")
}

// GoString is used for debugging.
func (ps *PropertySet) GoString() string {
	var b strings.Builder
	b.WriteString("PropertySet{")
	for i, kv := range ps.Properties() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s/%d", kv.Key, kv.Value, ps.props[kv.Key].rank)
	}
	b.WriteString("}")
	return b.String()
}
