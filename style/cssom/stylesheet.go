package cssom

import (
	"strings"

	"github.com/npillmayer/stml/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// FormatRule formats a rule on a single line:
//
//     .big { font-size: 20px; color: red }
//
func FormatRule(r Rule) string {
	var b strings.Builder
	b.WriteString(r.Selector())
	b.WriteString(" { ")
	for i, key := range r.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(r.Value(key).String())
		if r.IsImportant(key) {
			b.WriteString(" !important")
		}
	}
	b.WriteString(" }")
	return b.String()
}

// Format formats the rules of a stylesheet, one rule per line. Lines are
// separated by newlines; there is no trailing newline.
func Format(sheet StyleSheet) string {
	if sheet == nil || sheet.Empty() {
		return ""
	}
	rules := sheet.Rules()
	lines := make([]string, len(rules))
	for i, r := range rules {
		lines[i] = FormatRule(r)
	}
	return strings.Join(lines, "\n")
}
