// Package css renders rules built from selector package output and checks
// rendered selectors with tdewolff CSS tokenizer.
package css

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"objkit/selector"
)

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   string           // Rendered selector
	Properties map[string]Value // Property name -> value
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string // Lint warnings for added selectors and values

	linter *Linter
}

// NewStylesheet creates empty stylesheet. Every added selector and property
// value is linted, findings are kept in Warnings.
func NewStylesheet(log *zap.Logger) *Stylesheet {
	return &Stylesheet{linter: NewLinter(log)}
}

// Add builds sel (resetting it) and appends rule with parsed property
// values. Properties for a selector already present are merged into its rule,
// later values win. Selector errors are returned, nothing is added in that
// case.
func (s *Stylesheet) Add(sel *selector.Selector, props map[string]string) error {
	text, err := sel.Build()
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	if s.linter == nil {
		s.linter = NewLinter(nil)
	}

	rule := s.find(text)
	if rule == nil {
		for _, w := range s.linter.Lint(text) {
			s.Warnings = append(s.Warnings, text+": "+w)
		}
		s.Rules = append(s.Rules, Rule{Selector: text, Properties: make(map[string]Value, len(props))})
		rule = &s.Rules[len(s.Rules)-1]
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := ParseValue(props[name])
		name = strings.ToLower(strings.TrimSpace(name))
		for _, w := range s.linter.LintValue(name, v) {
			s.Warnings = append(s.Warnings, text+": "+w)
		}
		rule.Properties[name] = v
	}
	return nil
}

func (s *Stylesheet) find(sel string) *Rule {
	for i := range s.Rules {
		if s.Rules[i].Selector == sel {
			return &s.Rules[i]
		}
	}
	return nil
}

// WriteTo writes the stylesheet to w in insertion order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]Value) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "  %s: %s;\n", name, props[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
