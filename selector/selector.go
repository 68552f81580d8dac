// Package selector builds CSS selector strings with a fluent API.
//
//	b := selector.NewBuilder(nil)
//	b.ID("main").Class("container").Class("editable").String()
//	    => "#main.container.editable"
//
//	b.Combine(
//	    b.Element("div").ID("main"),
//	    selector.Adjacent,
//	    b.Element("table").ID("data"),
//	).String()
//	    => "div#main + table#data"
//
// Parts must be added in order: element, id, class, attribute, pseudo-class,
// pseudo-element; element, id and pseudo-element at most once. Violations are
// recorded in the selector and reported by Err and Build, the chain itself
// never breaks.
//
// This is not a CSS parser and values are used verbatim, no escaping is
// done.
package selector

import (
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type part struct {
	limited bool
	prefix  string
	suffix  string
}

// indexed by Category, rank is the index itself
var parts = [...]part{
	CategoryElement:       {limited: true},
	CategoryId:            {limited: true, prefix: "#"},
	CategoryClass:         {prefix: "."},
	CategoryAttribute:     {prefix: "[", suffix: "]"},
	CategoryPseudoClass:   {prefix: ":"},
	CategoryPseudoElement: {limited: true, prefix: "::"},
}

// Builder is a facade producing independent selectors. Zero value is ready
// to use and does not log.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns builder which reports rejected parts to log.
func NewBuilder(log *zap.Logger) Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return Builder{log: log.Named("selector")}
}

// New returns empty selector.
func (b Builder) New() *Selector {
	log := b.log
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{log: log}
}

func (b Builder) Element(value string) *Selector       { return b.New().Element(value) }
func (b Builder) ID(value string) *Selector            { return b.New().ID(value) }
func (b Builder) Class(value string) *Selector         { return b.New().Class(value) }
func (b Builder) Attr(value string) *Selector          { return b.New().Attr(value) }
func (b Builder) PseudoClass(value string) *Selector   { return b.New().PseudoClass(value) }
func (b Builder) PseudoElement(value string) *Selector { return b.New().PseudoElement(value) }

// Combine produces new selector "<left> <combinator> <right>". Both sides are
// stringified (and therefore reset). Result has no part tracking of its own,
// parts added to it later are appended without order checks against the
// combined text. Errors of both sides are carried over.
func (b Builder) Combine(left *Selector, combinator Combinator, right *Selector) *Selector {
	s := b.New()
	s.err = multierr.Append(left.Err(), right.Err())

	s.text.WriteString(left.String())
	s.text.WriteByte(' ')
	s.text.WriteString(string(combinator))
	s.text.WriteByte(' ')
	s.text.WriteString(right.String())
	return s
}

// Selector accumulates parts of a single selector. Not safe for concurrent
// use.
type Selector struct {
	log  *zap.Logger
	used []Category
	seen [len(parts)]bool
	text strings.Builder
	err  error
}

func (s *Selector) Element(value string) *Selector       { return s.Add(CategoryElement, value) }
func (s *Selector) ID(value string) *Selector            { return s.Add(CategoryId, value) }
func (s *Selector) Class(value string) *Selector         { return s.Add(CategoryClass, value) }
func (s *Selector) Attr(value string) *Selector          { return s.Add(CategoryAttribute, value) }
func (s *Selector) PseudoClass(value string) *Selector   { return s.Add(CategoryPseudoClass, value) }
func (s *Selector) PseudoElement(value string) *Selector { return s.Add(CategoryPseudoElement, value) }

// Add appends part of requested category. After the first rejected part the
// selector is broken and all further calls are ignored until it is reset by
// String or Build.
func (s *Selector) Add(cat Category, value string) *Selector {
	if s.err != nil {
		return s
	}
	if err := s.check(cat); err != nil {
		s.err = &PartError{Category: cat, Value: value, Err: err}
		s.logger().Debug("Selector part rejected",
			zap.Stringer("category", cat), zap.String("value", value),
			zap.String("selector", s.text.String()), zap.Error(err))
		return s
	}

	s.used = append(s.used, cat)
	if parts[cat].limited {
		s.seen[cat] = true
	}
	s.text.WriteString(cat.Format(value))
	return s
}

func (s *Selector) logger() *zap.Logger {
	if s.log == nil {
		return zap.NewNop()
	}
	return s.log
}

// check verifies cardinality first, then order. Since accepted categories
// never decrease it is enough to compare against the last one.
func (s *Selector) check(cat Category) error {
	if !cat.IsValid() {
		return ErrInvalidCategory
	}
	if parts[cat].limited && s.seen[cat] {
		return ErrDuplicatePart
	}
	if n := len(s.used); n > 0 && s.used[n-1] > cat {
		return ErrOrder
	}
	return nil
}

// Err returns the error which broke the selector, if any.
func (s *Selector) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Categories returns categories of accepted parts in order they were added.
func (s *Selector) Categories() []Category {
	if s == nil {
		return nil
	}
	return append([]Category(nil), s.used...)
}

// String returns accumulated text and resets the selector, so the same
// handle may be used to build unrelated selector afterwards. Note that
// formatting with %v or %s also resets it.
func (s *Selector) String() string {
	if s == nil {
		return ""
	}
	out := s.text.String()
	s.reset()
	return out
}

// Build is String which reports error instead of partially built text.
func (s *Selector) Build() (string, error) {
	err := s.Err()
	out := s.String()
	if err != nil {
		return "", err
	}
	return out, nil
}

// MustString is like Build but panics on error. Intended for selectors known
// at compile time.
func (s *Selector) MustString() string {
	out, err := s.Build()
	if err != nil {
		panic(err)
	}
	return out
}

func (s *Selector) reset() {
	s.used = s.used[:0]
	s.seen = [len(parts)]bool{}
	s.text.Reset()
	s.err = nil
}
