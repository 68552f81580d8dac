package selector

// Kind of selector part. Values are declared in the order parts must appear
// inside a single compound selector.
// ENUM(element, id, class, attribute, pseudo-class, pseudo-element)
type Category int

// Limited returns true for categories allowed at most once per selector.
func (x Category) Limited() bool {
	return x.IsValid() && parts[x].limited
}

// Format decorates part value the way it appears in selector text.
func (x Category) Format(value string) string {
	if !x.IsValid() {
		return value
	}
	p := parts[x]
	return p.prefix + value + p.suffix
}

// Combinator joins two complete selectors. Combine always puts a single
// space on both sides of it, so Descendant yields three spaces:
// "a" Descendant "b" => "a   b".
type Combinator string

const (
	Descendant Combinator = " "
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
	Child      Combinator = ">"
)
