package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Linter checks rendered selectors for tokens which cannot appear in a
// selector. It does not try to understand selector structure.
type Linter struct {
	log *zap.Logger
}

// NewLinter creates a new selector linter.
func NewLinter(log *zap.Logger) *Linter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Linter{log: log.Named("css-lint")}
}

var closers = map[css.TokenType]byte{
	css.LeftBracketToken:     ']',
	css.LeftParenthesisToken: ')',
	css.FunctionToken:        ')',
}

// Lint returns human readable findings, nil when selector looks fine.
func (l *Linter) Lint(sel string) []string {
	if strings.TrimSpace(sel) == "" {
		return []string{"empty selector"}
	}

	var (
		warnings []string
		open     []byte
	)
	warn := func(format string, args ...any) {
		w := fmt.Sprintf(format, args...)
		l.log.Debug("Selector lint", zap.String("selector", sel), zap.String("warning", w))
		warnings = append(warnings, w)
	}

	lexer := css.NewLexer(parse.NewInputString(sel))
	for {
		tt, data := lexer.Next()

		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				warn("tokenizer error: %v", err)
			}
			for i := len(open) - 1; i >= 0; i-- {
				warn("unclosed '%c'", open[i])
			}
			return warnings

		case css.LeftBracketToken, css.LeftParenthesisToken, css.FunctionToken:
			open = append(open, closers[tt])

		case css.RightBracketToken, css.RightParenthesisToken:
			if n := len(open); n == 0 || open[n-1] != data[0] {
				warn("unbalanced '%s'", data)
			} else {
				open = open[:n-1]
			}

		case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.AtKeywordToken,
			css.CDOToken, css.CDCToken, css.BadStringToken, css.BadURLToken:
			warn("%s '%s' is not allowed in selector", tt, data)

		case css.CommaToken:
			warn("selector list is not supported, build selectors separately")
		}
	}
}

// LintValue returns findings for a single property value, nil when it looks
// fine.
func (l *Linter) LintValue(name string, v Value) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		w := fmt.Sprintf(format, args...)
		l.log.Debug("Property lint", zap.String("property", name), zap.String("value", v.Raw), zap.String("warning", w))
		warnings = append(warnings, w)
	}

	switch {
	case len(v.Raw) == 0:
		warn("property '%s' has no value", name)
	case len(v.Invalid) > 0:
		warn("property '%s': '%s' is not allowed in value", name, v.Invalid)
	case v.Numeric && len(v.Unit) == 0 && v.Number != 0 && isLengthProperty(name):
		warn("property '%s': non-zero length '%s' needs a unit", name, v.Raw)
	}
	return warnings
}
