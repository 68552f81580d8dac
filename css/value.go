package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Value is a property value as given for a rule.
type Value struct {
	Raw     string  // value text with whitespace collapsed
	Number  float64 // numeric part of a single number, percentage or dimension
	Unit    string  // lowercased unit of a dimension, "%" for percentage
	Keyword string  // lowercased single identifier or hex color
	Numeric bool    // value is a single number, percentage or dimension
	Invalid string  // first token which cannot appear in a declaration value
}

// String returns normalized value text: numbers are reformatted, keywords
// and colors lowercased, everything else is kept as given.
func (v Value) String() string {
	switch {
	case v.Numeric:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + v.Unit
	case len(v.Keyword) > 0:
		return v.Keyword
	}
	return v.Raw
}

// ParseValue tokenizes raw property value.
func ParseValue(raw string) Value {
	var (
		val    Value
		text   strings.Builder
		single css.TokenType
		data   string
		count  int
		space  bool
	)

	lexer := css.NewLexer(parse.NewInputString(raw))
	for {
		tt, b := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.WhitespaceToken {
			space = text.Len() > 0
			continue
		}
		if space {
			text.WriteByte(' ')
			space = false
		}
		text.Write(b)

		switch tt {
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken, css.AtKeywordToken,
			css.CDOToken, css.CDCToken, css.BadStringToken, css.BadURLToken:
			if len(val.Invalid) == 0 {
				val.Invalid = string(b)
			}
		}
		single, data = tt, string(b)
		count++
	}
	val.Raw = text.String()
	if count != 1 {
		return val
	}

	var err error
	switch single {
	case css.NumberToken:
		val.Number, err = strconv.ParseFloat(data, 64)
		val.Numeric = err == nil
	case css.PercentageToken:
		val.Number, err = strconv.ParseFloat(strings.TrimSuffix(data, "%"), 64)
		val.Numeric, val.Unit = err == nil, "%"
	case css.DimensionToken:
		// units never contain digits, so the number ends with the last one
		n := strings.LastIndexFunc(data, unicode.IsDigit) + 1
		val.Number, err = strconv.ParseFloat(data[:n], 64)
		val.Numeric, val.Unit = err == nil, strings.ToLower(data[n:])
	case css.IdentToken, css.HashToken:
		val.Keyword = strings.ToLower(data)
	}
	if !val.Numeric {
		val.Number, val.Unit = 0, ""
	}
	return val
}

// properties which take lengths, unit may be omitted only for zero
var lengthProperties = map[string]bool{
	"width": true, "min-width": true, "max-width": true,
	"height": true, "min-height": true, "max-height": true,
	"top": true, "right": true, "bottom": true, "left": true,
	"font-size": true, "text-indent": true, "letter-spacing": true, "word-spacing": true,
	"border-width": true, "outline-width": true, "border-radius": true,
}

func isLengthProperty(name string) bool {
	return lengthProperties[name] || strings.HasPrefix(name, "margin") || strings.HasPrefix(name, "padding")
}
