package figsync

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CustomProperty is one "--name: value" declaration
type CustomProperty struct {
	Name  string // without the leading "--"
	Value string
}

// ParseCustomProperties returns every custom property declared in content,
// in source order. Later declarations of the same name are kept as well.
func ParseCustomProperties(content string) []CustomProperty {
	var props []CustomProperty

	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt != css.CustomPropertyNameToken {
			continue
		}

		name := strings.TrimPrefix(string(text), "--")
		if !skipToColon(lexer) {
			continue
		}
		if value := readValue(lexer); value != "" {
			props = append(props, CustomProperty{Name: name, Value: value})
		}
	}
	return props
}

func skipToColon(lexer *css.Lexer) bool {
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.ColonToken:
			return true
		default:
			return false
		}
	}
}

// readValue reads a declaration value up to the closing ";" or "}" at
// nesting depth zero.
func readValue(lexer *css.Lexer) string {
	var b strings.Builder
	depth := 0
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return strings.TrimSpace(b.String())
		case css.CommentToken:
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.SemicolonToken, css.RightBraceToken:
			if depth <= 0 {
				return strings.TrimSpace(b.String())
			}
		case css.WhitespaceToken:
			b.WriteByte(' ')
			continue
		}
		b.Write(text)
	}
}

// ColorTokensFromCSS turns custom properties holding a 6-digit hex color or a
// linear gradient into color tokens. Other properties are ignored. Hex
// tokens carry no category so a merge keeps the one already defined.
func ColorTokensFromCSS(props []CustomProperty) []ColorToken {
	var out []ColorToken
	for _, p := range props {
		switch {
		case IsHexColor(p.Value):
			value := p.Value
			if !strings.HasPrefix(value, "#") {
				value = "#" + value
			}
			out = append(out, ColorToken{Name: p.Name, Value: strings.ToUpper(value)})
		case strings.HasPrefix(p.Value, "linear-gradient("):
			out = append(out, ColorToken{Name: p.Name, Value: p.Value, Category: CategoryGradient})
		}
	}
	return out
}

// WriteStyleRules writes updates as CSS rule blocks, one block per selector
// with its properties sorted by name.
func WriteStyleRules(w io.Writer, updates []StyleUpdate) error {
	var selectors []string
	rules := make(map[string]map[string]string)
	for _, u := range updates {
		props, ok := rules[u.Selector]
		if !ok {
			props = make(map[string]string)
			rules[u.Selector] = props
			selectors = append(selectors, u.Selector)
		}
		props[u.CSSProperty] = u.NewValue
	}

	for i, sel := range selectors {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s {\n", sel); err != nil {
			return err
		}
		props := rules[sel]
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "  %s: %s;\n", name, props[name]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}
