package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mobil-koeln/crtm-cli/internal/card"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// RenderDocument renders a decoded JSON document as an indented key tree.
// Map keys are sorted; list items are numbered.
func RenderDocument(w io.Writer, doc any, opts TableOptions) {
	c := opts.colors()
	if d, ok := doc.(models.Document); ok {
		doc = map[string]any(d)
	}
	if isEmpty(doc) {
		_, _ = fmt.Fprintln(w, "No data.")
		return
	}
	renderValue(w, doc, 0, c)
}

func renderValue(w io.Writer, v any, depth int, c *Colors) {
	indent := strings.Repeat("  ", depth)

	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := val[k]
			if isScalar(child) {
				_, _ = fmt.Fprintf(w, "%s%s %s\n", indent, c.Muted("%s:", k), formatScalar(child))
				continue
			}
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, c.Header("%s:", k))
			renderValue(w, child, depth+1, c)
		}
	case []any:
		for i, item := range val {
			if isScalar(item) {
				_, _ = fmt.Fprintf(w, "%s%s %s\n", indent, c.Muted("[%d]", i), formatScalar(item))
				continue
			}
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, c.Muted("[%d]", i))
			renderValue(w, item, depth+1, c)
		}
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatScalar(val))
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	}
	return true
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(val)
	}
}

// RenderBalance renders a card balance as an element tree
func RenderBalance(w io.Writer, b *card.Balance, opts TableOptions) {
	c := opts.colors()
	if b == nil || b.CardInfo == nil {
		_, _ = fmt.Fprintln(w, "No card data available.")
		return
	}

	_, _ = fmt.Fprintf(w, "%s %d\n\n", c.Header("Status:"), b.Status)
	renderElement(w, b.CardInfo, 0, c)
}

func renderElement(w io.Writer, e *card.Element, depth int, c *Colors) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(c.Line(e.Name))
	for _, a := range e.Attrs {
		sb.WriteString(" ")
		sb.WriteString(c.Muted("%s=", a.Name))
		sb.WriteString(c.Code(a.Value))
	}
	if e.Text != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Text)
	}
	_, _ = fmt.Fprintln(w, sb.String())

	for _, child := range e.Children {
		renderElement(w, child, depth+1, c)
	}
}
