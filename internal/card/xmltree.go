package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/xsd/pkg/xmlstream"
)

// Attr is an element attribute
type Attr struct {
	Name  string
	Value string
}

// Element is a generic XML element
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// ParseXML reads a single document into an element tree. Namespaces are
// dropped from names; surrounding whitespace is trimmed from text.
func ParseXML(r io.Reader) (*Element, error) {
	reader, err := xmlstream.NewStringReader(r)
	if err != nil {
		return nil, err
	}

	var (
		root  *Element
		stack []*Element
		text  [][]byte
	)
	for {
		ev, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case xmlstream.EventStartElement:
			el := &Element{Name: ev.Name.Local}
			for _, a := range ev.Attrs {
				if a.NamespaceURI() == xmlstream.XMLNSNamespace || a.LocalName() == "xmlns" {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.LocalName(), Value: a.Value()})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
			text = append(text, nil)

		case xmlstream.EventCharData:
			if len(text) > 0 {
				text[len(text)-1] = append(text[len(text)-1], ev.Text...)
			}

		case xmlstream.EventEndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element %q", ev.Name.Local)
			}
			el := stack[len(stack)-1]
			el.Text = strings.TrimSpace(string(text[len(text)-1]))
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if root == nil {
		return nil, errors.New("empty document")
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed element %q", stack[len(stack)-1].Name)
	}
	return root, nil
}

// Attr returns the value of the named attribute
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first descendant reached by following the given names
func (e *Element) Find(path ...string) *Element {
	cur := e
	for _, name := range path {
		var next *Element
		for _, c := range cur.Children {
			if c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// ToMap returns the tree as nested maps keyed by element name. Attributes
// are prefixed with "@", text next to attributes or children is stored under
// "#text", and repeated children become lists.
func (e *Element) ToMap() map[string]any {
	return map[string]any{e.Name: e.value()}
}

func (e *Element) value() any {
	if len(e.Attrs) == 0 && len(e.Children) == 0 {
		if e.Text == "" {
			return nil
		}
		return e.Text
	}

	m := make(map[string]any, len(e.Attrs)+len(e.Children)+1)
	for _, a := range e.Attrs {
		m["@"+a.Name] = a.Value
	}
	for _, c := range e.Children {
		v := c.value()
		switch prev := m[c.Name].(type) {
		case nil:
			if _, exists := m[c.Name]; exists {
				m[c.Name] = []any{nil, v}
			} else {
				m[c.Name] = v
			}
		case []any:
			m[c.Name] = append(prev, v)
		default:
			m[c.Name] = []any{prev, v}
		}
	}
	if e.Text != "" {
		m["#text"] = e.Text
	}
	return m
}

// MarshalJSON encodes the element in its ToMap form
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToMap())
}
