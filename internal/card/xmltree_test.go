package card

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	doc := `<?xml version="1.0"?>
<Respuesta xmlns="urn:example" version="2">
	<Tarjeta numero="001">
		<Titulo codigo="A">Abono A</Titulo>
		<Titulo codigo="B">Abono B</Titulo>
		<Saldo/>
	</Tarjeta>
	<Mensaje>OK &amp; listo</Mensaje>
</Respuesta>`

	root, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "Respuesta", root.Name)
	v, ok := root.Attr("version")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	_, ok = root.Attr("xmlns")
	assert.False(t, ok, "namespace declarations are not attributes")

	tarjeta := root.Find("Tarjeta")
	require.NotNil(t, tarjeta)
	assert.Len(t, tarjeta.Children, 3)
	assert.Equal(t, "OK & listo", root.Find("Mensaje").Text)
	assert.Nil(t, root.Find("Tarjeta", "Missing"))
	assert.Same(t, root, root.Find())
}

func TestElement_ToMap(t *testing.T) {
	doc := `<Respuesta><Tarjeta numero="001"><Titulo>A</Titulo><Titulo>B</Titulo><Saldo/></Tarjeta><Estado>1</Estado></Respuesta>`
	root, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)

	want := map[string]any{
		"Respuesta": map[string]any{
			"Tarjeta": map[string]any{
				"@numero": "001",
				"Titulo":  []any{"A", "B"},
				"Saldo":   nil,
			},
			"Estado": "1",
		},
	}
	assert.Equal(t, want, root.ToMap())

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Respuesta":{"Tarjeta":{"@numero":"001","Titulo":["A","B"],"Saldo":null},"Estado":"1"}}`, string(data))
}

func TestElement_ToMap_MixedText(t *testing.T) {
	root, err := ParseXML(strings.NewReader(`<Importe moneda="EUR">12.50</Importe>`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Importe": map[string]any{"@moneda": "EUR", "#text": "12.50"}}, root.ToMap())
}

func TestElement_ToMap_RepeatedEmpty(t *testing.T) {
	root, err := ParseXML(strings.NewReader(`<L><I/><I/><I>x</I></L>`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"L": map[string]any{"I": []any{nil, nil, "x"}}}, root.ToMap())
}

func TestParseXML_Errors(t *testing.T) {
	for _, doc := range []string{"", "<a><b></a>", "not xml at all <"} {
		_, err := ParseXML(strings.NewReader(doc))
		assert.Error(t, err, "input %q", doc)
	}
}
