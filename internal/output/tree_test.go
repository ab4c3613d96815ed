package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mobil-koeln/crtm-cli/internal/card"
	"github.com/mobil-koeln/crtm-cli/internal/models"
	"github.com/mobil-koeln/crtm-cli/internal/testutil"
)

func TestRenderDocument(t *testing.T) {
	doc := decode[models.Document](t, `{
		"incidents": {
			"Incident": [
				{"codIncident": 7, "title": "Obras", "active": true},
				{"codIncident": 8, "title": null}
			]
		},
		"actualDate": "2025-01-15T10:00:00"
	}`)

	var buf bytes.Buffer
	RenderDocument(&buf, doc, plainOptions(t))

	want := strings.Join([]string{
		"actualDate: 2025-01-15T10:00:00",
		"incidents:",
		"  Incident:",
		"    [0]",
		"      active: true",
		"      codIncident: 7",
		"      title: Obras",
		"    [1]",
		"      codIncident: 8",
		"      title: -",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderDocument_ScalarList(t *testing.T) {
	var buf bytes.Buffer
	RenderDocument(&buf, map[string]any{"codes": []any{"4279", 1.5}}, plainOptions(t))
	testutil.AssertEqual(t, buf.String(), "codes:\n  [0] 4279\n  [1] 1.5\n")
}

func TestRenderDocument_Empty(t *testing.T) {
	for _, doc := range []any{nil, models.Document{}, []any{}} {
		var buf bytes.Buffer
		RenderDocument(&buf, doc, plainOptions(t))
		testutil.AssertEqual(t, buf.String(), "No data.\n")
	}
}

func TestRenderBalance(t *testing.T) {
	root, err := card.ParseXML(strings.NewReader(
		`<Respuesta><Tarjeta numero="0010000000"><Perfil>JOVEN</Perfil><Titulo codigo="A"><Caducidad>2025-02-14</Caducidad></Titulo></Tarjeta></Respuesta>`))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	RenderBalance(&buf, &card.Balance{Status: 0, CardInfo: root}, plainOptions(t))

	want := strings.Join([]string{
		"Status: 0",
		"",
		"Respuesta",
		"  Tarjeta numero=0010000000",
		"    Perfil: JOVEN",
		"    Titulo codigo=A",
		"      Caducidad: 2025-02-14",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBalance_Nil(t *testing.T) {
	var buf bytes.Buffer
	RenderBalance(&buf, nil, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No card data available")

	buf.Reset()
	RenderBalance(&buf, &card.Balance{Status: 1}, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No card data available")
}
