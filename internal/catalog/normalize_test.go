package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ÁLAMO, EL", "ALAMO_EL"},
		{"METRO", "METRO"},
		{"CERCANÍAS", "CERCANIAS"},
		{"Metro Ligero", "METRO_LIGERO"},
		{"AUTOBUSES URBANOS", "AUTOBUSES_URBANOS"},
		{"Autobuses, urbanos", "AUTOBUSES_URBANOS"},
		{"San Martín de la Vega", "SAN_MARTIN_DE_LA_VEGA"},
		{"Villanueva de la Cañada", "VILLANUEVA_DE_LA_CANADA"},
		{"ALCALÁ DE HENARES", "ALCALA_DE_HENARES"},
		{"Olmeda de las Fuentes (La)", "OLMEDA_DE_LAS_FUENTES_LA_"},
		{"Línea 10 - Norte", "LINEA_NORTE"},
		{"  leading", "_LEADING"},
		{"", ""},
		{"123", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Alphabet(t *testing.T) {
	valid := regexp.MustCompile(`^[A-Z_]*$`)
	doubled := regexp.MustCompile(`__`)

	inputs := []string{
		"ÁLAMO, EL", "Ñandú  --  ¿qué?", "Ｆｕｌｌｗｉｄｔｈ", "ﬁ ligature", "tab\tand\nnewline",
		"Zürich, Straße", "ÅÄÖ", "…", "日本語 METRO",
	}
	for _, in := range inputs {
		got := Normalize(in)
		assert.Regexp(t, valid, got, "input %q", in)
		assert.NotRegexp(t, doubled, got, "input %q", in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"ÁLAMO, EL", "Metro Ligero", "San Sebastián de los Reyes"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
