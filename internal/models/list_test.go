package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "array", input: `{"codLine":["4__1___","4__2___"]}`, want: []string{"4__1___", "4__2___"}},
		{name: "single object", input: `{"codLine":"4__1___"}`, want: []string{"4__1___"}},
		{name: "null", input: `{"codLine":null}`, want: nil},
		{name: "missing", input: `{}`, want: nil},
		{name: "empty array", input: `{"codLine":[]}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Codes List[string] `json:"codLine"`
			}
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if len(v.Codes) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(v.Codes), len(tt.want))
			}
			for i := range tt.want {
				if v.Codes[i] != tt.want[i] {
					t.Errorf("Codes[%d] = %q, want %q", i, v.Codes[i], tt.want[i])
				}
			}
		})
	}
}

func TestList_UnmarshalJSON_Invalid(t *testing.T) {
	var v List[int]
	if err := json.Unmarshal([]byte(`"nope"`), &v); err == nil {
		t.Error("expected error for mismatched element type")
	}
}

func TestLinesResponse_SingleLine(t *testing.T) {
	data := `{"lines":{"Line":{"codLine":"4__10___","shortDescription":"10","codMode":"4","nightService":0,"active":true}}}`
	var resp LinesResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(resp.Lines.Line) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.Lines.Line))
	}
	line := resp.Lines.Line[0]
	if line.Code != "4__10___" || line.ShortDescription != "10" {
		t.Errorf("unexpected line %+v", line)
	}
	if line.IsNight() {
		t.Error("line should not be a night line")
	}
}

func TestModesResponse_Entries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		want    int
	}{
		{name: "list", input: `{"modes":{"Mode":[{"codMode":"4","name":"METRO"},{"codMode":"5","name":"CERCANÍAS"}]}}`, want: 2},
		{name: "single", input: `{"modes":{"Mode":{"codMode":"4","name":"METRO"}}}`, want: 1},
		{name: "empty name kept", input: `{"modes":{"Mode":{"codMode":"4","name":""}}}`, want: 1},
		{name: "no modes key", input: `{"foo":1}`, wantErr: "modes.Mode"},
		{name: "no Mode key", input: `{"modes":{}}`, wantErr: "modes.Mode"},
		{name: "record without name", input: `{"modes":{"Mode":[{"codMode":"4"},{"codMode":"5","name":"CERCANÍAS"}]}}`, wantErr: "Mode[0].name"},
		{name: "record without code", input: `{"modes":{"Mode":[{"codMode":"4","name":"METRO"},{"name":"CERCANÍAS"}]}}`, wantErr: "Mode[1].codMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ModesResponse
			if err := json.Unmarshal([]byte(tt.input), &resp); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			modes, err := resp.Entries()
			if tt.wantErr != "" {
				if !errors.Is(err, ErrMissingKey) {
					t.Fatalf("err = %v, want ErrMissingKey", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("err = %q, want it to name %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(modes) != tt.want {
				t.Errorf("len = %d, want %d", len(modes), tt.want)
			}
		})
	}
}

func TestMunicipalitiesResponse_Entries(t *testing.T) {
	var resp MunicipalitiesResponse
	data := `{"municipalities":{"Municipality":[{"codMunicipality":"4279","name":"MADRID"}]}}`
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	entries, err := resp.Entries()
	if err != nil || len(entries) != 1 || entries[0].Code != "4279" {
		t.Errorf("unexpected entries %+v (err=%v)", entries, err)
	}
}

func TestMunicipalitiesResponse_Entries_MissingName(t *testing.T) {
	var resp MunicipalitiesResponse
	data := `{"municipalities":{"Municipality":{"codMunicipality":"4279"}}}`
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, err := resp.Entries(); !errors.Is(err, ErrMissingKey) {
		t.Errorf("err = %v, want ErrMissingKey", err)
	}
}

func TestStop_LineCodes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCodes []string
		wantNames []string
	}{
		{
			name:      "codLines",
			input:     `{"codStop":"4_279","codLines":{"Line":["4__1___","4__10___"]}}`,
			wantCodes: []string{"4__1___", "4__10___"},
			wantNames: []string{"4__1___", "4__10___"},
		},
		{
			name:      "nested lines",
			input:     `{"codStop":"4_279","lines":{"Line":{"codLine":"4__1___","shortDescription":"1"}}}`,
			wantCodes: []string{"4__1___"},
			wantNames: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stop Stop
			if err := json.Unmarshal([]byte(tt.input), &stop); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			codes := stop.LineCodes()
			names := stop.LineNames()
			if len(codes) != len(tt.wantCodes) || len(names) != len(tt.wantNames) {
				t.Fatalf("codes=%v names=%v", codes, names)
			}
			for i := range codes {
				if codes[i] != tt.wantCodes[i] {
					t.Errorf("codes[%d] = %q, want %q", i, codes[i], tt.wantCodes[i])
				}
				if names[i] != tt.wantNames[i] {
					t.Errorf("names[%d] = %q, want %q", i, names[i], tt.wantNames[i])
				}
			}
		})
	}
}

func TestCoordinates_String(t *testing.T) {
	c := Coordinates{Latitude: 40.416775, Longitude: -3.70379}
	if got := c.String(); got != "40.416775:-3.703790" {
		t.Errorf("String() = %q", got)
	}
}
