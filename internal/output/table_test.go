package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/models"
	"github.com/mobil-koeln/crtm-cli/internal/testutil"
)

func plainOptions(t *testing.T) TableOptions {
	t.Helper()
	oldNoColor := color.NoColor
	t.Cleanup(func() { color.NoColor = oldNoColor })
	color.NoColor = true
	return TableOptions{Colors: NewColors(ColorNever)}
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return v
}

var madrid = time.FixedZone("CET", 3600)

func TestRenderStopTimes_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderStopTimes(&buf, models.StopRef{}, nil, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No stop times found")
}

func TestRenderStopTimes(t *testing.T) {
	resp := decode[models.StopTimesResponse](t, testutil.SampleStopTimesResponse)
	times := resp.ToStopTimes(madrid)

	opts := plainOptions(t)
	opts.Now = time.Date(2025, 1, 15, 10, 0, 0, 0, madrid)

	var buf bytes.Buffer
	RenderStopTimes(&buf, resp.StopTimes.Stop, times, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "AV.CONSTITUCION-CONSUMO")
	testutil.AssertContains(t, output, "(8_17491)")
	testutil.AssertContains(t, output, "10:04   4'   460")
	testutil.AssertContains(t, output, "10:12  12'   462")
	testutil.AssertContains(t, output, "MADRID (Aluche)")
	testutil.AssertNotContains(t, output, "8__460___")
}

func TestRenderStopTimes_CodesAndIssues(t *testing.T) {
	at := time.Date(2025, 1, 15, 10, 0, 30, 0, madrid)
	times := []models.StopTime{
		{LineCode: "4__1___", Line: "1", Destination: "VALDECARROS", Time: &at, Issue: "12"},
		{LineCode: "4__6___", Line: "CIRCULAR-LONG", Destination: "LAGUNA"},
	}

	opts := plainOptions(t)
	opts.Now = time.Date(2025, 1, 15, 10, 0, 0, 0, madrid)
	opts.ShowCodes = true

	var buf bytes.Buffer
	RenderStopTimes(&buf, models.StopRef{}, times, opts)

	output := buf.String()
	testutil.AssertContains(t, output, "10:00   now  1")
	testutil.AssertContains(t, output, "VALDECARROS [12]")
	testutil.AssertContains(t, output, "--:--    --  CIRCULAR")
	testutil.AssertNotContains(t, output, "CIRCULAR-LONG")
	testutil.AssertContains(t, output, "Line: 4__1___")
}

func TestRenderStops(t *testing.T) {
	resp := decode[models.StopsResponse](t, testutil.SampleStopsResponse)

	var buf bytes.Buffer
	RenderStops(&buf, resp.Stops.Stop, plainOptions(t))

	output := buf.String()
	testutil.AssertContains(t, output, "Found stops:")
	testutil.AssertContains(t, output, "AV.CONSTITUCION-CONSUMO 8_17491")
	testutil.AssertContains(t, output, "Address: AV.CONSTITUCION, 63")
	testutil.AssertContains(t, output, "Lines: 8__460___, 8__462___")
	testutil.AssertContains(t, output, "Location: 40.283955:-3.795310")
	testutil.AssertContains(t, output, "crtm stops times 8_17491")
}

func TestRenderStops_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderStops(&buf, nil, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No stops found")
}

func TestRenderLines(t *testing.T) {
	resp := decode[models.LinesResponse](t, testutil.SampleLinesResponse)

	var buf bytes.Buffer
	RenderLines(&buf, resp.Lines.Line, plainOptions(t))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertLen(t, lines, 2)
	testutil.AssertContains(t, lines[0], "4__1___")
	testutil.AssertContains(t, lines[0], "PINAR DE CHAMARTIN - VALDECARROS")
	testutil.AssertContains(t, lines[1], "10")
	testutil.AssertContains(t, lines[1], "PUERTA DEL SUR")
}

func TestRenderLines_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderLines(&buf, []models.Line{}, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No lines found")
}

func TestRenderLineInfo(t *testing.T) {
	resp := decode[models.LineInfoResponse](t, testutil.SampleLineInfoResponse)

	var buf bytes.Buffer
	RenderLineInfo(&buf, resp.Lines.LineInformation, plainOptions(t))

	output := buf.String()
	testutil.AssertContains(t, output, "Line: 460 (8__460___)")
	testutil.AssertContains(t, output, "Route: MADRID (Aluche) - FUENLABRADA")
	testutil.AssertContains(t, output, "Service: 06:00 - 23:30")
	testutil.AssertContains(t, output, "Municipalities: 4279, 4058")
	testutil.AssertContains(t, output, "Itineraries:")
	testutil.AssertContains(t, output, "2  FUENLABRADA - MADRID (Aluche)")
}

func TestRenderLineInfo_ItineraryStops(t *testing.T) {
	info := decode[models.LineInformation](t, `{
		"codLine": "4__1___",
		"shortDescription": "1",
		"itinerary": {"Itinerary": {
			"codItinerary": "4__1____1",
			"name": "PINAR DE CHAMARTIN - VALDECARROS",
			"direction": 1,
			"stops": {"StopInformation": [
				{"codStop": "4_1", "name": "PINAR DE CHAMARTIN"},
				{"codStop": "4_2", "name": "BAMBU"},
				{"codStop": "4_3", "name": "VALDECARROS"}
			]}
		}}
	}`)

	var buf bytes.Buffer
	RenderLineInfo(&buf, []models.LineInformation{info}, plainOptions(t))

	output := buf.String()
	testutil.AssertContains(t, output, "┌ PINAR DE CHAMARTIN 4_1")
	testutil.AssertContains(t, output, "├ BAMBU 4_2")
	testutil.AssertContains(t, output, "└ VALDECARROS 4_3")
}

func TestRenderOffices(t *testing.T) {
	resp := decode[models.OfficesResponse](t, testutil.SampleOfficesResponse)

	var buf bytes.Buffer
	RenderOffices(&buf, resp.Offices.Office, plainOptions(t))

	output := buf.String()
	testutil.AssertContains(t, output, "OFICINA DE ATENCIÓN AL CLIENTE SOL [OFICINA]")
	testutil.AssertContains(t, output, "Address: PUERTA DEL SOL, S/N")
	testutil.AssertContains(t, output, "Hours: L-V 8:00-20:00")
}

func TestRenderOffices_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderOffices(&buf, nil, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No offices found")
}

func TestRenderRegistry(t *testing.T) {
	reg, err := catalog.Build(context.Background(), func(context.Context) ([]catalog.Entry, error) {
		return []catalog.Entry{
			{Name: "METRO", Code: "4"},
			{Name: "CERCANÍAS", Code: "5"},
			{Name: "Metro", Code: "10"},
		}, nil
	}, catalog.WithName("modes"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	RenderRegistry(&buf, reg, plainOptions(t))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertLen(t, lines, 3)
	testutil.AssertEqual(t, lines[0], "METRO         10  Metro")
	testutil.AssertEqual(t, lines[1], "CERCANIAS      5  CERCANÍAS")
	testutil.AssertEqual(t, lines[2], `collision METRO: "Metro" (10) replaced "METRO" (4)`)
}

func TestRenderRegistry_Nil(t *testing.T) {
	var buf bytes.Buffer
	RenderRegistry(&buf, nil, plainOptions(t))
	testutil.AssertContains(t, buf.String(), "No entries found")
}
