package api

import (
	"context"
	"encoding/json"

	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// LinesByModeRaw lists the lines of a transport mode
func (c *Client) LinesByModeRaw(ctx context.Context, mode int) (json.RawMessage, error) {
	return c.get(ctx, NewQuery(EndpointLines).Require("mode", mode))
}

// LinesByMode lists the lines of a transport mode
func (c *Client) LinesByMode(ctx context.Context, mode int) ([]models.Line, error) {
	return c.lines(ctx, NewQuery(EndpointLines).Require("mode", mode))
}

// LinesByMunicipalityRaw lists the lines serving a municipality, optionally
// restricted to one mode (0 means any)
func (c *Client) LinesByMunicipalityRaw(ctx context.Context, municipality, mode int) (json.RawMessage, error) {
	return c.get(ctx, linesByMunicipality(municipality, mode))
}

// LinesByMunicipality lists the lines serving a municipality
func (c *Client) LinesByMunicipality(ctx context.Context, municipality, mode int) ([]models.Line, error) {
	return c.lines(ctx, linesByMunicipality(municipality, mode))
}

func linesByMunicipality(municipality, mode int) *Query {
	return NewQuery(EndpointLines).
		Require("codMunicipality", municipality).
		Optional("mode", mode)
}

// LinesByCodeRaw returns the short record of one line, see LineCode
func (c *Client) LinesByCodeRaw(ctx context.Context, codLine string) (json.RawMessage, error) {
	return c.get(ctx, NewQuery(EndpointLines).Require("codLine", codLine))
}

// LinesByCode returns the short record of one line
func (c *Client) LinesByCode(ctx context.Context, codLine string) ([]models.Line, error) {
	return c.lines(ctx, NewQuery(EndpointLines).Require("codLine", codLine))
}

func (c *Client) lines(ctx context.Context, q *Query) ([]models.Line, error) {
	var resp models.LinesResponse
	if err := c.decode(ctx, q, &resp); err != nil {
		return nil, err
	}
	return resp.Lines.Line, nil
}

func lineInfo(path, codLine string) *Query {
	return NewQuery(path).
		Require("codLine", codLine).
		Require("activeItinerary", 1)
}

// LineInfoRaw returns itineraries, stops and municipalities of a line
func (c *Client) LineInfoRaw(ctx context.Context, codLine string) (json.RawMessage, error) {
	return c.get(ctx, lineInfo(EndpointLinesInformation, codLine))
}

// LineInfo returns the detailed records of a line
func (c *Client) LineInfo(ctx context.Context, codLine string) ([]models.LineInformation, error) {
	var resp models.LineInfoResponse
	if err := c.decode(ctx, lineInfo(EndpointLinesInformation, codLine), &resp); err != nil {
		return nil, err
	}
	return resp.Lines.LineInformation, nil
}

// LineTimePlanningRaw returns the service window of a line
func (c *Client) LineTimePlanningRaw(ctx context.Context, codLine string) (json.RawMessage, error) {
	return c.get(ctx, lineInfo(EndpointLinesTimePlanning, codLine))
}

// LineTimePlanning returns the service window of a line as a generic document
func (c *Client) LineTimePlanning(ctx context.Context, codLine string) (models.Document, error) {
	var doc models.Document
	if err := c.decode(ctx, lineInfo(EndpointLinesTimePlanning, codLine), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LineLocationRequest identifies the vehicles to locate. Any stop of the
// itinerary gives the same answer.
type LineLocationRequest struct {
	Mode      int
	Itinerary string
	Line      string
	Stop      string
	Direction int
}

func (r LineLocationRequest) query() *Query {
	return NewQuery(EndpointLineLocation).
		Require("mode", r.Mode).
		Require("codItinerary", r.Itinerary).
		Require("codLine", r.Line).
		Require("codStop", r.Stop).
		Require("direction", r.Direction)
}

// LineLocationRaw returns the current vehicle positions of a line
func (c *Client) LineLocationRaw(ctx context.Context, req LineLocationRequest) (json.RawMessage, error) {
	return c.get(ctx, req.query())
}

// LineLocation returns the current vehicle positions of a line
func (c *Client) LineLocation(ctx context.Context, req LineLocationRequest) (models.Document, error) {
	var doc models.Document
	if err := c.decode(ctx, req.query(), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func incidents(mode int, codLine string) *Query {
	return NewQuery(EndpointIncidents).
		Require("mode", mode).
		Require("codLine", codLine)
}

// IncidentsRaw returns the incidents affecting a line
func (c *Client) IncidentsRaw(ctx context.Context, mode int, codLine string) (json.RawMessage, error) {
	return c.get(ctx, incidents(mode, codLine))
}

// Incidents returns the incidents affecting a line
func (c *Client) Incidents(ctx context.Context, mode int, codLine string) (models.Document, error) {
	var doc models.Document
	if err := c.decode(ctx, incidents(mode, codLine), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
