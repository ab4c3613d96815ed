package api

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mobil-koeln/crtm-cli/internal/models"
)

func stopsBy(key string, value any) *Query {
	return NewQuery(EndpointStops).Require(key, value)
}

// StopsByCodeRaw returns the stop with the given code, see StopCode
func (c *Client) StopsByCodeRaw(ctx context.Context, codStop string) (json.RawMessage, error) {
	return c.get(ctx, stopsBy("codStop", codStop))
}

// StopsByCode returns the stop with the given code
func (c *Client) StopsByCode(ctx context.Context, codStop string) ([]models.Stop, error) {
	return c.stops(ctx, stopsBy("codStop", codStop))
}

// StopsBySearchRaw searches stops by free text
func (c *Client) StopsBySearchRaw(ctx context.Context, text string) (json.RawMessage, error) {
	return c.get(ctx, stopsBy("customSearch", text))
}

// StopsBySearch searches stops by free text
func (c *Client) StopsBySearch(ctx context.Context, text string) ([]models.Stop, error) {
	return c.stops(ctx, stopsBy("customSearch", text))
}

// StopsByPostcodeRaw lists the stops in a postcode
func (c *Client) StopsByPostcodeRaw(ctx context.Context, postcode string) (json.RawMessage, error) {
	return c.get(ctx, stopsBy("postcode", postcode))
}

// StopsByPostcode lists the stops in a postcode
func (c *Client) StopsByPostcode(ctx context.Context, postcode string) ([]models.Stop, error) {
	return c.stops(ctx, stopsBy("postcode", postcode))
}

// StopsByMunicipalityRaw lists the stops of a municipality
func (c *Client) StopsByMunicipalityRaw(ctx context.Context, municipality int) (json.RawMessage, error) {
	return c.get(ctx, stopsBy("codMunicipality", municipality))
}

// StopsByMunicipality lists the stops of a municipality
func (c *Client) StopsByMunicipality(ctx context.Context, municipality int) ([]models.Stop, error) {
	return c.stops(ctx, stopsBy("codMunicipality", municipality))
}

func (c *Client) stops(ctx context.Context, q *Query) ([]models.Stop, error) {
	var resp models.StopsResponse
	if err := c.decode(ctx, q, &resp); err != nil {
		return nil, err
	}
	return resp.Stops.Stop, nil
}

// StopTimesRequest contains parameters for a stop times query
type StopTimesRequest struct {
	Stop      string // Stop code (required)
	Type      int    // Passage type (required)
	OrderBy   int    // Ordering (default: DefaultOrderBy)
	Itinerary string // stopTimesByIti (required)
}

func (r StopTimesRequest) query() *Query {
	orderBy := r.OrderBy
	if orderBy == 0 {
		orderBy = DefaultOrderBy
	}
	return NewQuery(EndpointStopsTimes).
		Require("codStop", r.Stop).
		Require("type", r.Type).
		Require("orderBy", orderBy).
		Require("stopTimesByIti", r.Itinerary)
}

// StopTimesRaw returns the upcoming passages at a stop
func (c *Client) StopTimesRaw(ctx context.Context, req StopTimesRequest) (json.RawMessage, error) {
	return c.get(ctx, req.query())
}

// StopTimes returns the upcoming passages at a stop
func (c *Client) StopTimes(ctx context.Context, req StopTimesRequest) ([]models.StopTime, error) {
	board, err := c.StopBoard(ctx, req)
	if err != nil {
		return nil, err
	}
	return board.Times, nil
}

// StopBoard returns the upcoming passages together with the stop they belong to
func (c *Client) StopBoard(ctx context.Context, req StopTimesRequest) (*models.StopBoard, error) {
	var resp models.StopTimesResponse
	if err := c.decode(ctx, req.query(), &resp); err != nil {
		return nil, err
	}
	return &models.StopBoard{
		Stop:  resp.StopTimes.Stop,
		Times: resp.ToStopTimes(c.timezone),
	}, nil
}

// NearestStopsRequest contains parameters for a nearby search
type NearestStopsRequest struct {
	Latitude  float64 // required
	Longitude float64 // required
	Method    int     // Search method (default: DefaultNearestMethod)
	Precision int     // Search radius in meters (required)
	Mode      int     // Restrict to one transport mode (0 means any)
}

func (r NearestStopsRequest) query() *Query {
	method := r.Method
	if method == 0 {
		method = DefaultNearestMethod
	}
	return NewQuery(EndpointNearestStops).
		Require("latitude", r.Latitude).
		Require("longitude", r.Longitude).
		Require("method", method).
		Require("precision", r.Precision).
		Optional("mode", r.Mode)
}

// NearestStopsRaw returns the stops around a coordinate
func (c *Client) NearestStopsRaw(ctx context.Context, req NearestStopsRequest) (json.RawMessage, error) {
	return c.get(ctx, req.query())
}

// NearestStops returns the stops around a coordinate
func (c *Client) NearestStops(ctx context.Context, req NearestStopsRequest) ([]models.Stop, error) {
	return c.stops(ctx, req.query())
}

// ParseCoordinates parses "LAT:LON" (a comma is accepted as separator too)
func ParseCoordinates(s string) (models.Coordinates, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	latStr, lonStr, ok := strings.Cut(s, sep)
	if !ok {
		return models.Coordinates{}, ErrInvalidFormat("location", "LAT:LON")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Coordinates{}, ErrInvalidFormat("latitude", "a number between -90 and 90")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || lon < -180 || lon > 180 {
		return models.Coordinates{}, ErrInvalidFormat("longitude", "a number between -180 and 180")
	}
	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
