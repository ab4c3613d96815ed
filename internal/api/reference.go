package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// ModesRaw lists all transport modes
func (c *Client) ModesRaw(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, NewQuery(EndpointModes))
}

// Modes lists all transport modes
func (c *Client) Modes(ctx context.Context) ([]models.Mode, error) {
	var resp models.ModesResponse
	if err := c.decode(ctx, NewQuery(EndpointModes), &resp); err != nil {
		return nil, err
	}
	modes, err := resp.Entries()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidResponse, EndpointModes, err)
	}
	return modes, nil
}

// MunicipalitiesRaw lists all municipalities
func (c *Client) MunicipalitiesRaw(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, NewQuery(EndpointMunicipalities))
}

// Municipalities lists all municipalities
func (c *Client) Municipalities(ctx context.Context) ([]models.Municipality, error) {
	var resp models.MunicipalitiesResponse
	if err := c.decode(ctx, NewQuery(EndpointMunicipalities), &resp); err != nil {
		return nil, err
	}
	municipalities, err := resp.Entries()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidResponse, EndpointMunicipalities, err)
	}
	return municipalities, nil
}

// ModeEntries returns the transport modes as catalog entries in server order
func (c *Client) ModeEntries(ctx context.Context) ([]catalog.Entry, error) {
	modes, err := c.Modes(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(modes))
	for _, m := range modes {
		entries = append(entries, catalog.Entry{Name: m.Name, Code: m.Code})
	}
	return entries, nil
}

// MunicipalityEntries returns the municipalities as catalog entries in server order
func (c *Client) MunicipalityEntries(ctx context.Context) ([]catalog.Entry, error) {
	municipalities, err := c.Municipalities(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(municipalities))
	for _, m := range municipalities {
		entries = append(entries, catalog.Entry{Name: m.Name, Code: m.Code})
	}
	return entries, nil
}

var _ catalog.Source = (*Client)(nil)
