package api

import (
	"context"
	"encoding/json"

	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// OfficesByTypeRaw lists offices of one type
func (c *Client) OfficesByTypeRaw(ctx context.Context, officeType string) (json.RawMessage, error) {
	return c.get(ctx, NewQuery(EndpointOffices).Require("type", officeType))
}

// OfficesByType lists offices of one type
func (c *Client) OfficesByType(ctx context.Context, officeType string) ([]models.Office, error) {
	return c.offices(ctx, NewQuery(EndpointOffices).Require("type", officeType))
}

func officesByPostcode(postcode, officeType string) *Query {
	return NewQuery(EndpointOffices).
		Require("postcode", postcode).
		Optional("type", officeType)
}

// OfficesByPostcodeRaw lists offices in a postcode, optionally of one type
func (c *Client) OfficesByPostcodeRaw(ctx context.Context, postcode, officeType string) (json.RawMessage, error) {
	return c.get(ctx, officesByPostcode(postcode, officeType))
}

// OfficesByPostcode lists offices in a postcode
func (c *Client) OfficesByPostcode(ctx context.Context, postcode, officeType string) ([]models.Office, error) {
	return c.offices(ctx, officesByPostcode(postcode, officeType))
}

func officesByMunicipality(municipality int, officeType string) *Query {
	return NewQuery(EndpointOffices).
		Require("codmunicipality", municipality).
		Optional("type", officeType)
}

// OfficesByMunicipalityRaw lists offices of a municipality, optionally of one type
func (c *Client) OfficesByMunicipalityRaw(ctx context.Context, municipality int, officeType string) (json.RawMessage, error) {
	return c.get(ctx, officesByMunicipality(municipality, officeType))
}

// OfficesByMunicipality lists offices of a municipality
func (c *Client) OfficesByMunicipality(ctx context.Context, municipality int, officeType string) ([]models.Office, error) {
	return c.offices(ctx, officesByMunicipality(municipality, officeType))
}

func (c *Client) offices(ctx context.Context, q *Query) ([]models.Office, error) {
	var resp models.OfficesResponse
	if err := c.decode(ctx, q, &resp); err != nil {
		return nil, err
	}
	return resp.Offices.Office, nil
}
