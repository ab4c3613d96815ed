package models

import (
	"errors"
	"fmt"
)

// ErrMissingKey reports a payload that lacks a key the service always sends
var ErrMissingKey = errors.New("missing key")

// Mode is a transport mode record from GetModes.php
type Mode struct {
	Code string `json:"codMode"`
	Name string `json:"name"`
}

type modeRecord struct {
	Code *string `json:"codMode"`
	Name *string `json:"name"`
}

// ModesResponse represents the raw JSON response for the transport mode list.
// Pointers distinguish an absent key from an empty value.
type ModesResponse struct {
	Modes *struct {
		Mode *List[modeRecord] `json:"Mode"`
	} `json:"modes"`
}

// Entries returns the mode records. It fails with ErrMissingKey if the
// envelope or any record key is absent.
func (r *ModesResponse) Entries() ([]Mode, error) {
	if r.Modes == nil || r.Modes.Mode == nil {
		return nil, fmt.Errorf("%w: modes.Mode", ErrMissingKey)
	}
	modes := make([]Mode, 0, len(*r.Modes.Mode))
	for i, rec := range *r.Modes.Mode {
		if rec.Name == nil {
			return nil, fmt.Errorf("%w: Mode[%d].name", ErrMissingKey, i)
		}
		if rec.Code == nil {
			return nil, fmt.Errorf("%w: Mode[%d].codMode", ErrMissingKey, i)
		}
		modes = append(modes, Mode{Code: *rec.Code, Name: *rec.Name})
	}
	return modes, nil
}

// Municipality is a municipality record from GetMunicipalities.php
type Municipality struct {
	Code string `json:"codMunicipality"`
	Name string `json:"name"`
}

type municipalityRecord struct {
	Code *string `json:"codMunicipality"`
	Name *string `json:"name"`
}

// MunicipalitiesResponse represents the raw JSON response for the municipality list
type MunicipalitiesResponse struct {
	Municipalities *struct {
		Municipality *List[municipalityRecord] `json:"Municipality"`
	} `json:"municipalities"`
}

// Entries returns the municipality records, failing like ModesResponse.Entries
func (r *MunicipalitiesResponse) Entries() ([]Municipality, error) {
	if r.Municipalities == nil || r.Municipalities.Municipality == nil {
		return nil, fmt.Errorf("%w: municipalities.Municipality", ErrMissingKey)
	}
	out := make([]Municipality, 0, len(*r.Municipalities.Municipality))
	for i, rec := range *r.Municipalities.Municipality {
		if rec.Name == nil {
			return nil, fmt.Errorf("%w: Municipality[%d].name", ErrMissingKey, i)
		}
		if rec.Code == nil {
			return nil, fmt.Errorf("%w: Municipality[%d].codMunicipality", ErrMissingKey, i)
		}
		out = append(out, Municipality{Code: *rec.Code, Name: *rec.Name})
	}
	return out, nil
}

// Document is a payload whose schema the service does not publish
// (time planning, vehicle locations, incidents)
type Document map[string]any
