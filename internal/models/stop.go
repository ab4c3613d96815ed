package models

import "fmt"

// Coordinates is a WGS84 position
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String formats the coordinates as "lat:lon", the form accepted by `crtm stops nearby`
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f:%.6f", c.Latitude, c.Longitude)
}

// Stop represents a stop as returned by GetStops.php and friends
type Stop struct {
	Code         string      `json:"codStop"`
	ShortCode    string      `json:"shortCodStop"`
	Mode         string      `json:"codMode"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	PostCode     string      `json:"postCode"`
	Municipality string      `json:"codMunicipality"`
	Coordinates  Coordinates `json:"coordinates"`
	CodLines     struct {
		Line List[string] `json:"Line"`
	} `json:"codLines"`
	Lines struct {
		Line List[Line] `json:"Line"`
	} `json:"lines"`
	Access            int `json:"access"`
	Park              int `json:"park"`
	NightLinesService int `json:"nightLinesService"`
	StopType          int `json:"stopType"`
}

// LineCodes returns the codes of the lines serving the stop, whichever form the
// service used to list them.
func (s *Stop) LineCodes() []string {
	if len(s.CodLines.Line) > 0 {
		return s.CodLines.Line
	}
	codes := make([]string, 0, len(s.Lines.Line))
	for _, l := range s.Lines.Line {
		codes = append(codes, l.Code)
	}
	return codes
}

// LineNames returns the short descriptions of the serving lines when present,
// falling back to the line codes.
func (s *Stop) LineNames() []string {
	if len(s.Lines.Line) == 0 {
		return s.LineCodes()
	}
	names := make([]string, 0, len(s.Lines.Line))
	for _, l := range s.Lines.Line {
		names = append(names, l.ShortDescription)
	}
	return names
}

// StopsResponse represents the raw JSON response for GetStops.php and
// GetNearestStopsByLocation.php
type StopsResponse struct {
	Stops struct {
		Stop List[Stop] `json:"Stop"`
	} `json:"stops"`
}
