package models

// Itinerary is one direction of a line
type Itinerary struct {
	Code      string `json:"codItinerary"`
	Name      string `json:"name"`
	Direction int    `json:"direction"`
	KML       string `json:"kml"`
	Stops     struct {
		StopInformation List[Stop] `json:"StopInformation"`
	} `json:"stops"`
}

// Line represents a transit line as returned by GetLines.php
type Line struct {
	Code             string `json:"codLine"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	Mode             string `json:"codMode"`
	UpdateDate       string `json:"updateDate"`
	UpdateKMLDate    string `json:"updateKmlDate"`
	NightService     int    `json:"nightService"`
	Active           bool   `json:"active"`
	ShortItinerary   struct {
		Itinerary List[Itinerary] `json:"Itinerary"`
	} `json:"shortItinerary"`
	URL         string `json:"URLLine"`
	Color       string `json:"colorLine"`
	TextColor   string `json:"text_colorLine"`
	CompanyCode string `json:"companyCode"`
}

// IsNight reports whether the line runs a night service
func (l *Line) IsNight() bool {
	return l.NightService != 0
}

// LinesResponse represents the raw JSON response for GetLines.php
type LinesResponse struct {
	Lines struct {
		Line List[Line] `json:"Line"`
	} `json:"lines"`
}

// TimePlanning is the service window attached to line information
type TimePlanning struct {
	Line         string `json:"codLine"`
	Itinerary    string `json:"codItinerary"`
	Type         string `json:"type"`
	StartService string `json:"startService"`
	EndService   string `json:"endService"`
	UpdateDate   string `json:"updateDate"`
}

// LineInformation is the detailed line record from GetLinesInformation.php
type LineInformation struct {
	Code              string `json:"codLine"`
	ShortDescription  string `json:"shortDescription"`
	Description       string `json:"description"`
	Mode              string `json:"codMode"`
	CodMunicipalities struct {
		String List[string] `json:"string"`
	} `json:"codMunicipalities"`
	Itinerary struct {
		Itinerary List[Itinerary] `json:"Itinerary"`
	} `json:"itinerary"`
	UpdateDate       string       `json:"updateDate"`
	NightService     int          `json:"nightService"`
	LineTimePlanning TimePlanning `json:"lineTimePlanning"`
}

// Itineraries returns the line's itineraries
func (l *LineInformation) Itineraries() []Itinerary {
	return l.Itinerary.Itinerary
}

// Municipalities returns the municipality codes served by the line
func (l *LineInformation) Municipalities() []string {
	return l.CodMunicipalities.String
}

// LineInfoResponse represents the raw JSON response for GetLinesInformation.php
type LineInfoResponse struct {
	Lines struct {
		LineInformation List[LineInformation] `json:"LineInformation"`
	} `json:"lines"`
}
