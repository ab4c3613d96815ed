package models

// Office is a customer service office or card sales point
type Office struct {
	Code        string      `json:"codOffice"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	OpenTime    string      `json:"openTime"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
}

// OfficesResponse represents the raw JSON response for GetOffices.php
type OfficesResponse struct {
	Offices struct {
		Office List[Office] `json:"Office"`
	} `json:"offices"`
}
