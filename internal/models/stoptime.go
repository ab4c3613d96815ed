package models

import (
	"strings"
	"time"
)

// StopTime is a single upcoming passage at a stop
type StopTime struct {
	LineCode    string     `json:"lineCode"`
	Line        string     `json:"line"`
	Mode        string     `json:"mode"`
	Direction   int        `json:"direction"`
	Destination string     `json:"destination"`
	Time        *time.Time `json:"time,omitempty"`
	Vehicle     string     `json:"vehicle,omitempty"`
	Issue       string     `json:"issue,omitempty"`
}

// StopRef is the short stop record embedded in stop times
type StopRef struct {
	Code              string `json:"codStop"`
	ShortCode         string `json:"shortCodStop"`
	Name              string `json:"name"`
	Park              int    `json:"park"`
	NightLinesService int    `json:"nightLinesService"`
}

// StopBoard is a stop with its upcoming passages
type StopBoard struct {
	Stop  StopRef    `json:"stop"`
	Times []StopTime `json:"times"`
}

// TimeResponse represents the raw JSON for a single stop time entry
type TimeResponse struct {
	Line            Line    `json:"line"`
	Direction       int     `json:"direction"`
	Destination     string  `json:"destination"`
	DestinationStop StopRef `json:"destinationStop"`
	Time            string  `json:"time"`
	CodVehicle      string  `json:"codVehicle"`
	CodIssue        string  `json:"codIssue"`
}

// LineStatus reports whether real-time data is available for a line
type LineStatus struct {
	Line struct {
		Code             string `json:"codLine"`
		ShortDescription string `json:"shortDescription"`
	} `json:"line"`
	SAEStatus bool `json:"SAEStatus"`
}

// StopTimesResponse represents the full API response for GetStopsTimes.php
type StopTimesResponse struct {
	StopTimes struct {
		ActualDate string  `json:"actualDate"`
		Stop       StopRef `json:"stop"`
		Times      struct {
			Time List[TimeResponse] `json:"Time"`
		} `json:"times"`
		LinesStatus struct {
			LineStatus List[LineStatus] `json:"LineStatus"`
		} `json:"linesStatus"`
	} `json:"stopTimes"`
}

// ToStopTimes converts the raw response to stop times in the given location
func (r *StopTimesResponse) ToStopTimes(loc *time.Location) []StopTime {
	times := make([]StopTime, 0, len(r.StopTimes.Times.Time))
	for i := range r.StopTimes.Times.Time {
		times = append(times, *r.StopTimes.Times.Time[i].ToStopTime(loc))
	}
	return times
}

// ToStopTime converts the raw entry to a StopTime
func (r *TimeResponse) ToStopTime(loc *time.Location) *StopTime {
	st := &StopTime{
		LineCode:    r.Line.Code,
		Line:        r.Line.ShortDescription,
		Mode:        r.Line.Mode,
		Direction:   r.Direction,
		Destination: strings.TrimSpace(r.Destination),
		Vehicle:     r.CodVehicle,
		Issue:       r.CodIssue,
	}
	if st.Line == "" {
		st.Line = r.Line.Code
	}
	if r.Time != "" {
		if t, err := parseTime(r.Time, loc); err == nil {
			st.Time = &t
		}
	}
	return st
}

// MinutesUntil returns the whole minutes between now and the passage, or -1
// when the time is unknown
func (s *StopTime) MinutesUntil(now time.Time) int {
	if s.Time == nil {
		return -1
	}
	d := s.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}

// ActualDate returns the service's own timestamp for the response
func (r *StopTimesResponse) ActualDate(loc *time.Location) (time.Time, error) {
	return parseTime(r.StopTimes.ActualDate, loc)
}

// parseTime parses an RFC 3339 timestamp, falling back to a zone-less
// "2006-01-02T15:04:05" in loc
func parseTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}
