// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlightID identifies a flight. Sources publish it either as a JSON string
// or as a JSON number; both decode to the literal text.
type FlightID string

// UnmarshalJSON accepts a string or a number.
func (id *FlightID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlightID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flight id %s: %w", data, err)
	}
	*id = FlightID(n.String())
	return nil
}

// Aircraft ...
type Aircraft struct {
	Captain string `json:"captain"`
}

// Flight is one entry of the published flight times.
type Flight struct {
	ID       FlightID `json:"id"`
	Dept     string   `json:"dept"`
	Dest     string   `json:"dest"`
	Arrival  string   `json:"arrival"`
	Aircraft Aircraft `json:"aircraft"`
}

// UnmarshalJSON decodes a flight, keeping a non-string arrival as its raw
// text so that only this flight fails the arrival check.
func (f *Flight) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       FlightID        `json:"id"`
		Dept     string          `json:"dept"`
		Dest     string          `json:"dest"`
		Arrival  json.RawMessage `json:"arrival"`
		Aircraft Aircraft        `json:"aircraft"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	arrival, err := arrivalText(raw.Arrival)
	if err != nil {
		return err
	}
	*f = Flight{
		ID:       raw.ID,
		Dept:     raw.Dept,
		Dest:     raw.Dest,
		Arrival:  arrival,
		Aircraft: raw.Aircraft,
	}
	return nil
}

func arrivalText(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return "", nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(data), nil
}

// Pilot returns the captain's display name.
func (f Flight) Pilot() string {
	return f.Aircraft.Captain
}

// Board is the document served by the flight times source.
type Board struct {
	FlightTimes []Flight `json:"flightTimes"`
}
