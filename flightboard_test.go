// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetLevel(log.TraceLevel)
}

var testNow = time.Date(2024, time.May, 1, 12, 0, 30, 500, time.UTC)

func flight(id, dept, dest, arrival string) Flight {
	return Flight{
		ID:       FlightID(id),
		Dept:     dept,
		Dest:     dest,
		Arrival:  arrival,
		Aircraft: Aircraft{Captain: "Capt. " + id},
	}
}

// fixture holds one future matching, one past matching and one future
// non-matching flight for the term "ny".
func fixture() []Flight {
	return []Flight{
		flight("EI105", "Shannon", "Sunnyvale", "13:00"),
		flight("EI201", "Albany", "Paris", "09:15"),
		flight("EI330", "Cork", "Rome", "18:45"),
	}
}
