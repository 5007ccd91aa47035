// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidArrival is returned for arrival values that are not a valid
// "HH:MM" time of day.
var ErrInvalidArrival = errors.New("invalid arrival")

// ParseArrival splits an "H:MM" or "HH:MM" arrival into hour and minute.
func ParseArrival(arrival string) (int, int, error) {
	parts := strings.Split(arrival, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidArrival, arrival)
	}
	h, err := clockField(parts[0], 23)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q hour: %v", ErrInvalidArrival, arrival, err)
	}
	m, err := clockField(parts[1], 59)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q minute: %v", ErrInvalidArrival, arrival, err)
	}
	return h, m, nil
}

func clockField(s string, limit int) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("want 1 or 2 digits, got %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v > limit {
		return 0, fmt.Errorf("%d out of range [0,%d]", v, limit)
	}
	return v, nil
}

// ArrivalAt places the arrival on now's date, in now's location. Seconds and
// below are copied from now so that an arrival in the current minute equals
// now.
func ArrivalAt(arrival string, now time.Time) (time.Time, error) {
	h, m, err := ParseArrival(arrival)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := now.Date()
	return time.Date(y, mo, d, h, m, now.Second(), now.Nanosecond(), now.Location()), nil
}

// Upcoming reports whether the flight arrives at or after now. Flights with
// an invalid arrival are never upcoming.
func Upcoming(f Flight, now time.Time) bool {
	at, err := ArrivalAt(f.Arrival, now)
	if err != nil {
		log.WithField("id", f.ID).Debugf("skipping flight: %v", err)
		return false
	}
	return !at.Before(now)
}
