// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoadState is the progress of the one fetch a session makes.
type LoadState int

const (
	Pending LoadState = iota
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of a load. Build it with Loaded or LoadFailed; the
// zero value is Pending.
type Result struct {
	state   LoadState
	flights []Flight
	err     error
}

// Loaded returns a Ready result. A nil slice is stored as empty.
func Loaded(flights []Flight) Result {
	if flights == nil {
		flights = []Flight{}
	}
	return Result{state: Ready, flights: flights}
}

// LoadFailed returns a Failed result. err must not be nil.
func LoadFailed(err error) Result {
	if err == nil {
		panic("flightboard: LoadFailed with nil error")
	}
	return Result{state: Failed, err: err}
}

// State ...
func (r Result) State() LoadState { return r.state }

// Flights returns the loaded flights, nil unless Ready.
func (r Result) Flights() []Flight { return r.flights }

// Err returns the failure, nil unless Failed.
func (r Result) Err() error { return r.err }

// Load runs the fetch once and reports the outcome.
func Load(ctx context.Context, f Fetcher) Result {
	start := time.Now()
	board, err := f.Fetch(ctx)
	if err != nil {
		log.WithField("elapsed", time.Since(start)).Errorf("load failed: %v", err)
		return LoadFailed(err)
	}
	log.WithFields(log.Fields{
		"flights": len(board.FlightTimes),
		"elapsed": time.Since(start),
	}).Info("flight times loaded")
	return Loaded(board.FlightTimes)
}
