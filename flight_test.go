// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBoardNonStringArrival(t *testing.T) {
	b, err := DecodeBoard([]byte(`{"flightTimes": [
		{"id": "EI105", "dept": "Shannon", "dest": "Sunnyvale", "arrival": "23:00", "aircraft": {"captain": "Mary Byrne"}},
		{"id": "EI106", "dept": "Shannon", "dest": "Sunnyvale", "arrival": 1300, "aircraft": {"captain": "Tom Kelly"}},
		{"id": "EI107", "dept": "Shannon", "dest": "Sunnyvale", "arrival": null},
		{"id": "EI108", "dept": "Shannon", "dest": "Sunnyvale", "arrival": {"h": 13, "m": 0}}
	]}`))
	require.NoError(t, err)
	require.Len(t, b.FlightTimes, 4)

	assert.Equal(t, "23:00", b.FlightTimes[0].Arrival)
	assert.Equal(t, "Mary Byrne", b.FlightTimes[0].Pilot())
	assert.Equal(t, "1300", b.FlightTimes[1].Arrival)
	assert.Equal(t, "Tom Kelly", b.FlightTimes[1].Pilot())
	assert.Equal(t, "", b.FlightTimes[2].Arrival)

	got := Filter(b.FlightTimes, "sunny", testNow)
	require.Len(t, got, 1)
	assert.Equal(t, FlightID("EI105"), got[0].ID)
}

func TestDecodeBoardBadFieldStillFails(t *testing.T) {
	_, err := DecodeBoard([]byte(`{"flightTimes": [{"id": "EI1", "dept": 7}]}`))
	assert.ErrorIs(t, err, ErrFetch)
}
