// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timesJSON = `{
  "flightTimes": [
    {"id": "EI105", "dept": "Shannon", "dest": "Sunnyvale", "arrival": "13:00", "aircraft": {"captain": "Mary Byrne"}},
    {"id": 2201, "dept": "Albany", "dest": "Paris", "arrival": "9:15", "aircraft": {"captain": "Tom Kelly"}}
  ]
}`

func serve(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.UserAgent()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &userAgent
}

func TestCollyFetcherFetch(t *testing.T) {
	srv, ua := serve(t, http.StatusOK, timesJSON)

	var f Fetcher = NewCollyFetcher(srv.URL, "flightboard-test", 5*time.Second)
	board, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, board.FlightTimes, 2)

	assert.Equal(t, "flightboard-test", *ua)
	assert.Equal(t, FlightID("EI105"), board.FlightTimes[0].ID)
	assert.Equal(t, "Mary Byrne", board.FlightTimes[0].Pilot())
	assert.Equal(t, FlightID("2201"), board.FlightTimes[1].ID)
	assert.Equal(t, "9:15", board.FlightTimes[1].Arrival)
}

func TestCollyFetcherRefetch(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, timesJSON)
	f := NewCollyFetcher(srv.URL, "", 0)
	for i := 0; i < 2; i++ {
		_, err := f.Fetch(context.Background())
		require.NoError(t, err)
	}
}

func TestCollyFetcherFailures(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"not found":     {http.StatusNotFound, `{"flightTimes": []}`},
		"server error":  {http.StatusInternalServerError, ``},
		"bad json":      {http.StatusOK, `{"flightTimes": [`},
		"wrong shape":   {http.StatusOK, `{"flights": []}`},
		"bad id":        {http.StatusOK, `{"flightTimes": [{"id": true}]}`},
		"not an object": {http.StatusOK, `<html></html>`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := serve(t, tc.status, tc.body)
			_, err := NewCollyFetcher(srv.URL, "", time.Second).Fetch(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFetch), "got %v", err)
		})
	}
}

func TestCollyFetcherCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCollyFetcher("http://127.0.0.1:1/", "", time.Second).Fetch(ctx)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestCollyFetcherUnreachable(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, timesJSON)
	url := srv.URL
	srv.Close()

	_, err := NewCollyFetcher(url, "", time.Second).Fetch(context.Background())
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestNewCollyFetcherDefaults(t *testing.T) {
	f := NewCollyFetcher("", "", 0)
	assert.Equal(t, DefaultSourceURL, f.URL())
	assert.Equal(t, DefaultUserAgent, f.userAgent)
}

func TestDecodeBoardEmptyList(t *testing.T) {
	b, err := DecodeBoard([]byte(`{"flightTimes": []}`))
	require.NoError(t, err)
	assert.Empty(t, b.FlightTimes)
}
