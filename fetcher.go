// Copyright 2018 The ezgliding authors. All rights reserverd.

package flightboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultSourceURL serves the published flight times.
	DefaultSourceURL string = "https://raw.githubusercontent.com/Frenkie-Wang-Music/CS385DataSet/refs/heads/main/FlightData/times.json"
	// DefaultUserAgent ...
	DefaultUserAgent string = "flightboard/1.0"
)

// ErrFetch is the single failure kind of a fetch: transport, status or
// decode.
var ErrFetch = errors.New("fetch flight times")

// Fetcher retrieves the flight board.
type Fetcher interface {
	Fetch(ctx context.Context) (Board, error)
}

// CollyFetcher fetches the board with a single HTTP GET.
type CollyFetcher struct {
	url       string
	userAgent string
	timeout   time.Duration
}

// NewCollyFetcher returns a fetcher for url. A zero timeout disables it.
func NewCollyFetcher(url, userAgent string, timeout time.Duration) *CollyFetcher {
	if url == "" {
		url = DefaultSourceURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &CollyFetcher{url: url, userAgent: userAgent, timeout: timeout}
}

// URL returns the source being fetched.
func (cf *CollyFetcher) URL() string {
	return cf.url
}

func (cf *CollyFetcher) collector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(cf.userAgent),
		colly.AllowURLRevisit(),
	)
	c.IgnoreRobotsTxt = true
	c.WithTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: cf.timeout,
		}).DialContext,
		TLSHandshakeTimeout:   cf.timeout,
		ResponseHeaderTimeout: cf.timeout,
	})
	return c
}

// Fetch runs one GET against the source and decodes the body.
func (cf *CollyFetcher) Fetch(ctx context.Context) (Board, error) {
	if err := ctx.Err(); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var body []byte
	c := cf.collector()
	c.OnRequest(func(r *colly.Request) {
		log.WithField("url", r.URL.String()).Debug("fetching flight times")
	})
	c.OnResponse(func(r *colly.Response) {
		log.WithFields(log.Fields{
			"status": r.StatusCode,
			"bytes":  len(r.Body),
		}).Debug("flight times received")
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		log.WithFields(log.Fields{
			"url":    cf.url,
			"status": r.StatusCode,
		}).Warnf("fetch failed: %v", err)
	})

	if err := c.Visit(cf.url); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return DecodeBoard(body)
}

// DecodeBoard parses a flight times document.
func DecodeBoard(data []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("%w: decode: %v", ErrFetch, err)
	}
	if b.FlightTimes == nil {
		return Board{}, fmt.Errorf("%w: document has no flightTimes", ErrFetch)
	}
	return b, nil
}
