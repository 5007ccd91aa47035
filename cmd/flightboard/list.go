// Copyright 2018 The ezgliding authors. All rights reserverd.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezgliding/flightboard"
)

type renderFunc func(io.Writer, flightboard.View) error

var renderers = map[string]renderFunc{
	"text": flightboard.RenderText,
	"json": flightboard.RenderJSON,
	"html": flightboard.RenderHTML,
}

type listOptions struct {
	search string
	format string
	at     string
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the upcoming flights matching a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, newFetcher(), opts, time.Now())
		},
	}
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "departure or destination keyword")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or html")
	cmd.Flags().StringVar(&opts.at, "at", "", "evaluate arrivals as of HH:MM today instead of now")
	return cmd
}

func runList(cmd *cobra.Command, f flightboard.Fetcher, opts *listOptions, now time.Time) error {
	render, ok := renderers[opts.format]
	if !ok {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	if opts.at != "" {
		at, err := flightboard.ArrivalAt(opts.at, now)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		now = time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), 0, 0, at.Location())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res := flightboard.Load(ctx, f)
	if res.State() == flightboard.Failed {
		return fmt.Errorf("load flights: %w", res.Err())
	}
	return render(cmd.OutOrStdout(), flightboard.NewView(res.Flights(), opts.search, now))
}
