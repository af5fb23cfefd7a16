package ics

import (
	"context"
	"fmt"
	"time"
)

// Client fetches, parses and expands ICS feeds into occurrences ready
// for import.
type Client struct {
	fetcher *Fetcher
}

// NewClient creates a Client with a default Fetcher.
func NewClient() *Client {
	return &Client{fetcher: NewFetcher()}
}

// Load returns all occurrences for the source within [from, to), tagged
// with the source's calendar type.
func (c *Client) Load(ctx context.Context, src Source, from, to time.Time) ([]Occurrence, error) {
	body, err := c.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	parsed, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src.ID, err)
	}

	occurrences := Expand(parsed, from, to)
	for i := range occurrences {
		occurrences[i].Event.Calendar = src.Calendar
	}
	return occurrences, nil
}
