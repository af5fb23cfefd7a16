package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Source describes a single ICS subscription.
type Source struct {
	ID       string
	Name     string
	URL      string
	Calendar domain.CalendarType
}

// Fetcher retrieves raw ICS payloads. http(s) URLs are fetched over the
// network; anything else is treated as a local file path, so exported
// calendar files work without a server.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]byte, error) {
	if strings.HasPrefix(src.URL, "http://") || strings.HasPrefix(src.URL, "https://") {
		return f.fetchHTTP(ctx, src)
	}
	body, err := os.ReadFile(strings.TrimPrefix(src.URL, "file://"))
	if err != nil {
		return nil, fmt.Errorf("reading calendar file for %s: %w", src.ID, err)
	}
	return body, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, src Source) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", src.ID, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar %s: %w", src.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching calendar %s: unexpected status %d", src.ID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading calendar %s: %w", src.ID, err)
	}
	return body, nil
}
