package itunes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/gndm/itunesSearch/internal/logging"
)

// DefaultBaseURL is the public search endpoint.
const DefaultBaseURL = "https://itunes.apple.com/search"

// Client defines the interface for querying the media catalog.
type Client interface {
	Search(ctx context.Context, term string, limit int) ([]Result, error)
}

// HTTPClient implements Client against the iTunes Search API.
type HTTPClient struct {
	BaseURL string
	// Country and Media are sent only when non-empty.
	Country    string
	Media      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new HTTPClient for baseURL.
func NewClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// Search fetches at most limit records matching term. Every failure after
// argument checking is a *SearchFailedError. Elements of "results" that are
// not JSON objects are logged and dropped.
func (c *HTTPClient) Search(ctx context.Context, term string, limit int) ([]Result, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	params := url.Values{
		"term":  {term},
		"limit": {strconv.Itoa(limit)},
	}
	if c.Country != "" {
		params.Set("country", c.Country)
	}
	if c.Media != "" {
		params.Set("media", c.Media)
	}
	endpoint := c.BaseURL + "?" + params.Encode()

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	fail := func(status int, err error) error {
		return &SearchFailedError{Term: term, StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fail(0, fmt.Errorf("creating search request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logging.Ctx(ctx).Debug().Str("term", term).Int("limit", limit).Msg("[itunes] searching")
	resp, err := httpClient.Do(req)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("term", term).Msg("[itunes] search request failed")
		return nil, fail(0, fmt.Errorf("search request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.Ctx(ctx).Warn().Int("status", resp.StatusCode).Str("term", term).Msg("[itunes] search failed")
		return nil, fail(resp.StatusCode, fmt.Errorf("unexpected status: %s", string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var apiResp searchResponse
	if err := dec.Decode(&apiResp); err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("decoding search response: %w", err))
	}
	if apiResp.Results == nil {
		return nil, fail(resp.StatusCode, errors.New(`decoding search response: missing "results"`))
	}

	results := make([]Result, 0, len(apiResp.Results))
	for _, raw := range apiResp.Results {
		rec, err := decodeRecord(raw)
		if err != nil {
			if e := logging.Ctx(ctx).Warn(); e.Enabled() {
				e.Err(err).Str("raw", Compact(raw)).Msg("[itunes] dropping undecodable result")
			}
			continue
		}
		results = append(results, Result{Record: rec, Raw: raw})
	}

	logging.Ctx(ctx).Debug().Int("count", len(results)).Str("term", term).Msg("[itunes] search complete")
	return results, nil
}

func decodeRecord(raw json.RawMessage) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("result is not an object")
	}
	return rec, nil
}
