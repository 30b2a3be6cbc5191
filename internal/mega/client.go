package mega

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the MEGA API command endpoint.
const DefaultBaseURL = "https://g.api.mega.co.nz/cs"

const userAgent = "mega-go/0.1"

// Client posts command batches to the API endpoint and returns the
// positionally correlated response elements. It holds no session state and
// performs no retries; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// randUint32 supplies the per-request correlation id. Tests override
	// this for deterministic URLs.
	randUint32 func() uint32
}

// NewClient creates an API client. The httpClient's timeout bounds every
// round trip; pass nil to use http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		randUint32: rand.Uint32,
	}
}

// Send posts commands as one JSON array — the server requires array framing
// even for a single command — and returns the response array, one element
// per command. A random numeric id query parameter is attached to every
// request; sid, when non-empty, carries the session identifier.
//
// Failures are classified: *TransportError for network errors and non-2xx
// statuses, *ProtocolError for 2xx bodies that are not a non-empty JSON
// array of the expected length.
func (c *Client) Send(ctx context.Context, sid string, commands []any) ([]json.RawMessage, error) {
	body, err := json.Marshal(commands)
	if err != nil {
		return nil, fmt.Errorf("mega: encoding commands: %w", err)
	}

	reqID := c.randUint32()

	q := url.Values{}
	q.Set("id", strconv.FormatUint(uint64(reqID), 10))

	if sid != "" {
		q.Set("sid", sid)
	}

	reqURL := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mega: creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("sending command batch",
		slog.Int("commands", len(commands)),
		slog.Uint64("id", uint64(reqID)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var results []json.RawMessage
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, &ProtocolError{Reason: "response is not a JSON array", Body: string(raw)}
	}

	if len(results) != len(commands) {
		return nil, &ProtocolError{Reason: "malformed envelope", Body: string(raw)}
	}

	c.logger.Debug("command batch succeeded",
		slog.Int("results", len(results)),
		slog.Uint64("id", uint64(reqID)),
	)

	return results, nil
}

// SendOne posts a single command and returns element 0 of the response
// array.
func (c *Client) SendOne(ctx context.Context, sid string, command any) (json.RawMessage, error) {
	results, err := c.Send(ctx, sid, []any{command})
	if err != nil {
		return nil, err
	}

	return results[0], nil
}
