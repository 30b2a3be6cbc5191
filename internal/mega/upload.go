package mega

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// UploadContent posts file bytes to an upload URL issued by
// SessionClient.InitiateUpload. The content travels as-is; no node
// encryption is applied. Non-2xx statuses come back as *TransportError.
func (c *Client) UploadContent(ctx context.Context, uploadURL string, r io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, r)
	if err != nil {
		return fmt.Errorf("mega: creating upload request: %w", err)
	}

	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("User-Agent", userAgent)
	req.ContentLength = size

	c.logger.Info("uploading content", slog.Int64("size", size))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte("(failed to read response body)")
		}

		return &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
