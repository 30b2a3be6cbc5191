package mega

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/twliao/mega-go/internal/megacrypt"
)

// rootTarget addresses the cloud-drive root in upload commands.
const rootTarget = "n"

// Session is the authenticated context returned by Login. It lives for the
// client's lifetime; there is no refresh or expiry handling.
type Session struct {
	ID  string
	Raw json.RawMessage
}

// SessionClient layers the login handshake and the session-scoped file
// operations over a Client. Construction performs no I/O; call Login before
// any other operation.
//
// A SessionClient is not safe for concurrent Login calls. Callers wanting
// concurrency give each goroutine its own instance, logged in once up front.
type SessionClient struct {
	client  *Client
	logger  *slog.Logger
	session *Session
}

// NewSessionClient wraps an API client. The returned client starts
// unauthenticated.
func NewSessionClient(client *Client, logger *slog.Logger) *SessionClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionClient{
		client: client,
		logger: logger,
	}
}

// Session returns the current session, or nil before a successful Login.
func (s *SessionClient) Session() *Session {
	return s.session
}

// Login derives the master key from the password, computes the login
// verifier for the email, and performs the "us" handshake. The password
// itself never leaves the process.
//
// On success the client becomes authenticated and the session is returned.
// A response without a session identifier leaves the client unauthenticated
// and returns *AuthError with the raw server response.
func (s *SessionClient) Login(ctx context.Context, email, password string) (*Session, error) {
	key, err := megacrypt.PrepareKey(password)
	if err != nil {
		return nil, err
	}

	uh, err := megacrypt.StringHash(email, key)
	if err != nil {
		return nil, err
	}

	result, err := s.client.SendOne(ctx, "", loginRequest{Action: "us", User: email, Hash: uh})
	if err != nil {
		return nil, err
	}

	var lr loginResponse
	if err := json.Unmarshal(result, &lr); err != nil || lr.SessionID == "" {
		s.logger.Warn("login rejected", slog.String("email", email))

		return nil, &AuthError{Response: result}
	}

	s.session = &Session{ID: lr.SessionID, Raw: result}

	s.logger.Info("login succeeded", slog.String("email", email))

	return s.session, nil
}

// ListFiles fetches the full remote listing ("f" command). It fails locally
// with ErrNotLoggedIn when no session exists.
func (s *SessionClient) ListFiles(ctx context.Context) ([]Node, error) {
	if s.session == nil {
		return nil, ErrNotLoggedIn
	}

	result, err := s.client.SendOne(ctx, s.session.ID, listFilesRequest{Action: "f", Recurse: 1})
	if err != nil {
		return nil, err
	}

	if code, ok := numericResult(result); ok {
		return nil, &APIError{Code: code}
	}

	var lr listFilesResponse
	if err := json.Unmarshal(result, &lr); err != nil {
		return nil, &ProtocolError{Reason: "unexpected list response", Body: string(result)}
	}

	if lr.Files == nil {
		return nil, &ProtocolError{Reason: "list response missing file array", Body: string(result)}
	}

	s.logger.Debug("listed files", slog.Int("count", len(lr.Files)))

	return lr.Files, nil
}

// InitiateUpload requests an upload URL for a file of the given size ("u"
// command). target selects the destination folder node; empty means the
// cloud-drive root. The caller posts the file bytes to the returned URL,
// for example with Client.UploadContent.
func (s *SessionClient) InitiateUpload(ctx context.Context, size int64, target string) (string, error) {
	if s.session == nil {
		return "", ErrNotLoggedIn
	}

	if target == "" {
		target = rootTarget
	}

	result, err := s.client.SendOne(ctx, s.session.ID, uploadRequest{Action: "u", Size: size, Target: target})
	if err != nil {
		return "", err
	}

	if code, ok := numericResult(result); ok {
		return "", &APIError{Code: code}
	}

	var uploadURL string
	if err := json.Unmarshal(result, &uploadURL); err != nil {
		return "", &ProtocolError{Reason: "unexpected upload response", Body: string(result)}
	}

	s.logger.Debug("upload target issued",
		slog.Int64("size", size),
		slog.String("target", target),
	)

	return uploadURL, nil
}

// DeleteNode removes the node with the given handle ("d" command). The
// server signals success with a numeric 0; any other code comes back as
// *APIError with the raw value.
func (s *SessionClient) DeleteNode(ctx context.Context, nodeID string) error {
	if s.session == nil {
		return ErrNotLoggedIn
	}

	result, err := s.client.SendOne(ctx, s.session.ID, deleteRequest{Action: "d", Node: nodeID})
	if err != nil {
		return err
	}

	code, ok := numericResult(result)
	if !ok {
		return &ProtocolError{Reason: "unexpected delete response", Body: string(result)}
	}

	if code != 0 {
		return &APIError{Code: code}
	}

	s.logger.Info("node deleted", slog.String("node", nodeID))

	return nil
}

// numericResult reports whether a response element is a bare integer, the
// protocol's status/error shape.
func numericResult(raw json.RawMessage) (int64, bool) {
	var code int64
	if err := json.Unmarshal(raw, &code); err != nil {
		return 0, false
	}

	return code, true
}
