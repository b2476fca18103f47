package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
)

var (
	// ErrUnreachable marks a transport-level failure. Views show a generic
	// "could not connect" message instead of the raw error.
	ErrUnreachable = errors.New("could not connect to HES Vault")

	// ErrFileTooLarge is returned before any bytes are sent when an upload
	// exceeds the configured cap.
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
)

// APIError carries a structured non-2xx response. The server message is
// surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 from the backend, meaning the
// bearer token was rejected and the session must be cleared.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client talks to the HES Vault backend REST API. It holds no per-user
// state; the bearer token is passed per call.
type Client struct {
	baseURL      string
	imageBaseURL string
	maxUpload    int64
	http         *http.Client
}

// NewClient creates a backend API client. maxUpload caps multipart uploads
// client-side, in bytes.
func NewClient(baseURL, imageBaseURL string, timeout time.Duration, maxUpload int64) *Client {
	return &Client{
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		maxUpload:    maxUpload,
		http:         &http.Client{Timeout: timeout},
	}
}

// do executes a JSON request against the backend and decodes the response
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, token, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token, method, path, out)
}

// send attaches auth, performs the request and handles the shared
// response/error taxonomy.
func (c *Client) send(req *http.Request, token, method, path string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.ApiCall(method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.ApiResult(method, path, 0, err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		logger.ApiResult(method, path, resp.StatusCode, apiErr)
		return apiErr
	}
	logger.ApiResult(method, path, resp.StatusCode, nil)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError extracts the structured {"message": ...} body the backend
// sends with non-2xx responses, falling back to a generic message.
func decodeError(resp *http.Response) *APIError {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
