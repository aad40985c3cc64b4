package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thenoetrevino/trackr/internal/models"
)

// DefaultHTTPTimeout bounds a single request when no http.Client is supplied
const DefaultHTTPTimeout = 30 * time.Second

// HTTPClient implements Client against a trackr server's /api/v1 routes
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client for the server at baseURL (e.g. http://localhost:8080).
// A nil httpClient uses one with DefaultHTTPTimeout.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// envelope is the JSON body every /api/v1 route answers with
type envelope struct {
	OK       bool              `json:"ok"`
	Error    string            `json:"error,omitempty"`
	Project  *models.Project   `json:"project,omitempty"`
	Projects []*models.Project `json:"projects,omitempty"`
}

// RemoteError is a non-2xx answer from the server
type RemoteError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return e.Message
}

// Unwrap maps the status code back to the sentinel the stub would have returned
func (e *RemoteError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return models.ErrProjectNotFound
	case http.StatusServiceUnavailable:
		return models.ErrFetchFailed
	case http.StatusBadRequest:
		return models.MatchValidationError(e.Message)
	}
	return nil
}

// GetProjects fetches the full list
func (c *HTTPClient) GetProjects(ctx context.Context) ([]*models.Project, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &env); err != nil {
		return nil, err
	}
	if env.Projects == nil {
		return []*models.Project{}, nil
	}
	return env.Projects, nil
}

// UpdateProjectStatus patches one project's status
func (c *HTTPClient) UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	body := map[string]string{"status": string(status)}

	var env envelope
	path := "/api/v1/projects/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, body, &env); err != nil {
		return nil, err
	}
	if env.Project == nil {
		return nil, fmt.Errorf("update project %s: empty response", id)
	}
	return env.Project, nil
}

// AddProject posts a new project
func (c *HTTPClient) AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", input, &env); err != nil {
		return nil, err
	}
	if env.Project == nil {
		return nil, fmt.Errorf("add project: empty response")
	}
	return env.Project, nil
}

// GetProject fetches a single project by ID
func (c *HTTPClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	if env.Project == nil {
		return nil, fmt.Errorf("get project %s: empty response", id)
	}
	return env.Project, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out *envelope) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if resp.StatusCode >= 300 {
			return &RemoteError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 300 || !out.OK {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}
