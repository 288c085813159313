package admissions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/digitalocean/admissions-form/pkg/models"
)

// EndpointPath is the admissions API route that receives leads.
const EndpointPath = "/api/admissions"

// ErrMalformedResponse is returned when the response body is not JSON.
var ErrMalformedResponse = errors.New("malformed admissions response")

// TransportError wraps a failure to reach the admissions API at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error posting lead: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError is returned when the API answers with a non-2xx status or
// with ok set to false. Detail carries the API's error field, if any.
type RejectedError struct {
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("lead rejected by admissions API (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("lead rejected by admissions API (status %d): %s", e.StatusCode, e.Detail)
}

// Client defines the interface for sending leads to the admissions API
type Client interface {
	SubmitLead(ctx context.Context, lead models.LeadSubmission) error
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new admissions API client. baseURL is the scheme and
// host of the API; EndpointPath is appended to it.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &clientImpl{
		endpoint:   strings.TrimRight(baseURL, "/") + EndpointPath,
		httpClient: httpClient,
	}
}

// submitResponse reads only ok; error may hold any JSON value.
type submitResponse struct {
	OK    interface{}     `json:"ok"`
	Error json.RawMessage `json:"error"`
}

// detail renders the error field for logs. Strings are unquoted, null and
// absent are empty, anything else is kept as raw JSON.
func (r submitResponse) detail() string {
	raw := bytes.TrimSpace(r.Error)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (c *clientImpl) SubmitLead(ctx context.Context, lead models.LeadSubmission) error {
	payload, err := lead.Payload()
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	var parsed submitResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !truthy(parsed.OK) {
		return &RejectedError{StatusCode: resp.StatusCode, Detail: parsed.detail()}
	}

	return nil
}

// truthy follows loose JSON truthiness so that ok: 1 or ok: "yes" count.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
