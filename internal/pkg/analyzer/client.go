// Package analyzer is the HTTP client for the remote presence-analyzer
// service. The gateway never computes attendance metrics itself; every
// heavy operation goes through this client and the response is consumed
// as-is.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/presencelab/presence-gateway-go/internal/domain/analysis"
	"github.com/presencelab/presence-gateway-go/internal/domain/editor"
	"github.com/presencelab/presence-gateway-go/internal/domain/exception"
)

// ErrUnreachable wraps transport-level failures: the analyzer could not be
// reached at all, as opposed to rejecting the request.
var ErrUnreachable = errors.New("analyzer service unreachable")

// APIError is a non-success response from the analyzer. Detail carries the
// service's own message and is surfaced to the user verbatim, prefixed.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("analyzer error [%d]: %s", e.StatusCode, e.Detail)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type employeesResponse struct {
	Employees []string `json:"employees"`
}

// Employees uploads the spreadsheet for discovery and returns the full,
// ordered employee universe.
func (c *Client) Employees(ctx context.Context, fileName string, file io.Reader) ([]string, error) {
	resp, err := c.postMultipart(ctx, "/employees", fileName, file, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out employeesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode employees response: %w", err)
	}
	return out.Employees, nil
}

// Analyze submits the spreadsheet plus the scheduling-exception payload and
// returns the full analysis result.
func (c *Client) Analyze(ctx context.Context, fileName string, file io.Reader, params exception.Payload) (*analysis.Result, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode analysis params: %w", err)
	}

	resp, err := c.postMultipart(ctx, "/upload", fileName, file, map[string]string{
		"params": string(paramsJSON),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var result analysis.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode analysis result: %w", err)
	}
	return &result, nil
}

// Download streams a generated report. The body is opaque bytes; the
// caller owns closing it.
func (c *Client) Download(ctx context.Context, reportID string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/download/"+reportID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// SaveModifications commits one per-employee batch of corrections.
func (c *Client) SaveModifications(ctx context.Context, commit editor.CommitRequest) error {
	body, err := json.Marshal(commit)
	if err != nil {
		return fmt.Errorf("encode modifications: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/save-modifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *Client) postMultipart(ctx context.Context, path, fileName string, file io.Reader, fields map[string]string) (*http.Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload body: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return resp, nil
}

// checkStatus converts a non-2xx response into an APIError, extracting the
// analyzer's {"detail": ...} payload when present.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: resp.Status}
	var payload struct {
		Detail string `json:"detail"`
	}
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			apiErr.Detail = payload.Detail
		}
	}
	return apiErr
}
