// Package media talks to the external media storage service that holds
// avatars, CVs and company logos. The service returns a stable
// {identifier, retrieval URL} pair per uploaded asset.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/campushire/jobboard/internal/entities"
	"golang.org/x/time/rate"
)

type uploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL     string
	apiKey      string
	timeout     time.Duration
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Upload stores content under the given folder and returns its reference.
// There is no retry: a failed upload fails the caller's whole operation.
func (c *Client) Upload(ctx context.Context, content []byte, filename, folder string) (entities.MediaRef, error) {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return entities.MediaRef{}, fmt.Errorf("error creating multipart body: %v", err)
	}
	if _, err = part.Write(content); err != nil {
		return entities.MediaRef{}, fmt.Errorf("error writing multipart body: %v", err)
	}
	if err = writer.WriteField("folder", folder); err != nil {
		return entities.MediaRef{}, fmt.Errorf("error writing multipart field: %v", err)
	}
	if err = writer.Close(); err != nil {
		return entities.MediaRef{}, fmt.Errorf("error closing multipart body: %v", err)
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/assets", &buf, writer.FormDataContentType())
	if err != nil {
		return entities.MediaRef{}, err
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&uploaded); err != nil {
		return entities.MediaRef{}, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return entities.MediaRef{ID: uploaded.ID, URL: uploaded.URL}, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, "DELETE", c.baseURL+"/assets/"+id, nil, "")
	return err
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader, contentType string) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
