package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=sentiment_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the FinBERT inference service. The model runs out of
// process (PyTorch sidecar); this client only ships text over and reads the
// probability triple back.
type Client struct {
	// baseURL is the base URL of the inference service.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// ClientOption is a configuration option for the inference client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new inference client for the given base URL.
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("sentiment: empty endpoint")
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	// Probabilities is ordered (positive, negative, neutral) and sums to ~1.
	Probabilities []float64 `json:"probabilities"`
}

// Probabilities classifies one text. A 503 from the service means the model
// is not loaded and is surfaced as ErrModelUnavailable.
func (c *Client) Probabilities(ctx context.Context, text string) ([3]float64, error) {
	var zero [3]float64

	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return zero, fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusServiceUnavailable:
		return zero, ErrModelUnavailable
	default:
		return zero, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var decoded classifyResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	if len(decoded.Probabilities) != 3 {
		return zero, fmt.Errorf("expected 3 probabilities, got %d", len(decoded.Probabilities))
	}
	return [3]float64{decoded.Probabilities[0], decoded.Probabilities[1], decoded.Probabilities[2]}, nil
}
