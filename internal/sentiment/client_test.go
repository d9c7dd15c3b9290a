package sentiment_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sentify/internal/sentiment"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	// Assert: a valid endpoint should return a client.
	client, err := sentiment.NewClient("http://localhost:8090")
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNewClient_EmptyEndpoint(t *testing.T) {
	t.Parallel()

	client, err := sentiment.NewClient("")
	require.Error(t, err)
	require.Nil(t, client)
}

func TestProbabilities(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method and verify the request shape.
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodPost, req.Method)
			require.True(t, strings.HasSuffix(req.URL.Path, "/classify"))
			require.Equal(t, "application/json", req.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			require.Equal(t, "great quarter", body["text"])

			buffer := &bytes.Buffer{}
			require.NoError(t, json.NewEncoder(buffer).Encode(map[string]any{
				"probabilities": []float64{0.7, 0.2, 0.1},
			}))
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(buffer),
			}, nil
		}).
		Times(1)

	// Arrange: create a new client with the mock HTTP client.
	client, err := sentiment.NewClient("http://localhost:8090", sentiment.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: classify a text.
	probs, err := client.Probabilities(t.Context(), "great quarter")
	require.NoError(t, err)
	require.Equal(t, [3]float64{0.7, 0.2, 0.1}, probs)
}

func TestProbabilities_ServiceUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(&http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil).
		Times(1)

	client, err := sentiment.NewClient("http://localhost:8090", sentiment.WithHTTPClient(httpClient))
	require.NoError(t, err)

	_, err = client.Probabilities(t.Context(), "text")
	require.ErrorIs(t, err, sentiment.ErrModelUnavailable)
}

func TestProbabilities_WrongArity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"probabilities":[0.5,0.5]}`)),
		}, nil).
		Times(1)

	client, err := sentiment.NewClient("http://localhost:8090", sentiment.WithHTTPClient(httpClient))
	require.NoError(t, err)

	_, err = client.Probabilities(t.Context(), "text")
	require.ErrorContains(t, err, "expected 3 probabilities")
}

func TestWithHeader(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bar", req.Header.Get("foo"))
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"probabilities":[0.1,0.1,0.8]}`)),
			}, nil
		}).
		Times(1)

	client, err := sentiment.NewClient("http://localhost:8090",
		sentiment.WithHTTPClient(httpClient),
		sentiment.WithHeader(http.Header{"foo": []string{"bar"}}))
	require.NoError(t, err)

	_, err = client.Probabilities(t.Context(), "text")
	require.NoError(t, err)
}
