package classifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	apperrors "github.com/skatespot-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Detect(t *testing.T) {
	logger := zap.NewNop()
	image := []byte("fake-jpeg-bytes")

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/detect", r.URL.Path)
			assert.Equal(t, "Bearer test_key", r.Header.Get("Authorization"))

			var req detectRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			decoded, err := base64.StdEncoding.DecodeString(req.Image)
			require.NoError(t, err)
			assert.Equal(t, image, decoded)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(detectResponse{
				Predictions: []domain.Detection{
					{Class: "handrail", Confidence: 0.92, X: 10, Y: 20, Width: 150, Height: 60},
					{Class: "stairs", Confidence: 0.71, X: 5, Y: 80, Width: 200, Height: 120},
				},
			})
		}))
		defer server.Close()

		cfg := &config.ClassifierConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 30,
		}
		client := NewClassifierClient(cfg, logger)

		detections, err := client.Detect(context.Background(), image)
		require.NoError(t, err)
		require.Len(t, detections, 2)
		assert.Equal(t, "handrail", detections[0].Class)
		assert.Equal(t, 0.92, detections[0].Confidence)
	})

	t.Run("no auth header without api key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(detectResponse{})
		}))
		defer server.Close()

		client := NewClassifierClient(&config.ClassifierConfig{BaseURL: server.URL, RequestTimeout: 30}, logger)

		_, err := client.Detect(context.Background(), image)
		assert.NoError(t, err)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClassifierClient(&config.ClassifierConfig{BaseURL: server.URL, RequestTimeout: 30}, logger)

		_, err := client.Detect(context.Background(), image)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("application error in body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(detectResponse{Error: "unsupported image format"})
		}))
		defer server.Close()

		client := NewClassifierClient(&config.ClassifierConfig{BaseURL: server.URL, RequestTimeout: 30}, logger)

		_, err := client.Detect(context.Background(), image)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported image format")
	})

	t.Run("empty image is rejected locally", func(t *testing.T) {
		client := NewClassifierClient(&config.ClassifierConfig{BaseURL: "http://localhost:9", RequestTimeout: 30}, logger)

		_, err := client.Detect(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("unconfigured client reports unavailable", func(t *testing.T) {
		client := NewClassifierClient(&config.ClassifierConfig{RequestTimeout: 30}, logger)

		assert.False(t, client.Available())
		_, err := client.Detect(context.Background(), image)
		assert.ErrorIs(t, err, apperrors.ErrClassifierUnavailable)
	})

	t.Run("unreachable classifier reports unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // nothing listens here anymore

		client := NewClassifierClient(&config.ClassifierConfig{BaseURL: server.URL, RequestTimeout: 30}, logger)

		_, err := client.Detect(context.Background(), image)
		assert.ErrorIs(t, err, apperrors.ErrClassifierUnavailable)
	})
}
