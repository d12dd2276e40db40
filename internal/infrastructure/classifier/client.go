package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// detectRequest is the wire format the vision service accepts: base64 image bytes.
type detectRequest struct {
	Image string `json:"image"`
}

// detectResponse is the only structure assumed from the vision service.
type detectResponse struct {
	Predictions []domain.Detection `json:"predictions"`
	Error       string             `json:"error,omitempty"`
}

// NewClassifierClient creates a client for the external computer-vision service.
// The timeout bounds the whole request so a slow classifier degrades to the
// fallback path instead of hanging the caller.
func NewClassifierClient(cfg *config.ClassifierConfig, logger *zap.Logger) repository.ClassifierRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *client) Available() bool {
	return c.baseURL != ""
}

// Detect submits the image and returns labeled detections.
func (c *client) Detect(ctx context.Context, image []byte) ([]domain.Detection, error) {
	if !c.Available() {
		return nil, errors.ErrClassifierUnavailable
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}

	body, err := json.Marshal(detectRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + "/v1/detect"

	c.logger.Debug("Calling classifier",
		zap.String("url", url),
		zap.Int("image_bytes", len(image)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure means the classifier is unreachable, which the
		// caller treats the same as not configured.
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrClassifierUnavailable.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Classifier returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("classifier error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var detectResp detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&detectResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if detectResp.Error != "" {
		c.logger.Error("Classifier returned application error",
			zap.String("error", detectResp.Error))
		return nil, fmt.Errorf("classifier returned error: %s", detectResp.Error)
	}

	c.logger.Debug("Classifier call successful",
		zap.Int("predictions", len(detectResp.Predictions)))

	return detectResp.Predictions, nil
}
