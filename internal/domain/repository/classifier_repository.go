package repository

import (
	"context"

	"github.com/skatespot-service/internal/domain"
)

// ClassifierRepository is the contract with the external computer-vision service.
type ClassifierRepository interface {
	// Detect submits image bytes and returns labeled detections. Any transport
	// or service error surfaces as an error; the caller decides the fallback.
	Detect(ctx context.Context, image []byte) ([]domain.Detection, error)

	// Available reports whether the classifier is configured at all.
	Available() bool
}
