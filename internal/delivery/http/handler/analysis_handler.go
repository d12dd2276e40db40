package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/skatespot-service/internal/delivery/http/middleware"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/pkg/validator"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// maxImageBytes caps uploads before they reach the detector.
const maxImageBytes = 10 << 20

// AnalysisHandler - HTTP handlers for image classification
type AnalysisHandler struct {
	analysisUC *usecase.AnalysisUseCase
	logger     *zap.Logger
}

// NewAnalysisHandler - creates an AnalysisHandler
func NewAnalysisHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// AnalyzeSpot godoc
// @Summary Classify a spot photo
// @Description Runs object detection on an uploaded image and derives spot type, difficulty, features and trick suggestions. Always returns a result; the source field tells whether the detector answered.
// @Tags Analysis
// @Accept mpfd
// @Produce json
// @Param image formData file true "Spot photo"
// @Success 200 {object} utils.SuccessResponse{data=domain.AnalysisResult}
// @Failure 400 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/spots/analyze [post]
func (h *AnalysisHandler) AnalyzeSpot(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	if fileHeader.Size > maxImageBytes {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"max_bytes": maxImageBytes,
		}))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	result := h.analysisUC.Analyze(c.Context(), image, middleware.UserID(c))

	return utils.SendSuccess(c, result, nil)
}

// RateDifficulty godoc
// @Summary Rate spot difficulty from measured features
// @Description Deterministic scoring over obstacle dimensions, no image required.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.RateDifficultyRequest true "Feature measurements in cm/degrees"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/spots/rate-difficulty [post]
func (h *AnalysisHandler) RateDifficulty(c *fiber.Ctx) error {
	var req dto.RateDifficultyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	difficulty := h.analysisUC.RateDifficulty(req.Features)

	return utils.SendSuccess(c, fiber.Map{"difficulty": difficulty}, nil)
}
