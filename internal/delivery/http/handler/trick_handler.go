package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/usecase"
	"go.uber.org/zap"
)

// TrickHandler - HTTP handlers for the trick catalog
type TrickHandler struct {
	trickUC *usecase.TrickUseCase
	logger  *zap.Logger
}

// NewTrickHandler - creates a TrickHandler
func NewTrickHandler(trickUC *usecase.TrickUseCase, logger *zap.Logger) *TrickHandler {
	return &TrickHandler{
		trickUC: trickUC,
		logger:  logger,
	}
}

// ListTricks godoc
// @Summary List tricks suited to a spot type
// @Tags Tricks
// @Produce json
// @Param spotType query string true "Spot type"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Trick}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tricks [get]
func (h *TrickHandler) ListTricks(c *fiber.Ctx) error {
	spotType := c.Query("spotType")
	if spotType == "" {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"spotType": "required",
		}))
	}

	tricks, err := h.trickUC.GetTricksForSpotType(c.Context(), domain.SpotType(spotType))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tricks, nil)
}

// GetDailyChallenge godoc
// @Summary Get today's trick challenge
// @Tags Tricks
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.DailyChallenge}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/challenges/daily [get]
func (h *TrickHandler) GetDailyChallenge(c *fiber.Ctx) error {
	challenge, err := h.trickUC.GetDailyChallenge(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, challenge, nil)
}
