package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skatespot-service/internal/delivery/http/middleware"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/pkg/validator"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SpotHandler - HTTP handlers for spot discovery and CRUD
type SpotHandler struct {
	spotUC *usecase.SpotUseCase
	logger *zap.Logger
}

// NewSpotHandler - creates a SpotHandler
func NewSpotHandler(spotUC *usecase.SpotUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

// ListSpots godoc
// @Summary List skate spots
// @Description Filtered, paginated spot listing. With latitude+longitude it becomes a radius search (default 10 km) annotated with distances.
// @Tags Spots
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param latitude query number false "Search center latitude"
// @Param longitude query number false "Search center longitude"
// @Param radius query number false "Search radius in km" default(10)
// @Param type query string false "Spot type filter"
// @Param surface query string false "Surface filter"
// @Param difficulty query string false "Difficulty filter"
// @Param verified query bool false "Verified filter"
// @Param userId query string false "Creator filter"
// @Param search query string false "Free-text search over name and description"
// @Param minScore query number false "Minimum skateability score"
// @Param sortBy query string false "Sort field" default(created_at)
// @Param sortOrder query string false "Sort direction (asc|desc)" default(desc)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Spot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/spots [get]
func (h *SpotHandler) ListSpots(c *fiber.Ctx) error {
	var req dto.ListSpotsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.spotUC.GetSpots(c.Context(), req.ToQueryOptions())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Data, &utils.Meta{
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// GetSpot godoc
// @Summary Get one spot by ID
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/spots/{id} [get]
func (h *SpotHandler) GetSpot(c *fiber.Ctx) error {
	spot, err := h.spotUC.GetSpotByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// CreateSpot godoc
// @Summary Create a spot
// @Description Requires a name and resolvable coordinates (nested location or flat latitude/longitude).
// @Tags Spots
// @Accept json
// @Produce json
// @Param request body dto.CreateSpotRequest true "Spot draft"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/spots [post]
func (h *SpotHandler) CreateSpot(c *fiber.Ctx) error {
	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	spot, err := h.spotUC.CreateSpot(c.Context(), req.ToDraft(middleware.UserID(c)))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: spot})
}

// UpdateSpot godoc
// @Summary Update a spot
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path string true "Spot ID"
// @Param request body dto.UpdateSpotRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/spots/{id} [put]
func (h *SpotHandler) UpdateSpot(c *fiber.Ctx) error {
	var req dto.UpdateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	spot, err := h.spotUC.UpdateSpot(c.Context(), c.Params("id"), req.ToUpdate())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// VerifySpot godoc
// @Summary Mark a spot as verified
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/spots/{id}/verify [post]
func (h *SpotHandler) VerifySpot(c *fiber.Ctx) error {
	if err := h.spotUC.VerifySpot(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"verified": true}, nil)
}

// ArchiveSpot godoc
// @Summary Archive (soft-delete) a spot
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/spots/{id} [delete]
func (h *SpotHandler) ArchiveSpot(c *fiber.Ctx) error {
	if err := h.spotUC.ArchiveSpot(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"status": domain.SpotStatusArchived}, nil)
}

// GetUserSpots godoc
// @Summary List spots created by a user
// @Tags Spots
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Spot}
// @Router /api/v1/users/{userId}/spots [get]
func (h *SpotHandler) GetUserSpots(c *fiber.Ctx) error {
	result, err := h.spotUC.GetUserSpots(
		c.Context(),
		c.Params("userId"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 20),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Data, &utils.Meta{
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}
