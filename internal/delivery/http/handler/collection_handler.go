package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skatespot-service/internal/delivery/http/middleware"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
	"github.com/skatespot-service/internal/pkg/validator"
	"github.com/skatespot-service/internal/usecase"
	"github.com/skatespot-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CollectionHandler - HTTP handlers for user spot collections
type CollectionHandler struct {
	collectionUC *usecase.CollectionUseCase
	logger       *zap.Logger
}

// NewCollectionHandler - creates a CollectionHandler
func NewCollectionHandler(collectionUC *usecase.CollectionUseCase, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: collectionUC,
		logger:       logger,
	}
}

// CreateCollection godoc
// @Summary Create a spot collection
// @Tags Collections
// @Accept json
// @Produce json
// @Param request body dto.CreateCollectionRequest true "Collection"
// @Success 201 {object} utils.SuccessResponse{data=domain.Collection}
// @Failure 400 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/collections [post]
func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var req dto.CreateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	collection, err := h.collectionUC.CreateCollection(
		c.Context(),
		middleware.UserID(c),
		req.Name,
		req.Description,
		req.IsPublic,
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: collection})
}

// GetCollection godoc
// @Summary Get a collection by ID
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Collection}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/collections/{id} [get]
func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	collection, err := h.collectionUC.GetCollection(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, collection, nil)
}

// ListMyCollections godoc
// @Summary List the authenticated user's collections
// @Tags Collections
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Collection}
// @Security api_key
// @Router /api/v1/collections [get]
func (h *CollectionHandler) ListMyCollections(c *fiber.Ctx) error {
	collections, err := h.collectionUC.ListUserCollections(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, collections, nil)
}

// AddSpot godoc
// @Summary Add a spot to a collection
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Param spotId path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/collections/{id}/spots/{spotId} [post]
func (h *CollectionHandler) AddSpot(c *fiber.Ctx) error {
	err := h.collectionUC.AddSpotToCollection(
		c.Context(),
		c.Params("id"),
		c.Params("spotId"),
		middleware.UserID(c),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"added": true}, nil)
}

// RemoveSpot godoc
// @Summary Remove a spot from a collection
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Param spotId path string true "Spot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/collections/{id}/spots/{spotId} [delete]
func (h *CollectionHandler) RemoveSpot(c *fiber.Ctx) error {
	err := h.collectionUC.RemoveSpotFromCollection(
		c.Context(),
		c.Params("id"),
		c.Params("spotId"),
		middleware.UserID(c),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"removed": true}, nil)
}
