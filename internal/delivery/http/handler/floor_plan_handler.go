package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/utils"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

// FloorPlanHandler - планировки
type FloorPlanHandler struct {
	floorPlanUC *usecase.FloorPlanUseCase
	logger      *zap.Logger
}

// NewFloorPlanHandler - создание нового FloorPlanHandler
func NewFloorPlanHandler(floorPlanUC *usecase.FloorPlanUseCase, logger *zap.Logger) *FloorPlanHandler {
	return &FloorPlanHandler{
		floorPlanUC: floorPlanUC,
		logger:      logger,
	}
}

// Get godoc
// @Summary Планировка по ID
// @Tags FloorPlans
// @Produce json
// @Param id path int true "ID планировки"
// @Success 200 {object} utils.SuccessResponse{data=domain.FloorPlan}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/floor-plans/{id} [get]
func (h *FloorPlanHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.floorPlanUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plan, nil)
}

// Create godoc
// @Summary Создать планировку
// @Tags FloorPlans
// @Accept json
// @Produce json
// @Param request body dto.FloorPlanRequest true "Планировка"
// @Success 201 {object} utils.SuccessResponse{data=domain.FloorPlan}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/floor-plans [post]
func (h *FloorPlanHandler) Create(c *fiber.Ctx) error {
	var req dto.FloorPlanRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.floorPlanUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, plan)
}

// Update godoc
// @Summary Обновить планировку
// @Tags FloorPlans
// @Accept json
// @Produce json
// @Param id path int true "ID планировки"
// @Param request body dto.FloorPlanRequest true "Планировка"
// @Success 200 {object} utils.SuccessResponse{data=domain.FloorPlan}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/floor-plans/{id} [put]
func (h *FloorPlanHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.FloorPlanRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	plan, err := h.floorPlanUC.Update(c.Context(), id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plan, nil)
}

// Delete godoc
// @Summary Удалить планировку
// @Tags FloorPlans
// @Param id path int true "ID планировки"
// @Param X-Admin-Password header string true "Пароль админки"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse "Планировка используется квартирами"
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/floor-plans/{id} [delete]
func (h *FloorPlanHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.floorPlanUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
