package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/utils"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

// BuildingHandler - корпуса и их этажи
type BuildingHandler struct {
	buildingUC  *usecase.BuildingUseCase
	floorUC     *usecase.FloorUseCase
	floorPlanUC *usecase.FloorPlanUseCase
	logger      *zap.Logger
}

// NewBuildingHandler - создание нового BuildingHandler
func NewBuildingHandler(
	buildingUC *usecase.BuildingUseCase,
	floorUC *usecase.FloorUseCase,
	floorPlanUC *usecase.FloorPlanUseCase,
	logger *zap.Logger,
) *BuildingHandler {
	return &BuildingHandler{
		buildingUC:  buildingUC,
		floorUC:     floorUC,
		floorPlanUC: floorPlanUC,
		logger:      logger,
	}
}

// List godoc
// @Summary Список корпусов
// @Tags Buildings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Building}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/buildings [get]
func (h *BuildingHandler) List(c *fiber.Ctx) error {
	buildings, err := h.buildingUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, buildings, &utils.Meta{Total: len(buildings)})
}

// Get godoc
// @Summary Корпус по ID
// @Tags Buildings
// @Produce json
// @Param id path int true "ID корпуса"
// @Success 200 {object} utils.SuccessResponse{data=domain.Building}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id} [get]
func (h *BuildingHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	building, err := h.buildingUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, building, nil)
}

// Create godoc
// @Summary Создать корпус
// @Tags Buildings
// @Accept json
// @Produce json
// @Param request body dto.BuildingRequest true "Корпус"
// @Success 201 {object} utils.SuccessResponse{data=domain.Building}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/buildings [post]
func (h *BuildingHandler) Create(c *fiber.Ctx) error {
	var req dto.BuildingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	building, err := h.buildingUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, building)
}

// Update godoc
// @Summary Обновить корпус
// @Tags Buildings
// @Accept json
// @Produce json
// @Param id path int true "ID корпуса"
// @Param request body dto.BuildingRequest true "Корпус"
// @Success 200 {object} utils.SuccessResponse{data=domain.Building}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id} [put]
func (h *BuildingHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BuildingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	building, err := h.buildingUC.Update(c.Context(), id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, building, nil)
}

// Delete godoc
// @Summary Удалить корпус вместе с этажами и квартирами
// @Tags Buildings
// @Param id path int true "ID корпуса"
// @Param X-Admin-Password header string true "Пароль админки"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id} [delete]
func (h *BuildingHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.buildingUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// ListFloors godoc
// @Summary Этажи корпуса
// @Tags Floors
// @Produce json
// @Param id path int true "ID корпуса"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Floor}
// @Router /api/v1/buildings/{id}/floors [get]
func (h *BuildingHandler) ListFloors(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	floors, err := h.floorUC.ListByBuilding(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, floors, &utils.Meta{Total: len(floors)})
}

// UpsertFloor godoc
// @Summary Создать или обновить этаж по номеру
// @Tags Floors
// @Accept json
// @Produce json
// @Param id path int true "ID корпуса"
// @Param request body dto.FloorRequest true "Этаж"
// @Success 200 {object} utils.SuccessResponse{data=domain.Floor}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id}/floors [put]
func (h *BuildingHandler) UpsertFloor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.FloorRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	floor, err := h.floorUC.Upsert(c.Context(), id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, floor, nil)
}

// DeleteFloor godoc
// @Summary Удалить этаж
// @Tags Floors
// @Param id path int true "ID корпуса"
// @Param floorId path int true "ID этажа"
// @Param X-Admin-Password header string true "Пароль админки"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id}/floors/{floorId} [delete]
func (h *BuildingHandler) DeleteFloor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	floorID, err := paramID(c, "floorId")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.floorUC.Delete(c.Context(), id, floorID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// ListFloorPlans godoc
// @Summary Планировки корпуса
// @Tags FloorPlans
// @Produce json
// @Param id path int true "ID корпуса"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.FloorPlan}
// @Router /api/v1/buildings/{id}/floor-plans [get]
func (h *BuildingHandler) ListFloorPlans(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	plans, err := h.floorPlanUC.ListByBuilding(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plans, &utils.Meta{Total: len(plans)})
}
