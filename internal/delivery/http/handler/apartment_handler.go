package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/utils"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

// ApartmentHandler - квартиры и выдача этажа
type ApartmentHandler struct {
	apartmentUC *usecase.ApartmentUseCase
	logger      *zap.Logger
}

// NewApartmentHandler - создание нового ApartmentHandler
func NewApartmentHandler(apartmentUC *usecase.ApartmentUseCase, logger *zap.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentUC: apartmentUC,
		logger:      logger,
	}
}

// GetFloorListing godoc
// @Summary Квартиры этажа, сгруппированные по планировкам
// @Description Возвращает планировки этажа; в каждой этаж с квартирами и их контурами
// @Description mobile_paths/desktop_paths в формате "x1,y1,x2,y2,..."
// @Tags Apartments
// @Produce json
// @Param buildingId path int true "ID корпуса"
// @Param floorId path int true "ID этажа"
// @Success 200 {object} utils.SuccessResponse{data=domain.FloorListing}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/apartments/{buildingId}/{floorId} [get]
func (h *ApartmentHandler) GetFloorListing(c *fiber.Ctx) error {
	buildingID, err := paramID(c, "buildingId")
	if err != nil {
		return utils.SendError(c, err)
	}
	floorID, err := paramID(c, "floorId")
	if err != nil {
		return utils.SendError(c, err)
	}

	listing, err := h.apartmentUC.GetFloorListing(c.Context(), buildingID, floorID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, listing, &utils.Meta{Total: len(listing.FloorPlans)})
}

// Get godoc
// @Summary Квартира по ID
// @Tags Apartments
// @Produce json
// @Param id path int true "ID квартиры"
// @Success 200 {object} utils.SuccessResponse{data=domain.Apartment}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/apartments/{id} [get]
func (h *ApartmentHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	apartment, err := h.apartmentUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, apartment, nil)
}

// Create godoc
// @Summary Создать квартиру
// @Tags Apartments
// @Accept json
// @Produce json
// @Param request body dto.ApartmentRequest true "Квартира"
// @Success 201 {object} utils.SuccessResponse{data=domain.Apartment}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/apartments [post]
func (h *ApartmentHandler) Create(c *fiber.Ctx) error {
	var req dto.ApartmentRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	apartment, err := h.apartmentUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, apartment)
}

// Update godoc
// @Summary Обновить квартиру
// @Tags Apartments
// @Accept json
// @Produce json
// @Param id path int true "ID квартиры"
// @Param request body dto.ApartmentRequest true "Квартира"
// @Success 200 {object} utils.SuccessResponse{data=domain.Apartment}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/apartments/{id} [put]
func (h *ApartmentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ApartmentRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	apartment, err := h.apartmentUC.Update(c.Context(), id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, apartment, nil)
}

// UpdateStatus godoc
// @Summary Сменить статус квартиры
// @Description Принимает available/reserved/sold (и синонимы free/booked)
// @Tags Apartments
// @Accept json
// @Produce json
// @Param id path int true "ID квартиры"
// @Param request body dto.UpdateStatusRequest true "Статус"
// @Success 200 {object} utils.SuccessResponse{data=domain.Apartment}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/apartments/{id}/status [patch]
func (h *ApartmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateStatusRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	apartment, err := h.apartmentUC.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, apartment, nil)
}

// Delete godoc
// @Summary Удалить квартиру
// @Tags Apartments
// @Param id path int true "ID квартиры"
// @Param X-Admin-Password header string true "Пароль админки"
// @Success 204
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/apartments/{id} [delete]
func (h *ApartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.apartmentUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
