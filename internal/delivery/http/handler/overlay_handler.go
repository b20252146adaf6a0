package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/pkg/utils"
	"github.com/floorplan-service/internal/pkg/validator"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

// OverlayHandler - интерактивные слои поверх подложек
type OverlayHandler struct {
	overlayUC *usecase.OverlayUseCase
	logger    *zap.Logger
}

// NewOverlayHandler - создание нового OverlayHandler
func NewOverlayHandler(overlayUC *usecase.OverlayUseCase, logger *zap.Logger) *OverlayHandler {
	return &OverlayHandler{
		overlayUC: overlayUC,
		logger:    logger,
	}
}

func parseOverlayQuery(c *fiber.Ctx) (*dto.OverlayQuery, error) {
	var q dto.OverlayQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, errors.ErrInvalidViewport.WithDetails(map[string]interface{}{
			"query": err.Error(),
		})
	}
	if err := validator.Validate(&q); err != nil {
		return nil, err
	}
	return &q, nil
}

func overlayMeta(resp *dto.OverlayResponse) *utils.Meta {
	return &utils.Meta{Total: len(resp.Shapes), Skipped: len(resp.Skipped)}
}

// Site godoc
// @Summary Слой корпусов на карте комплекса
// @Description Контуры корпусов, пересчитанные под отрисованный размер карты
// @Tags Overlay
// @Produce json
// @Param width query number true "Отрисованная ширина, px"
// @Param height query number true "Отрисованная высота, px"
// @Param offset_x query number false "Смещение по X"
// @Param offset_y query number false "Смещение по Y"
// @Success 200 {object} utils.SuccessResponse{data=dto.OverlayResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/overlay/site [get]
func (h *OverlayHandler) Site(c *fiber.Ctx) error {
	q, err := parseOverlayQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.overlayUC.SiteOverlay(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, overlayMeta(resp))
}

// Building godoc
// @Summary Слой этажей на фасаде корпуса
// @Tags Overlay
// @Produce json
// @Param buildingId path int true "ID корпуса"
// @Param width query number true "Отрисованная ширина, px"
// @Param height query number true "Отрисованная высота, px"
// @Success 200 {object} utils.SuccessResponse{data=dto.OverlayResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/overlay/buildings/{buildingId} [get]
func (h *OverlayHandler) Building(c *fiber.Ctx) error {
	buildingID, err := paramID(c, "buildingId")
	if err != nil {
		return utils.SendError(c, err)
	}
	q, err := parseOverlayQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.overlayUC.BuildingOverlay(c.Context(), buildingID, q)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, overlayMeta(resp))
}

// Floor godoc
// @Summary Слой квартир на плане этажа
// @Description Квартиры с некорректными координатами пропускаются и перечислены в skipped
// @Tags Overlay
// @Produce json
// @Param buildingId path int true "ID корпуса"
// @Param floorId path int true "ID этажа"
// @Param width query number true "Отрисованная ширина, px"
// @Param height query number true "Отрисованная высота, px"
// @Param variant query string false "desktop или mobile" Enums(desktop, mobile)
// @Success 200 {object} utils.SuccessResponse{data=dto.OverlayResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/overlay/buildings/{buildingId}/floors/{floorId} [get]
func (h *OverlayHandler) Floor(c *fiber.Ctx) error {
	buildingID, err := paramID(c, "buildingId")
	if err != nil {
		return utils.SendError(c, err)
	}
	floorID, err := paramID(c, "floorId")
	if err != nil {
		return utils.SendError(c, err)
	}
	q, err := parseOverlayQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.overlayUC.FloorOverlay(c.Context(), buildingID, floorID, q)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, overlayMeta(resp))
}

// HitTest godoc
// @Summary Область под точкой
// @Description При перекрытии выигрывает область, нарисованная последней
// @Tags Overlay
// @Accept json
// @Produce json
// @Param request body dto.HitTestRequest true "Точка и размер подложки"
// @Success 200 {object} utils.SuccessResponse{data=dto.HitTestResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/overlay/hit-test [post]
func (h *OverlayHandler) HitTest(c *fiber.Ctx) error {
	var req dto.HitTestRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.overlayUC.HitTest(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
