package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/utils"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

// SelectionHandler - сессии выбора корпус/этаж/квартира
type SelectionHandler struct {
	selectionUC *usecase.SelectionUseCase
	logger      *zap.Logger
}

// NewSelectionHandler - создание нового SelectionHandler
func NewSelectionHandler(selectionUC *usecase.SelectionUseCase, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		selectionUC: selectionUC,
		logger:      logger,
	}
}

// Create godoc
// @Summary Новая сессия выбора
// @Tags Selection
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=selection.Session}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/selection [post]
func (h *SelectionHandler) Create(c *fiber.Ctx) error {
	session, err := h.selectionUC.Create(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, session)
}

// Get godoc
// @Summary Состояние сессии выбора
// @Tags Selection
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=selection.Session}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/selection/{id} [get]
func (h *SelectionHandler) Get(c *fiber.Ctx) error {
	session, err := h.selectionUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, session, nil)
}

// Dispatch godoc
// @Summary Применить действие к сессии
// @Description Смена корпуса сбрасывает этаж и квартиру, смена этажа сбрасывает квартиру
// @Tags Selection
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.SelectionActionRequest true "Действие"
// @Success 200 {object} utils.SuccessResponse{data=selection.Session}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/selection/{id}/actions [post]
func (h *SelectionHandler) Dispatch(c *fiber.Ctx) error {
	var req dto.SelectionActionRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.selectionUC.Dispatch(c.Context(), c.Params("id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, session, nil)
}
