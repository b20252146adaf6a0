package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/utils"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

type CalculatorHandler struct {
	calculatorUC *usecase.CalculatorUseCase
	logger       *zap.Logger
}

func NewCalculatorHandler(calculatorUC *usecase.CalculatorUseCase, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorUC: calculatorUC,
		logger:       logger,
	}
}

// Payment godoc
// @Summary Расчёт рассрочки
// @Description Первый взнос и равные ежемесячные платежи без процентов
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Параметры"
// @Success 200 {object} utils.SuccessResponse{data=dto.PaymentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/calculator/payment [post]
func (h *CalculatorHandler) Payment(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.calculatorUC.Calculate(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
