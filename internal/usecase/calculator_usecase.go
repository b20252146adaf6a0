package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/calculator"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/usecase/dto"
)

// CalculatorUseCase - калькулятор рассрочки
type CalculatorUseCase struct {
	apartmentRepo repository.ApartmentRepository
	logger        *zap.Logger
}

// NewCalculatorUseCase создает новый экземпляр CalculatorUseCase
func NewCalculatorUseCase(apartmentRepo repository.ApartmentRepository, logger *zap.Logger) *CalculatorUseCase {
	return &CalculatorUseCase{
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

// Calculate считает график платежей; с apartment_id цена берётся из квартиры
func (uc *CalculatorUseCase) Calculate(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	price := req.Price
	if req.ApartmentID > 0 {
		apartment, err := uc.apartmentRepo.GetByID(ctx, req.ApartmentID)
		if err != nil {
			return nil, err
		}
		price = apartment.Price
	}

	schedule, err := calculator.Calculate(calculator.Plan{
		Price:              price,
		DownPaymentPercent: req.DownPaymentPercent,
		Months:             req.Months,
	})
	if err != nil {
		return nil, errors.ErrInvalidCalculation.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	return &dto.PaymentResponse{
		ApartmentID: req.ApartmentID,
		Price:       price,
		Schedule:    schedule,
	}, nil
}
