package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/overlay"
	"github.com/floorplan-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("apartment_status", validateApartmentStatus)
	_ = validate.RegisterValidation("coords", validateCoords)
}

// Validate - валидация структуры; ошибки полей возвращаются как INVALID_REQUEST
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// validateApartmentStatus - значение из закрытого набора статусов (с алиасами)
func validateApartmentStatus(fl validator.FieldLevel) bool {
	_, ok := domain.ParseApartmentStatus(fl.Field().String())
	return ok
}

// validateCoords - строка "x1,y1,..." задаёт отрисовываемый полигон
func validateCoords(fl validator.FieldLevel) bool {
	_, err := overlay.ParseRegion(0, "", fl.Field().String(), domain.StatusUnknown)
	return err == nil
}
