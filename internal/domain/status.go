package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ApartmentStatus - закрытый набор статусов квартиры
type ApartmentStatus string

const (
	StatusAvailable ApartmentStatus = "available"
	StatusReserved  ApartmentStatus = "reserved"
	StatusSold      ApartmentStatus = "sold"
	StatusUnknown   ApartmentStatus = "unknown"
)

// statusAliases - значения, которые исторически приходили из админки
var statusAliases = map[string]ApartmentStatus{
	"available": StatusAvailable,
	"free":      StatusAvailable,
	"reserved":  StatusReserved,
	"booked":    StatusReserved,
	"sold":      StatusSold,
}

// ParseApartmentStatus приводит сырое значение к статусу.
// Для нераспознанных значений возвращает StatusUnknown и false.
func ParseApartmentStatus(raw string) (ApartmentStatus, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return StatusUnknown, false
	}
	return status, true
}

// IsSelectable - квартиру можно выбрать для покупки
func (s ApartmentStatus) IsSelectable() bool {
	return s == StatusAvailable
}

func (s ApartmentStatus) MarshalText() ([]byte, error) {
	if s == "" {
		return []byte(StatusUnknown), nil
	}
	return []byte(s), nil
}

func (s *ApartmentStatus) UnmarshalText(text []byte) error {
	if string(text) == string(StatusUnknown) {
		*s = StatusUnknown
		return nil
	}
	status, ok := ParseApartmentStatus(string(text))
	if !ok {
		return fmt.Errorf("unrecognized apartment status %q", string(text))
	}
	*s = status
	return nil
}

// Scan - граница десериализации из БД: неизвестные значения помечаются как unknown
func (s *ApartmentStatus) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = StatusUnknown
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into ApartmentStatus", src)
	}
	*s, _ = ParseApartmentStatus(raw)
	return nil
}

func (s ApartmentStatus) Value() (driver.Value, error) {
	if s == "" || s == StatusUnknown {
		return nil, fmt.Errorf("refusing to persist unknown apartment status")
	}
	return string(s), nil
}
