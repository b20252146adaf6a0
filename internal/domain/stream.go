package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamApartmentStatus = "stream:apartment:status"
)

// ApartmentStatusChangedEvent - событие смены статуса квартиры
type ApartmentStatusChangedEvent struct {
	EventID     uuid.UUID       `json:"event_id"`
	ApartmentID int64           `json:"apartment_id"`
	BuildingID  int64           `json:"building_id"`
	FloorID     int64           `json:"floor_id"`
	OldStatus   ApartmentStatus `json:"old_status"`
	NewStatus   ApartmentStatus `json:"new_status"`
	ChangedAt   time.Time       `json:"changed_at"`
}

// NewApartmentStatusChangedEvent собирает событие по квартире до и после изменения
func NewApartmentStatusChangedEvent(apartment *Apartment, oldStatus ApartmentStatus) *ApartmentStatusChangedEvent {
	return &ApartmentStatusChangedEvent{
		EventID:     uuid.New(),
		ApartmentID: apartment.ID,
		BuildingID:  apartment.BuildingID,
		FloorID:     apartment.FloorID,
		OldStatus:   oldStatus,
		NewStatus:   apartment.Status,
		ChangedAt:   time.Now().UTC(),
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
