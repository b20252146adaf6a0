package repository

import (
	"context"

	"github.com/floorplan-service/internal/domain"
)

// SiteMapRepository отдаёт карту комплекса с контурами корпусов
type SiteMapRepository interface {
	// GetSiteMap возвращает карту комплекса
	GetSiteMap(ctx context.Context) (*domain.SiteMap, error)
}
