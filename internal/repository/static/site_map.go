package static

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
)

// siteMapRepository держит карту комплекса, прочитанную при старте
type siteMapRepository struct {
	siteMap *domain.SiteMap
}

// LoadSiteMap читает YAML с картой комплекса
func LoadSiteMap(path string, logger *zap.Logger) (repository.SiteMapRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site map %s: %w", path, err)
	}

	siteMap, err := ParseSiteMap(data)
	if err != nil {
		return nil, fmt.Errorf("parse site map %s: %w", path, err)
	}

	logger.Info("Site map loaded",
		zap.String("path", path),
		zap.String("image", siteMap.Image),
		zap.Int("buildings", len(siteMap.Buildings)),
	)

	return NewSiteMapRepository(siteMap), nil
}

// NewSiteMapRepository оборачивает уже готовую карту
func NewSiteMapRepository(siteMap *domain.SiteMap) repository.SiteMapRepository {
	return &siteMapRepository{siteMap: siteMap}
}

// ParseSiteMap декодирует YAML и проверяет размеры подложки
func ParseSiteMap(data []byte) (*domain.SiteMap, error) {
	var siteMap domain.SiteMap
	if err := yaml.Unmarshal(data, &siteMap); err != nil {
		return nil, err
	}
	if !siteMap.ImageSize().Known() {
		return nil, fmt.Errorf("site map image size must be positive, got %vx%v", siteMap.Width, siteMap.Height)
	}

	seen := make(map[int64]bool, len(siteMap.Buildings))
	for _, b := range siteMap.Buildings {
		if seen[b.BuildingID] {
			return nil, fmt.Errorf("duplicate building_id %d", b.BuildingID)
		}
		seen[b.BuildingID] = true
	}
	return &siteMap, nil
}

func (r *siteMapRepository) GetSiteMap(_ context.Context) (*domain.SiteMap, error) {
	return r.siteMap, nil
}
