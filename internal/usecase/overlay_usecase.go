package usecase

import (
	"context"
	stderrors "errors"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/overlay"
	"github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/usecase/dto"
)

// Причины пропуска области
const (
	skipNoPaths     = "no_paths"
	skipTooFew      = "too_few_coordinates"
	skipOddCount    = "odd_value_count"
	skipInvalidData = "invalid_coordinates"
)

// OverlayUseCase строит кликабельные слои: карта комплекса, фасад корпуса, план этажа
type OverlayUseCase struct {
	siteMapRepo  repository.SiteMapRepository
	buildingRepo repository.BuildingRepository
	floorRepo    repository.FloorRepository
	apartmentUC  *ApartmentUseCase
	debounce     time.Duration
	logger       *zap.Logger
}

// NewOverlayUseCase создает новый экземпляр OverlayUseCase.
// debounce уходит клиенту в каждом слое; при debounce <= 0 берётся overlay.DefaultDebounce.
func NewOverlayUseCase(
	siteMapRepo repository.SiteMapRepository,
	buildingRepo repository.BuildingRepository,
	floorRepo repository.FloorRepository,
	apartmentUC *ApartmentUseCase,
	debounce time.Duration,
	logger *zap.Logger,
) *OverlayUseCase {
	if debounce <= 0 {
		debounce = overlay.DefaultDebounce
	}
	return &OverlayUseCase{
		siteMapRepo:  siteMapRepo,
		buildingRepo: buildingRepo,
		floorRepo:    floorRepo,
		apartmentUC:  apartmentUC,
		debounce:     debounce,
		logger:       logger,
	}
}

// rawRegion - область до разбора строки координат
type rawRegion struct {
	id     int64
	label  string
	paths  string
	status domain.ApartmentStatus
}

// SiteOverlay - корпуса на карте комплекса
func (uc *OverlayUseCase) SiteOverlay(ctx context.Context, q *dto.OverlayQuery) (*dto.OverlayResponse, error) {
	if err := validateOverlayQuery(q); err != nil {
		return nil, err
	}

	siteMap, err := uc.siteMapRepo.GetSiteMap(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]rawRegion, 0, len(siteMap.Buildings))
	for _, b := range siteMap.Buildings {
		raw = append(raw, rawRegion{id: b.BuildingID, label: b.Label, paths: b.Paths})
	}

	return uc.render(domain.LevelBuilding, siteMap.Image, siteMap.ImageSize(), raw, q), nil
}

// BuildingOverlay - этажи на фасаде корпуса
func (uc *OverlayUseCase) BuildingOverlay(ctx context.Context, buildingID int64, q *dto.OverlayQuery) (*dto.OverlayResponse, error) {
	if err := validateOverlayQuery(q); err != nil {
		return nil, err
	}

	building, err := uc.buildingRepo.GetByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	floors, err := uc.floorRepo.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	raw := make([]rawRegion, 0, len(floors))
	for _, f := range floors {
		raw = append(raw, rawRegion{id: f.ID, label: strconv.Itoa(f.Number), paths: f.Paths})
	}

	return uc.render(domain.LevelFloor, deref(building.CoverImage), building.CoverSize(), raw, q), nil
}

// FloorOverlay - квартиры на плане этажа
func (uc *OverlayUseCase) FloorOverlay(ctx context.Context, buildingID, floorID int64, q *dto.OverlayQuery) (*dto.OverlayResponse, error) {
	if err := validateOverlayQuery(q); err != nil {
		return nil, err
	}

	floor, err := uc.floorRepo.GetByID(ctx, buildingID, floorID)
	if err != nil {
		return nil, err
	}

	listing, err := uc.apartmentUC.GetFloorListing(ctx, buildingID, floorID)
	if err != nil {
		return nil, err
	}

	variant := domain.Variant(q.Variant)
	var raw []rawRegion
	for _, plan := range listing.FloorPlans {
		for _, f := range plan.Floors {
			for _, a := range f.Apartments {
				raw = append(raw, rawRegion{
					id:     a.ID,
					label:  a.Number,
					paths:  a.Paths(variant),
					status: a.Status,
				})
			}
		}
	}
	// слой рисуется по номерам квартир, а не по группам планировок:
	// при перекрытии выигрывает квартира с большим номером
	sort.SliceStable(raw, func(i, j int) bool {
		return apartmentNumberLess(raw[i].label, raw[j].label)
	})

	return uc.render(domain.LevelApartment, deref(floor.Image), floor.ImageSize(), raw, q), nil
}

// HitTest ищет область под точкой на нужном слое
func (uc *OverlayUseCase) HitTest(ctx context.Context, req *dto.HitTestRequest) (*dto.HitTestResponse, error) {
	var (
		layer *dto.OverlayResponse
		err   error
	)
	switch {
	case req.BuildingID == 0:
		layer, err = uc.SiteOverlay(ctx, &req.OverlayQuery)
	case req.FloorID == 0:
		layer, err = uc.BuildingOverlay(ctx, req.BuildingID, &req.OverlayQuery)
	default:
		layer, err = uc.FloorOverlay(ctx, req.BuildingID, req.FloorID, &req.OverlayQuery)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.HitTestResponse{Level: layer.Level}

	shapes := make([]overlay.Shape, len(layer.Shapes))
	for i, s := range layer.Shapes {
		shapes[i] = s.Shape
	}
	if hit, ok := overlay.HitTest(shapes, domain.Coordinate{X: req.X, Y: req.Y}); ok {
		view := dto.NewShapeView(hit)
		resp.Hit = true
		resp.Shape = &view
	}
	return resp, nil
}

// render разбирает строки координат и масштабирует области под отрисованный размер.
// Некорректные строки логируются и попадают в Skipped, остальной слой рисуется.
func (uc *OverlayUseCase) render(
	level domain.Level,
	image string,
	original domain.Size,
	raw []rawRegion,
	q *dto.OverlayQuery,
) *dto.OverlayResponse {
	resp := &dto.OverlayResponse{
		Level:        level,
		Image:        image,
		OriginalSize: original,
		RenderedSize: domain.Size{Width: q.Width, Height: q.Height},
		Shapes:       []dto.ShapeView{},
		DebounceMS:   uc.debounce.Milliseconds(),
	}

	scale, ok := overlay.NewScale(resp.RenderedSize, original, domain.Coordinate{X: q.OffsetX, Y: q.OffsetY})
	if !ok {
		uc.logger.Debug("Overlay rendering deferred",
			zap.String("level", string(level)),
			zap.Float64("original_width", original.Width),
			zap.Float64("original_height", original.Height))
		return resp
	}
	resp.Ready = true
	resp.Scale = scale

	regions := make([]domain.Region, 0, len(raw))
	for _, r := range raw {
		if r.paths == "" {
			resp.Skipped = append(resp.Skipped, dto.SkippedRegion{RegionID: r.id, Reason: skipNoPaths})
			continue
		}

		region, err := overlay.ParseRegion(r.id, r.label, r.paths, r.status)
		if err != nil {
			reason := skipReason(err)
			uc.logger.Warn("Region skipped",
				zap.String("level", string(level)),
				zap.Int64("region_id", r.id),
				zap.String("reason", reason),
				zap.Error(err))
			resp.Skipped = append(resp.Skipped, dto.SkippedRegion{RegionID: r.id, Reason: reason})
			continue
		}
		regions = append(regions, region)
	}

	for _, s := range overlay.Render(regions, scale) {
		resp.Shapes = append(resp.Shapes, dto.NewShapeView(s))
	}
	return resp
}

// apartmentNumberLess сравнивает номера как числа, если оба числовые ("9" < "10")
func apartmentNumberLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

func skipReason(err error) string {
	var parseErr *overlay.ParseError
	switch {
	case stderrors.As(err, &parseErr):
		return skipInvalidData
	case stderrors.Is(err, overlay.ErrTooFewCoords):
		return skipTooFew
	case stderrors.Is(err, overlay.ErrOddValueCount):
		return skipOddCount
	}
	return skipInvalidData
}

// validateOverlayQuery проверяет размер отрисовки до похода в БД
func validateOverlayQuery(q *dto.OverlayQuery) error {
	if _, ok := overlay.NewScale(
		domain.Size{Width: q.Width, Height: q.Height},
		domain.Size{Width: 1, Height: 1},
		domain.Coordinate{X: q.OffsetX, Y: q.OffsetY},
	); !ok {
		return errors.ErrInvalidViewport
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
