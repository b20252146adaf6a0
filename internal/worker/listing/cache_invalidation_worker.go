package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/worker"
)

const (
	maxBatchSize    = 50                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second

	// PendingMinIdle - через сколько неподтверждённое сообщение считается брошенным
	PendingMinIdle  = 30 * time.Second
	reclaimInterval = 30 * time.Second
)

// FloorInvalidator сбрасывает закешированный листинг этажа
type FloorInvalidator interface {
	InvalidateFloor(ctx context.Context, buildingID, floorID int64) error
}

// StatsRefresher пересчитывает статистику продаж
type StatsRefresher interface {
	RefreshStatistics(ctx context.Context) (*domain.InventoryStats, error)
}

// floorKey - этаж, затронутый событиями батча
type floorKey struct {
	buildingID int64
	floorID    int64
}

// CacheInvalidationWorker читает события смены статуса квартир
// и сбрасывает листинги затронутых этажей
type CacheInvalidationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	invalidator  FloorInvalidator
	stats        StatsRefresher
	consumerName string
	maxRetries   int
}

// NewCacheInvalidationWorker создает новый CacheInvalidationWorker.
// stats может быть nil - тогда статистика не пересчитывается.
func NewCacheInvalidationWorker(
	streamRepo repository.StreamRepository,
	invalidator FloorInvalidator,
	stats StatsRefresher,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CacheInvalidationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &CacheInvalidationWorker{
		BaseWorker:   worker.NewBaseWorker("listing-cache-invalidation", consumerGroup, logger),
		streamRepo:   streamRepo,
		invalidator:  invalidator,
		stats:        stats,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *CacheInvalidationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CacheInvalidationWorker",
		zap.String("stream", domain.StreamApartmentStatus),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamApartmentStatus, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	var lastReclaim time.Time
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			// Сообщения, не подтверждённые после ошибки или падения, перечитываем
			if time.Since(lastReclaim) >= reclaimInterval {
				lastReclaim = time.Now()
				if _, err := w.ReclaimPending(ctx); err != nil {
					logger.Warn("Failed to reclaim pending messages", zap.Error(err))
				}
			}

			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.sleep(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// sleep - пауза, прерываемая остановкой воркера
func (w *CacheInvalidationWorker) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// ProcessBatch читает пачку событий, сбрасывает листинги этажей и подтверждает сообщения.
// Возвращает количество прочитанных сообщений.
func (w *CacheInvalidationWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamApartmentStatus,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	return w.handle(ctx, messages), nil
}

// ReclaimPending забирает сообщения, которые висят в pending дольше PendingMinIdle,
// и обрабатывает их так же, как новые
func (w *CacheInvalidationWorker) ReclaimPending(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ClaimStale(
		ctx,
		domain.StreamApartmentStatus,
		w.ConsumerGroup(),
		w.consumerName,
		PendingMinIdle,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending messages: %w", err)
	}

	return w.handle(ctx, messages), nil
}

// handle сбрасывает листинги этажей из пачки и подтверждает обработанные сообщения.
// Сообщения этажа, который не удалось сбросить, остаются в pending до ReclaimPending.
func (w *CacheInvalidationWorker) handle(ctx context.Context, messages []domain.StreamMessage) int {
	logger := w.Logger()

	if len(messages) == 0 {
		return 0
	}

	// Несколько событий по одному этажу сбрасывают его кеш один раз
	floors := make(map[floorKey][]string)
	order := make([]floorKey, 0, len(messages))
	broken := make([]string, 0)

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			broken = append(broken, msg.ID)
			continue
		}

		key := floorKey{buildingID: event.BuildingID, floorID: event.FloorID}
		if _, seen := floors[key]; !seen {
			order = append(order, key)
		}
		floors[key] = append(floors[key], msg.ID)
	}

	// Битые сообщения подтверждаем, чтобы не застревали в pending
	acked := broken
	for _, key := range order {
		if err := w.invalidate(ctx, key); err != nil {
			logger.Error("Failed to invalidate floor listing, leaving messages pending",
				zap.Int64("building_id", key.buildingID),
				zap.Int64("floor_id", key.floorID),
				zap.Error(err))
			continue
		}
		acked = append(acked, floors[key]...)
	}

	if len(order) > 0 && w.stats != nil {
		if _, err := w.stats.RefreshStatistics(ctx); err != nil {
			logger.Warn("Failed to refresh statistics", zap.Error(err))
		}
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamApartmentStatus, w.ConsumerGroup(), acked); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("floors", len(order)),
		zap.Int("acked", len(acked)))

	return len(messages)
}

// invalidate сбрасывает листинг этажа, повторяя попытку до maxRetries раз
func (w *CacheInvalidationWorker) invalidate(ctx context.Context, key floorKey) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.invalidator.InvalidateFloor(ctx, key.buildingID, key.floorID); err == nil {
			return nil
		}
		w.Logger().Debug("Invalidate attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
	}
	return err
}

// parseMessage парсит сообщение из стрима в ApartmentStatusChangedEvent
func parseMessage(msg domain.StreamMessage) (*domain.ApartmentStatusChangedEvent, error) {
	var event domain.ApartmentStatusChangedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.BuildingID <= 0 || event.FloorID <= 0 {
		return nil, fmt.Errorf("event %s has no floor reference", event.EventID)
	}
	return &event, nil
}
