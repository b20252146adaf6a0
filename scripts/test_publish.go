//go:build ignore

// Публикует тестовое событие смены статуса квартиры в stream:apartment:status
// и ждёт, пока воркер сбросит закешированный листинг этажа.
//
//	go run scripts/test_publish.go -building 1 -floor 3 -apartment 301
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type apartmentStatusChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	ApartmentID int64     `json:"apartment_id"`
	BuildingID  int64     `json:"building_id"`
	FloorID     int64     `json:"floor_id"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ChangedAt   time.Time `json:"changed_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	buildingID := flag.Int64("building", 1, "building id")
	floorID := flag.Int64("floor", 1, "floor id")
	apartmentID := flag.Int64("apartment", 1, "apartment id")
	status := flag.String("status", "reserved", "new status")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	listingKey := fmt.Sprintf("listing:%d:%d", *buildingID, *floorID)
	cached, err := client.Exists(ctx, listingKey).Result()
	if err != nil {
		log.Fatalf("Failed to check listing key: %v", err)
	}

	event := apartmentStatusChangedEvent{
		EventID:     uuid.New(),
		ApartmentID: *apartmentID,
		BuildingID:  *buildingID,
		FloorID:     *floorID,
		OldStatus:   "available",
		NewStatus:   *status,
		ChangedAt:   time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:apartment:status",
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published: %s (message %s)\n", event.EventID, id)
	if cached == 0 {
		fmt.Printf("%s was not cached, nothing to wait for\n", listingKey)
		return
	}

	deadline := time.After(10 * time.Second)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			fmt.Printf("Timeout: %s is still cached\n", listingKey)
			return
		case <-ticker.C:
			n, err := client.Exists(ctx, listingKey).Result()
			if err == nil && n == 0 {
				fmt.Printf("%s invalidated\n", listingKey)
				return
			}
		}
	}
}
