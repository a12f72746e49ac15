package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
)

// Availability guarda respostas de disponibilidade por
// profissional/dia/duração. Todo método aceita receptor nil, então o
// use case funciona igual com o cache desligado (REDIS_ADDR vazio).
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(addr string, ttl time.Duration) *Availability {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable (%v), availability cache disabled", err)
		return nil
	}

	return &Availability{rdb: rdb, ttl: ttl}
}

// a versão por profissional/dia muda a cada escrita, invalidando as
// chaves antigas sem varrer o keyspace
func (c *Availability) version(ctx context.Context, professionalID uint, date string) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("avail:v:%d:%s", professionalID, date)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *Availability) key(ctx context.Context, professionalID uint, date string, durationMin int) string {
	return fmt.Sprintf(
		"avail:%d:%s:%d:v%d",
		professionalID, date, durationMin,
		c.version(ctx, professionalID, date),
	)
}

func (c *Availability) Get(
	ctx context.Context,
	professionalID uint,
	date string,
	durationMin int,
) ([]domain.TimeSlot, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, professionalID, date, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *Availability) Set(
	ctx context.Context,
	professionalID uint,
	date string,
	durationMin int,
	slots []domain.TimeSlot,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(ctx, professionalID, date, durationMin), raw, c.ttl).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

func (c *Availability) Invalidate(
	ctx context.Context,
	professionalID uint,
	date string,
) {

	if c == nil {
		return
	}

	if err := c.rdb.Incr(ctx, fmt.Sprintf("avail:v:%d:%s", professionalID, date)).Err(); err != nil {
		log.Printf("availability cache invalidate failed: %v", err)
	}
}
