package working_hours

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Store хранилище рабочих часов, поверх которого работает кэш
type Store interface {
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
	SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error
}

// RedisClient подмножество команд redis, используемых кэшем
// Реализуется *redis.Client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
