package working_hours

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const keyPrefix = "schedule:working_hours:"

// DefaultTTL время жизни записи кэша по умолчанию
const DefaultTTL = 10 * time.Minute

// entry значение в redis
// Found=false кэширует отсутствие настроенных часов, чтобы не ходить в хранилище за значениями по умолчанию
type entry struct {
	Found     bool  `json:"found"`
	StartHour int   `json:"startHour,omitempty"`
	EndHour   int   `json:"endHour,omitempty"`
	DaysOff   []int `json:"daysOff,omitempty"`
}

// Cache read-through кэш рабочих часов в redis
// Ошибки redis не прерывают запрос: кэш пропускается, данные читаются из хранилища
type Cache struct {
	store  Store
	client RedisClient
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш поверх хранилища
func NewCache(store Store, client RedisClient, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		store:  store,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetWorkingHours возвращает рабочие часы из кэша или из хранилища
func (c *Cache) GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error) {
	key := keyPrefix + handymanID

	// 1. Пробуем кэш
	if cached, ok := c.read(ctx, key); ok {
		c.logger.Debug("WorkingHoursCache: hit key=%s, found=%t", key, cached.Found)
		if !cached.Found {
			return nil, domain.ErrPolicyNotFound
		}
		return cached.toDomain(), nil
	}

	// 2. Читаем из хранилища
	c.logger.Debug("WorkingHoursCache: miss key=%s", key)
	policy, err := c.store.GetWorkingHours(ctx, handymanID)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			c.write(ctx, key, entry{Found: false})
		}
		return nil, err
	}

	// 3. Кладём в кэш
	c.write(ctx, key, fromDomain(*policy))
	return policy, nil
}

// SetWorkingHours пишет в хранилище и сбрасывает запись кэша
func (c *Cache) SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error {
	if err := c.store.SetWorkingHours(ctx, handymanID, policy); err != nil {
		return err
	}

	if err := c.client.Del(ctx, keyPrefix+handymanID).Err(); err != nil {
		c.logger.Warn("WorkingHoursCache: failed to invalidate handyman=%s: %v", handymanID, err)
	}
	return nil
}

func (c *Cache) read(ctx context.Context, key string) (entry, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entry{}, false
	}
	if err != nil {
		c.logger.Warn("WorkingHoursCache: get key=%s failed: %v", key, err)
		return entry{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("WorkingHoursCache: broken value for key=%s: %v", key, err)
		return entry{}, false
	}
	return e, true
}

func (c *Cache) write(ctx context.Context, key string, e entry) {
	data, err := json.Marshal(e)
	if err != nil {
		c.logger.Warn("WorkingHoursCache: marshal key=%s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("WorkingHoursCache: set key=%s failed: %v", key, err)
	}
}

func fromDomain(p domain.WorkingHoursPolicy) entry {
	days := make([]int, len(p.DaysOff))
	for i, d := range p.DaysOff {
		days[i] = int(d)
	}
	return entry{Found: true, StartHour: p.StartHour, EndHour: p.EndHour, DaysOff: days}
}

func (e entry) toDomain() *domain.WorkingHoursPolicy {
	days := make([]time.Weekday, len(e.DaysOff))
	for i, d := range e.DaysOff {
		days[i] = time.Weekday(d)
	}
	return &domain.WorkingHoursPolicy{StartHour: e.StartHour, EndHour: e.EndHour, DaysOff: days}
}
