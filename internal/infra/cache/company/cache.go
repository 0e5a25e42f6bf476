package company

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Key ключ записи компании в Redis
const Key = "availability:company"

// Cache read-through кэш записи компании поверх репозитория.
// Кэшируется только сама компания: расписание, бронирования и исключения всегда читаются из БД.
// Ошибки Redis не ломают запрос - кэш деградирует до прямого чтения из репозитория.
type Cache struct {
	repo   Repository
	redis  *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш компании
func NewCache(repo Repository, redisClient *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		repo:   repo,
		redis:  redisClient,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает компанию из кэша или, при промахе, из репозитория.
// Отсутствие компании не кэшируется, ошибка репозитория возвращается как есть.
func (c *Cache) Get(ctx context.Context) (*domain.Company, error) {
	data, err := c.redis.Get(ctx, Key).Bytes()
	switch {
	case err == nil:
		var company domain.Company
		uerr := json.Unmarshal(data, &company)
		if uerr == nil {
			return &company, nil
		}
		c.logger.Warn("CompanyCache: failed to unmarshal cached company, refetching: %v", uerr)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		c.logger.Warn("CompanyCache: redis get failed, falling back to repository: %v", err)
	}

	company, err := c.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, company); err != nil {
		c.logger.Warn("CompanyCache: failed to store company id=%d: %v", company.ID, err)
	}

	return company, nil
}

// GetSchedule всегда читает из репозитория
func (c *Cache) GetSchedule(ctx context.Context, companyID int64, weekday domain.Weekday) (*domain.ScheduleEntry, error) {
	return c.repo.GetSchedule(ctx, companyID, weekday)
}

// Invalidate удаляет запись компании из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, Key).Err(); err != nil {
		return fmt.Errorf("company cache: invalidate: %w", err)
	}
	return nil
}

func (c *Cache) store(ctx context.Context, company *domain.Company) error {
	data, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("company cache: marshal: %w", err)
	}
	if err := c.redis.Set(ctx, Key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("company cache: set: %w", err)
	}
	return nil
}
