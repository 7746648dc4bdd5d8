package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

const (
	channelsCacheKey = "catalog:channels"
	ratesCacheKey    = "catalog:rates"
)

// CatalogCacheRepository caches the visible channel list and the rate table
// in Redis. Admin writes invalidate it explicitly; readers fall back to the
// database on a miss.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{client: client, exp: expiration}
}

func (r *CatalogCacheRepository) GetChannels(ctx context.Context) ([]models.PaymentChannel, error) {
	val, err := r.client.Get(ctx, channelsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Errorw("channel cache read failed", "error", err)
		}
		return nil, err
	}

	var channels []models.PaymentChannel
	if err := json.Unmarshal(val, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *CatalogCacheRepository) SetChannels(ctx context.Context, channels []models.PaymentChannel) error {
	data, err := json.Marshal(channels)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, channelsCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"channel cache set",
		"key", channelsCacheKey,
		"count", len(channels),
		"error", err,
	)

	return err
}

func (r *CatalogCacheRepository) GetRates(ctx context.Context) ([]models.ExchangeRate, error) {
	val, err := r.client.Get(ctx, ratesCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Errorw("rate cache read failed", "error", err)
		}
		return nil, err
	}

	var rates []models.ExchangeRate
	if err := json.Unmarshal(val, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *CatalogCacheRepository) SetRates(ctx context.Context, rates []models.ExchangeRate) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, ratesCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"rate cache set",
		"key", ratesCacheKey,
		"count", len(rates),
		"error", err,
	)

	return err
}

// Invalidate drops both cached tables. Called on every admin catalog write.
func (r *CatalogCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, channelsCacheKey, ratesCacheKey).Err()

	logger.Log.Infow(
		"catalog cache invalidated",
		"keys", []string{channelsCacheKey, ratesCacheKey},
		"error", err,
	)

	return err
}
