package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
)

// RateReader reads the stored rate table.
type RateReader interface {
	GetRate(ctx context.Context, currency string) (*models.ExchangeRate, error)
	List(ctx context.Context) ([]models.ExchangeRate, error)
}

// RateWriter overwrites stored rates.
type RateWriter interface {
	Upsert(ctx context.Context, rate models.ExchangeRate) error
}

// ConfigStore reads and writes the single pricing configuration row.
type ConfigStore interface {
	Get(ctx context.Context) (*models.AppConfig, error)
	Update(ctx context.Context, cfg models.AppConfig) error
}

// ChannelReader reads the payment channel registry.
type ChannelReader interface {
	GetByKey(ctx context.Context, key string) (*models.PaymentChannel, error)
	ListVisible(ctx context.Context) ([]models.PaymentChannel, error)
}

// ChannelWriter mutates the payment channel registry.
type ChannelWriter interface {
	Create(ctx context.Context, channel models.PaymentChannel) error
	Update(ctx context.Context, channel models.PaymentChannel) error
	Archive(ctx context.Context, key string) error
}

// CatalogCache caches the read-heavy rate/channel tables.
type CatalogCache interface {
	GetChannels(ctx context.Context) ([]models.PaymentChannel, error)
	SetChannels(ctx context.Context, channels []models.PaymentChannel) error
	GetRates(ctx context.Context) ([]models.ExchangeRate, error)
	SetRates(ctx context.Context, rates []models.ExchangeRate) error
	Invalidate(ctx context.Context) error
}

// EventBroker is the realtime fan-out consumed by services.
type EventBroker interface {
	Publish(ctx context.Context, topic, event string, payload any)
}

// CatalogService serves the rate store and channel registry, and applies
// admin mutations. Reads go through the cache; every mutation invalidates
// the cache and announces the change on the rates topic.
type CatalogService struct {
	rateReader    RateReader
	rateWriter    RateWriter
	config        ConfigStore
	channelReader ChannelReader
	channelWriter ChannelWriter
	cache         CatalogCache
	broker        EventBroker
}

// NewCatalogService creates a new CatalogService. cache and broker may be
// nil in tests.
func NewCatalogService(
	rateReader RateReader,
	rateWriter RateWriter,
	config ConfigStore,
	channelReader ChannelReader,
	channelWriter ChannelWriter,
	cache CatalogCache,
	broker EventBroker,
) *CatalogService {
	return &CatalogService{
		rateReader:    rateReader,
		rateWriter:    rateWriter,
		config:        config,
		channelReader: channelReader,
		channelWriter: channelWriter,
		cache:         cache,
		broker:        broker,
	}
}

// ListChannels returns the offerable channel catalog, cached.
func (svc *CatalogService) ListChannels(ctx context.Context) ([]models.PaymentChannel, error) {
	if svc.cache != nil {
		if channels, err := svc.cache.GetChannels(ctx); err == nil {
			return channels, nil
		}
	}

	channels, err := svc.channelReader.ListVisible(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list channels", "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetChannels(ctx, channels); err != nil {
			logger.Log.Errorw("failed to cache channels", "error", err)
		}
	}

	return channels, nil
}

// ListRates returns the rate table, cached.
func (svc *CatalogService) ListRates(ctx context.Context) ([]models.ExchangeRate, error) {
	if svc.cache != nil {
		if rates, err := svc.cache.GetRates(ctx); err == nil {
			return rates, nil
		}
	}

	rates, err := svc.rateReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list rates", "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetRates(ctx, rates); err != nil {
			logger.Log.Errorw("failed to cache rates", "error", err)
		}
	}

	return rates, nil
}

// GetConfig loads the pricing configuration for the current request.
func (svc *CatalogService) GetConfig(ctx context.Context) (*models.AppConfig, error) {
	return svc.config.Get(ctx)
}

// UpsertRate overwrites a currency's rate and announces the change.
func (svc *CatalogService) UpsertRate(ctx context.Context, rate models.ExchangeRate) error {
	rate.Currency = strings.ToUpper(rate.Currency)
	if err := svc.rateWriter.Upsert(ctx, rate); err != nil {
		logger.Log.Errorw("failed to upsert rate", "currency", rate.Currency, "error", err)
		return err
	}

	svc.afterCatalogWrite(ctx)
	return nil
}

// UpdateConfig overwrites the pricing configuration row.
func (svc *CatalogService) UpdateConfig(ctx context.Context, cfg models.AppConfig) error {
	if err := svc.config.Update(ctx, cfg); err != nil {
		logger.Log.Errorw("failed to update config", "error", err)
		return err
	}

	svc.afterCatalogWrite(ctx)
	return nil
}

// CreateChannel adds a payment channel to the registry.
func (svc *CatalogService) CreateChannel(ctx context.Context, channel models.PaymentChannel) error {
	if err := svc.channelWriter.Create(ctx, channel); err != nil {
		logger.Log.Errorw("failed to create channel", "key", channel.Key, "error", err)
		return err
	}

	svc.afterCatalogWrite(ctx)
	return nil
}

// UpdateChannel overwrites a channel's mutable fields.
func (svc *CatalogService) UpdateChannel(ctx context.Context, channel models.PaymentChannel) error {
	if err := svc.channelWriter.Update(ctx, channel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChannelNotFound
		}
		logger.Log.Errorw("failed to update channel", "key", channel.Key, "error", err)
		return err
	}

	svc.afterCatalogWrite(ctx)
	return nil
}

// ArchiveChannel soft-deletes a channel.
func (svc *CatalogService) ArchiveChannel(ctx context.Context, key string) error {
	if err := svc.channelWriter.Archive(ctx, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChannelNotFound
		}
		logger.Log.Errorw("failed to archive channel", "key", key, "error", err)
		return err
	}

	svc.afterCatalogWrite(ctx)
	return nil
}

// afterCatalogWrite invalidates the cache and notifies subscribers that the
// rate table changed, best-effort.
func (svc *CatalogService) afterCatalogWrite(ctx context.Context) {
	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate catalog cache", "error", err)
		}
	}
	if svc.broker != nil {
		svc.broker.Publish(ctx, realtime.TopicRates, "rates-updated", nil)
	}
}
