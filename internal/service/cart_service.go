package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"cart-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CartStore reads catalog rows by service name.
type CartStore interface {
	GetServicesByName(ctx context.Context, serviceName string) ([]entity.CatalogEntry, error)
}

// Cache is a string key/value cache. Get returns "" and a nil error on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type CartService struct {
	cartRepo CartStore
	cache    Cache
	cacheTTL time.Duration
}

// NewCartService creates a new instance of CartService. cache may be nil.
func NewCartService(cartRepo CartStore, cache Cache, cacheTTL time.Duration) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// LookupCart returns the catalog entries named serviceName, or ErrCartNotFound.
func (s *CartService) LookupCart(ctx context.Context, serviceName string) ([]entity.CatalogEntry, error) {
	key := fmt.Sprintf("cart:%s", serviceName)

	if entries, ok := s.fromCache(ctx, key); ok {
		logger.Debug().Msgf("Retrieved cart %q from cache", serviceName)
		return entries, nil
	}

	entries, err := s.cartRepo.GetServicesByName(ctx, serviceName)
	if err != nil {
		logger.Error().Err(err).Msgf("Error reading cart %q", serviceName)
		return nil, fmt.Errorf("read cart %q: %w", serviceName, err)
	}

	if len(entries) == 0 {
		logger.Warn().Msgf("Cart %q not found", serviceName)
		return nil, ErrCartNotFound
	}

	s.toCache(ctx, key, entries)
	return entries, nil
}

func (s *CartService) fromCache(ctx context.Context, key string) ([]entity.CatalogEntry, bool) {
	if s.cache == nil {
		return nil, false
	}

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting %s from cache", key)
		return nil, false
	}
	if cached == "" {
		return nil, false
	}

	var entries []entity.CatalogEntry
	if err := json.Unmarshal([]byte(cached), &entries); err != nil {
		logger.Error().Err(err).Msgf("Error unmarshalling %s", key)
		return nil, false
	}
	return entries, len(entries) > 0
}

func (s *CartService) toCache(ctx context.Context, key string, entries []entity.CatalogEntry) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling %s", key)
		return
	}

	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting %s in cache", key)
	}
}
