// internal/service/settings.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
)

// Admin-configured limit names. The aggregator reads these on every usage
// request, which is why they sit behind the cache.
const (
	SettingMaxStorage            = "MAX_STORAGE"
	SettingMaxTeams              = "MAX_TEAMS"
	SettingMaxUsers              = "MAX_USERS"
	SettingMaxQuery              = "MAX_QUERY"
	SettingRecordingMonthlyLimit = "RECORDING_MONTHLY_LIMIT"
)

const settingsKeyPrefix = "admin_settings:"

type SettingsServiceIface interface {
	Get(ctx context.Context, name string) (string, error)
	GetInt(ctx context.Context, name string) (int64, error)
	All(ctx context.Context) ([]model.AdminSetting, error)
	Set(ctx context.Context, name, value string) error
	Reload(ctx context.Context) error
}

// SettingsService serves admin settings from the database with an optional
// Redis read-through. Cache misses fall back to the table and repopulate the
// key; a nil client or cacheMode=false bypasses Redis entirely.
type SettingsService struct {
	repo      repository.SettingsRepositoryIface
	cache     *redis.Client
	cacheMode bool
}

func NewSettingsService(repo repository.SettingsRepositoryIface, cache *redis.Client, cacheMode bool) *SettingsService {
	return &SettingsService{repo: repo, cache: cache, cacheMode: cacheMode}
}

func (s *SettingsService) Get(ctx context.Context, name string) (string, error) {
	if s.useCache() {
		value, err := s.cache.Get(ctx, settingsKeyPrefix+name).Result()
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, redis.Nil) {
			// A cache outage must not take settings reads down with it.
			slog.Warn("Settings cache read failed, falling back to database", "name", name, "error", err)
		}
	}

	value, err := s.repo.Get(ctx, name)
	if err != nil {
		return "", err
	}

	if s.useCache() {
		if err := s.cache.Set(ctx, settingsKeyPrefix+name, value, 0).Err(); err != nil {
			slog.Warn("Settings cache write failed", "name", name, "error", err)
		}
	}
	return value, nil
}

func (s *SettingsService) GetInt(ctx context.Context, name string) (int64, error) {
	value, err := s.Get(ctx, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("setting %s is not numeric: %w", name, domain.ErrInvalidInput)
	}
	return n, nil
}

func (s *SettingsService) All(ctx context.Context) ([]model.AdminSetting, error) {
	return s.repo.All(ctx)
}

// Set writes the database row and refreshes the cached key so readers never
// see a stale limit after an admin update.
func (s *SettingsService) Set(ctx context.Context, name, value string) error {
	if err := s.repo.Set(ctx, name, value); err != nil {
		return err
	}
	if s.useCache() {
		if err := s.cache.Set(ctx, settingsKeyPrefix+name, value, 0).Err(); err != nil {
			slog.Warn("Settings cache refresh failed", "name", name, "error", err)
		}
	}
	return nil
}

// Reload repopulates every cached setting from the table.
func (s *SettingsService) Reload(ctx context.Context) error {
	if !s.useCache() {
		return nil
	}
	settings, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	for _, setting := range settings {
		if err := s.cache.Set(ctx, settingsKeyPrefix+setting.Name, setting.Value, 0).Err(); err != nil {
			return fmt.Errorf("reloading setting %s: %w", setting.Name, err)
		}
	}
	slog.Info("Reloaded settings cache", "count", len(settings))
	return nil
}

func (s *SettingsService) useCache() bool {
	return s.cacheMode && s.cache != nil
}
