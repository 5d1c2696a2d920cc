package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/service"
)

// fakeSettingsRepo backs the service with a plain map; reads count so tests
// can tell whether a call reached the table.
type fakeSettingsRepo struct {
	values map[string]string
	reads  int
}

func (f *fakeSettingsRepo) Get(ctx context.Context, name string) (string, error) {
	f.reads++
	value, ok := f.values[name]
	if !ok {
		return "", domain.ErrSettingNotFound
	}
	return value, nil
}

func (f *fakeSettingsRepo) All(ctx context.Context) ([]model.AdminSetting, error) {
	settings := make([]model.AdminSetting, 0, len(f.values))
	for name, value := range f.values {
		settings = append(settings, model.AdminSetting{Name: name, Value: value})
	}
	return settings, nil
}

func (f *fakeSettingsRepo) Set(ctx context.Context, name, value string) error {
	f.values[name] = value
	return nil
}

func TestSettingsGetWithoutCache(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{service.SettingMaxTeams: "10"}}
	svc := service.NewSettingsService(repo, nil, false)

	value, err := svc.Get(context.Background(), service.SettingMaxTeams)
	require.NoError(t, err)
	assert.Equal(t, "10", value)
	assert.Equal(t, 1, repo.reads)

	// Without a cache every read hits the table.
	_, err = svc.Get(context.Background(), service.SettingMaxTeams)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.reads)
}

func TestSettingsGetUnknownName(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{}}
	svc := service.NewSettingsService(repo, nil, false)

	_, err := svc.Get(context.Background(), "NO_SUCH_SETTING")
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)
}

func TestSettingsGetInt(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{
		service.SettingMaxQuery:   "1000",
		service.SettingMaxStorage: "lots",
	}}
	svc := service.NewSettingsService(repo, nil, false)

	n, err := svc.GetInt(context.Background(), service.SettingMaxQuery)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	_, err = svc.GetInt(context.Background(), service.SettingMaxStorage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsSetPersists(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{}}
	svc := service.NewSettingsService(repo, nil, false)

	require.NoError(t, svc.Set(context.Background(), service.SettingMaxUsers, "75"))

	value, err := svc.Get(context.Background(), service.SettingMaxUsers)
	require.NoError(t, err)
	assert.Equal(t, "75", value)
}
