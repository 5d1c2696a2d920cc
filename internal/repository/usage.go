// internal/repository/usage.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
)

// UsageStoreIface is the read surface of the usage aggregator. Range queries
// take [from, to) half-open windows; the no-range variants aggregate over the
// full lifetime of the subject.
type UsageStoreIface interface {
	CountUserMessages(ctx context.Context, userID uint) (int64, error)
	CountUserMessagesInRange(ctx context.Context, userID uint, from, to time.Time) (int64, error)

	ListFilesByCreator(ctx context.Context, creatorID uint) ([]model.Document, error)
	ListFilesByCreatorInRange(ctx context.Context, creatorID uint, from, to time.Time) ([]model.Document, error)
	ListFilesByCompany(ctx context.Context, companyID uint) ([]model.Document, error)
	ListFilesByCompanyInRange(ctx context.Context, companyID uint, from, to time.Time) ([]model.Document, error)

	CountRecordingsByUser(ctx context.Context, userID uint, from, to time.Time) (int64, error)
	CountRecordingsByCompany(ctx context.Context, companyID uint, from, to time.Time) (int64, error)

	CountTeamsByCreator(ctx context.Context, userID uint) (int64, error)
	CountTeamsByCompany(ctx context.Context, companyID uint) (int64, error)

	SavedStatistic(ctx context.Context, statID uint, month, year int, statType string) (*model.UsageStatistic, error)
	SaveStatistic(ctx context.Context, stat *model.UsageStatistic) error
}

type UsageStore struct {
	db *gorm.DB
}

func NewUsageStore(db *gorm.DB) *UsageStore {
	return &UsageStore{db: db}
}

// CountUserMessages counts the prompts a user has sent across all chats.
// Only 'user'-role rows count; assistant replies are not queries.
func (s *UsageStore) CountUserMessages(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Joins("JOIN chat_histories ON chat_histories.id = chat_messages.chatId").
		Where("chat_histories.userId = ? AND chat_messages.role = ?", userID, model.MessageRoleUser).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting user messages: %w", err)
	}
	return count, nil
}

func (s *UsageStore) CountUserMessagesInRange(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Joins("JOIN chat_histories ON chat_histories.id = chat_messages.chatId").
		Where("chat_histories.userId = ? AND chat_messages.role = ?", userID, model.MessageRoleUser).
		Where("chat_messages.created >= ? AND chat_messages.created < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting user messages in range: %w", err)
	}
	return count, nil
}

func (s *UsageStore) ListFilesByCreator(ctx context.Context, creatorID uint) ([]model.Document, error) {
	var files []model.Document
	err := s.db.WithContext(ctx).
		Where("creatorId = ? AND type = ?", creatorID, model.DocumentFile).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("listing files by creator: %w", err)
	}
	return files, nil
}

func (s *UsageStore) ListFilesByCreatorInRange(ctx context.Context, creatorID uint, from, to time.Time) ([]model.Document, error) {
	var files []model.Document
	err := s.db.WithContext(ctx).
		Where("creatorId = ? AND type = ?", creatorID, model.DocumentFile).
		Where("created >= ? AND created < ?", from, to).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("listing files by creator in range: %w", err)
	}
	return files, nil
}

func (s *UsageStore) ListFilesByCompany(ctx context.Context, companyID uint) ([]model.Document, error) {
	var files []model.Document
	err := s.db.WithContext(ctx).Model(&model.Document{}).
		Joins("JOIN teams ON teams.id = documents.teamId").
		Where("teams.companyId = ? AND documents.type = ?", companyID, model.DocumentFile).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("listing files by company: %w", err)
	}
	return files, nil
}

func (s *UsageStore) ListFilesByCompanyInRange(ctx context.Context, companyID uint, from, to time.Time) ([]model.Document, error) {
	var files []model.Document
	err := s.db.WithContext(ctx).Model(&model.Document{}).
		Joins("JOIN teams ON teams.id = documents.teamId").
		Where("teams.companyId = ? AND documents.type = ?", companyID, model.DocumentFile).
		Where("documents.created >= ? AND documents.created < ?", from, to).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("listing files by company in range: %w", err)
	}
	return files, nil
}

func (s *UsageStore) CountRecordingsByUser(ctx context.Context, userID uint, from, to time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Recording{}).
		Where("userId = ? AND created >= ? AND created < ?", userID, from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting user recordings: %w", err)
	}
	return count, nil
}

func (s *UsageStore) CountRecordingsByCompany(ctx context.Context, companyID uint, from, to time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Recording{}).
		Where("companyId = ? AND created >= ? AND created < ?", companyID, from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting company recordings: %w", err)
	}
	return count, nil
}

func (s *UsageStore) CountTeamsByCreator(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Team{}).
		Where("creatorId = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting teams by creator: %w", err)
	}
	return count, nil
}

func (s *UsageStore) CountTeamsByCompany(ctx context.Context, companyID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Team{}).
		Where("companyId = ?", companyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting teams by company: %w", err)
	}
	return count, nil
}

// SavedStatistic returns the memoized rollup for (statID, month, year, type),
// or nil when no snapshot has been taken yet.
func (s *UsageStore) SavedStatistic(ctx context.Context, statID uint, month, year int, statType string) (*model.UsageStatistic, error) {
	var stat model.UsageStatistic
	err := s.db.WithContext(ctx).
		Where("statId = ? AND month = ? AND year = ? AND type = ?", statID, month, year, statType).
		First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading saved statistic: %w", err)
	}
	return &stat, nil
}

func (s *UsageStore) SaveStatistic(ctx context.Context, stat *model.UsageStatistic) error {
	if err := s.db.WithContext(ctx).Create(stat).Error; err != nil {
		return fmt.Errorf("saving statistic: %w", err)
	}
	return nil
}
