// internal/repository/deletion.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"gorm.io/gorm"
)

// DeletionTx is the set of reads and deletes the cascading teardown performs.
// Every call runs on the one transactional connection, so implementations and
// callers must stay strictly sequential: the statements are ordered child
// before parent on purpose.
type DeletionTx interface {
	FindUser(ctx context.Context, id uint) (*model.User, error)

	ChatHistoriesByUser(ctx context.Context, userID uint) ([]model.ChatHistory, error)
	DeleteChatMessages(ctx context.Context, chatID uint) error
	DeleteTokensUsed(ctx context.Context, chatID uint) error
	DeleteChatHistoriesByUser(ctx context.Context, userID uint) error
	DeleteChatHistoriesByTeam(ctx context.Context, teamID uint) error

	TeamsByCreator(ctx context.Context, userID uint) ([]model.Team, error)
	FilesByTeam(ctx context.Context, teamID uint) ([]model.Document, error)
	DeleteFileEmbeddings(ctx context.Context, fileID uint) error
	DeleteDocumentsByTeam(ctx context.Context, teamID uint) error
	DeleteSummariesByTeam(ctx context.Context, teamID uint) error

	CompaniesByAdmin(ctx context.Context, userID uint) ([]model.Company, error)
	DeleteCompanyMeta(ctx context.Context, companyID uint) error
	DeleteCompaniesByAdmin(ctx context.Context, userID uint) error

	DeleteInvitationsForUser(ctx context.Context, userID uint) error
	DeleteSubscriptionsByUser(ctx context.Context, userID uint) error
	DeleteUserMeta(ctx context.Context, userID uint) error
	DeleteRoleBindingsByUser(ctx context.Context, userID uint) error
	DeleteUser(ctx context.Context, userID uint) error

	UserIDsForCompany(ctx context.Context, companyID uint) ([]uint, error)
}

// DeletionStoreIface opens the all-or-nothing transaction the orchestrator
// runs in. Any error returned from fn rolls every statement back.
type DeletionStoreIface interface {
	InTransaction(ctx context.Context, fn func(tx DeletionTx) error) error
}

type DeletionStore struct {
	db *gorm.DB
}

func NewDeletionStore(db *gorm.DB) *DeletionStore {
	return &DeletionStore{db: db}
}

func (s *DeletionStore) InTransaction(ctx context.Context, fn func(tx DeletionTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&deletionTx{tx: tx})
	})
}

type deletionTx struct {
	tx *gorm.DB
}

func (t *deletionTx) FindUser(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := t.tx.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

func (t *deletionTx) ChatHistoriesByUser(ctx context.Context, userID uint) ([]model.ChatHistory, error) {
	var chats []model.ChatHistory
	if err := t.tx.WithContext(ctx).Where("userId = ?", userID).Find(&chats).Error; err != nil {
		return nil, fmt.Errorf("finding chat histories: %w", err)
	}
	return chats, nil
}

func (t *deletionTx) DeleteChatMessages(ctx context.Context, chatID uint) error {
	if err := t.tx.WithContext(ctx).Where("chatId = ?", chatID).Delete(&model.ChatMessage{}).Error; err != nil {
		return fmt.Errorf("deleting chat messages: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteTokensUsed(ctx context.Context, chatID uint) error {
	if err := t.tx.WithContext(ctx).Where("chatId = ?", chatID).Delete(&model.TokensUsed{}).Error; err != nil {
		return fmt.Errorf("deleting token usage: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteChatHistoriesByUser(ctx context.Context, userID uint) error {
	if err := t.tx.WithContext(ctx).Where("userId = ?", userID).Delete(&model.ChatHistory{}).Error; err != nil {
		return fmt.Errorf("deleting chat histories: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteChatHistoriesByTeam(ctx context.Context, teamID uint) error {
	if err := t.tx.WithContext(ctx).Where("teamId = ?", teamID).Delete(&model.ChatHistory{}).Error; err != nil {
		return fmt.Errorf("deleting team chat histories: %w", err)
	}
	return nil
}

func (t *deletionTx) TeamsByCreator(ctx context.Context, userID uint) ([]model.Team, error) {
	var teams []model.Team
	if err := t.tx.WithContext(ctx).Where("creatorId = ?", userID).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("finding teams: %w", err)
	}
	return teams, nil
}

func (t *deletionTx) FilesByTeam(ctx context.Context, teamID uint) ([]model.Document, error) {
	var files []model.Document
	err := t.tx.WithContext(ctx).
		Where("teamId = ? AND type = ?", teamID, model.DocumentFile).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("finding team files: %w", err)
	}
	return files, nil
}

func (t *deletionTx) DeleteFileEmbeddings(ctx context.Context, fileID uint) error {
	if err := t.tx.WithContext(ctx).Where("fileId = ?", fileID).Delete(&model.FileEmbedding{}).Error; err != nil {
		return fmt.Errorf("deleting file embeddings: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteDocumentsByTeam(ctx context.Context, teamID uint) error {
	if err := t.tx.WithContext(ctx).Where("teamId = ?", teamID).Delete(&model.Document{}).Error; err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteSummariesByTeam(ctx context.Context, teamID uint) error {
	if err := t.tx.WithContext(ctx).Where("teamId = ?", teamID).Delete(&model.Summary{}).Error; err != nil {
		return fmt.Errorf("deleting summaries: %w", err)
	}
	return nil
}

func (t *deletionTx) CompaniesByAdmin(ctx context.Context, userID uint) ([]model.Company, error) {
	var companies []model.Company
	if err := t.tx.WithContext(ctx).Where("adminId = ?", userID).Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("finding administered companies: %w", err)
	}
	return companies, nil
}

func (t *deletionTx) DeleteCompanyMeta(ctx context.Context, companyID uint) error {
	if err := t.tx.WithContext(ctx).Where("companyId = ?", companyID).Delete(&model.CompanyMeta{}).Error; err != nil {
		return fmt.Errorf("deleting company meta: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteCompaniesByAdmin(ctx context.Context, userID uint) error {
	if err := t.tx.WithContext(ctx).Where("adminId = ?", userID).Delete(&model.Company{}).Error; err != nil {
		return fmt.Errorf("deleting companies: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteInvitationsForUser(ctx context.Context, userID uint) error {
	err := t.tx.WithContext(ctx).
		Where("userId = ? OR sender = ?", userID, userID).
		Delete(&model.Invitation{}).Error
	if err != nil {
		return fmt.Errorf("deleting invitations: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteSubscriptionsByUser(ctx context.Context, userID uint) error {
	if err := t.tx.WithContext(ctx).Where("userId = ?", userID).Delete(&model.Subscription{}).Error; err != nil {
		return fmt.Errorf("deleting subscriptions: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteUserMeta(ctx context.Context, userID uint) error {
	if err := t.tx.WithContext(ctx).Where("userId = ?", userID).Delete(&model.UserMeta{}).Error; err != nil {
		return fmt.Errorf("deleting user meta: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteRoleBindingsByUser(ctx context.Context, userID uint) error {
	if err := t.tx.WithContext(ctx).Where("userId = ?", userID).Delete(&model.UserCompanyRole{}).Error; err != nil {
		return fmt.Errorf("deleting role bindings: %w", err)
	}
	return nil
}

func (t *deletionTx) DeleteUser(ctx context.Context, userID uint) error {
	if err := t.tx.WithContext(ctx).Delete(&model.User{}, "id = ?", userID).Error; err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func (t *deletionTx) UserIDsForCompany(ctx context.Context, companyID uint) ([]uint, error) {
	var bindings []model.UserCompanyRole
	if err := t.tx.WithContext(ctx).Where("company = ?", companyID).Find(&bindings).Error; err != nil {
		return nil, fmt.Errorf("finding company members: %w", err)
	}
	ids := make([]uint, 0, len(bindings))
	for _, b := range bindings {
		ids = append(ids, b.UserID)
	}
	return ids, nil
}
