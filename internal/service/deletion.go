// internal/service/deletion.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/storage"
)

type DeletionServiceIface interface {
	DeleteUser(ctx context.Context, userID uint) error
	DeleteCompanyAccount(ctx context.Context, companyID uint) error
}

// DeletionService tears down users and whole companies. Every relational
// delete for one operation runs inside a single transaction; the loops are
// strictly sequential because they share that one transactional connection,
// and dependent rows are always removed before their parents.
//
// Object-storage removal happens inline: existence is probed first, so a
// retry after a mid-flight failure never errors on an already-deleted object.
// True atomicity across the database and the blob store is not attempted.
type DeletionService struct {
	store     repository.DeletionStoreIface
	companies repository.CompanyRepositoryIface
	objects   storage.ObjectStorage
}

func NewDeletionService(store repository.DeletionStoreIface, companies repository.CompanyRepositoryIface, objects storage.ObjectStorage) *DeletionService {
	return &DeletionService{store: store, companies: companies, objects: objects}
}

// DeleteUser removes the user and every row that references them: chats with
// their messages and token rows, documents and summaries of the teams they
// created, companies they administer, invitations they sent or received,
// subscriptions, meta rows and role bindings. Team rows themselves survive;
// they belong to the company, not the creator.
func (s *DeletionService) DeleteUser(ctx context.Context, userID uint) error {
	return s.store.InTransaction(ctx, func(tx repository.DeletionTx) error {
		return s.deleteUserCascade(ctx, tx, userID, false)
	})
}

// DeleteCompanyAccount removes every user bound to the company, running the
// full per-user cascade for each. Unlike the single-user path it also clears
// chat histories scoped to each team, so no team-level chat survives the
// company. A company with zero bound users succeeds without touching a row.
func (s *DeletionService) DeleteCompanyAccount(ctx context.Context, companyID uint) error {
	exists, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("company %d: %w", companyID, domain.ErrCompanyNotFound)
	}

	return s.store.InTransaction(ctx, func(tx repository.DeletionTx) error {
		userIDs, err := tx.UserIDsForCompany(ctx, companyID)
		if err != nil {
			return err
		}
		for _, userID := range userIDs {
			if err := s.deleteUserCascade(ctx, tx, userID, true); err != nil {
				return err
			}
		}
		slog.Info("Deleted company account", "companyId", companyID, "users", len(userIDs))
		return nil
	})
}

// deleteUserCascade is the shared per-user sequence. includeTeamChats adds
// the team-scoped chat-history sweep that only the company path performs.
func (s *DeletionService) deleteUserCascade(ctx context.Context, tx repository.DeletionTx, userID uint, includeTeamChats bool) error {
	if _, err := tx.FindUser(ctx, userID); err != nil {
		return err
	}

	chats, err := tx.ChatHistoriesByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, chat := range chats {
		if err := tx.DeleteChatMessages(ctx, chat.ID); err != nil {
			return err
		}
		if err := tx.DeleteTokensUsed(ctx, chat.ID); err != nil {
			return err
		}
	}
	if err := tx.DeleteChatHistoriesByUser(ctx, userID); err != nil {
		return err
	}

	teams, err := tx.TeamsByCreator(ctx, userID)
	if err != nil {
		return err
	}
	for _, team := range teams {
		if err := s.deleteTeamContents(ctx, tx, team, includeTeamChats); err != nil {
			return err
		}
	}

	companies, err := tx.CompaniesByAdmin(ctx, userID)
	if err != nil {
		return err
	}
	for _, company := range companies {
		if err := tx.DeleteCompanyMeta(ctx, company.ID); err != nil {
			return err
		}
	}
	if len(companies) > 0 {
		if err := tx.DeleteCompaniesByAdmin(ctx, userID); err != nil {
			return err
		}
	}

	if err := tx.DeleteInvitationsForUser(ctx, userID); err != nil {
		return err
	}
	if err := tx.DeleteSubscriptionsByUser(ctx, userID); err != nil {
		return err
	}
	if err := tx.DeleteUserMeta(ctx, userID); err != nil {
		return err
	}
	if err := tx.DeleteRoleBindingsByUser(ctx, userID); err != nil {
		return err
	}
	if err := tx.DeleteUser(ctx, userID); err != nil {
		return err
	}

	slog.Info("Deleted user", "userId", userID, "chats", len(chats), "teams", len(teams))
	return nil
}

// deleteTeamContents clears a team's files (remote object first, then its
// embeddings), documents and summaries. The team row itself is untouched.
func (s *DeletionService) deleteTeamContents(ctx context.Context, tx repository.DeletionTx, team model.Team, includeTeamChats bool) error {
	files, err := tx.FilesByTeam(ctx, team.ID)
	if err != nil {
		return err
	}
	for _, file := range files {
		key := file.ObjectKey()
		exists, err := s.objects.Exists(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			if err := s.objects.Remove(ctx, key); err != nil {
				return err
			}
		}
		if err := tx.DeleteFileEmbeddings(ctx, file.ID); err != nil {
			return err
		}
	}
	if err := tx.DeleteDocumentsByTeam(ctx, team.ID); err != nil {
		return err
	}
	if err := tx.DeleteSummariesByTeam(ctx, team.ID); err != nil {
		return err
	}
	if includeTeamChats {
		if err := tx.DeleteChatHistoriesByTeam(ctx, team.ID); err != nil {
			return err
		}
	}
	return nil
}
