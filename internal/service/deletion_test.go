package service_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/mocks"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/service"
	"go.uber.org/mock/gomock"
)

// fakeTx is an in-memory stand-in for the transactional store. Every call is
// appended to ops so tests can assert the exact statement order.
type fakeTx struct {
	users     map[uint]*model.User
	chats     map[uint][]model.ChatHistory
	teams     map[uint][]model.Team
	files     map[uint][]model.Document
	companies map[uint][]model.Company
	members   map[uint][]uint

	ops []string
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		users:     map[uint]*model.User{},
		chats:     map[uint][]model.ChatHistory{},
		teams:     map[uint][]model.Team{},
		files:     map[uint][]model.Document{},
		companies: map[uint][]model.Company{},
		members:   map[uint][]uint{},
	}
}

func (t *fakeTx) record(format string, args ...any) {
	t.ops = append(t.ops, fmt.Sprintf(format, args...))
}

func (t *fakeTx) FindUser(ctx context.Context, id uint) (*model.User, error) {
	t.record("FindUser(%d)", id)
	user, ok := t.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (t *fakeTx) ChatHistoriesByUser(ctx context.Context, userID uint) ([]model.ChatHistory, error) {
	return t.chats[userID], nil
}

func (t *fakeTx) DeleteChatMessages(ctx context.Context, chatID uint) error {
	t.record("DeleteChatMessages(%d)", chatID)
	return nil
}

func (t *fakeTx) DeleteTokensUsed(ctx context.Context, chatID uint) error {
	t.record("DeleteTokensUsed(%d)", chatID)
	return nil
}

func (t *fakeTx) DeleteChatHistoriesByUser(ctx context.Context, userID uint) error {
	t.record("DeleteChatHistoriesByUser(%d)", userID)
	return nil
}

func (t *fakeTx) DeleteChatHistoriesByTeam(ctx context.Context, teamID uint) error {
	t.record("DeleteChatHistoriesByTeam(%d)", teamID)
	return nil
}

func (t *fakeTx) TeamsByCreator(ctx context.Context, userID uint) ([]model.Team, error) {
	return t.teams[userID], nil
}

func (t *fakeTx) FilesByTeam(ctx context.Context, teamID uint) ([]model.Document, error) {
	return t.files[teamID], nil
}

func (t *fakeTx) DeleteFileEmbeddings(ctx context.Context, fileID uint) error {
	t.record("DeleteFileEmbeddings(%d)", fileID)
	return nil
}

func (t *fakeTx) DeleteDocumentsByTeam(ctx context.Context, teamID uint) error {
	t.record("DeleteDocumentsByTeam(%d)", teamID)
	return nil
}

func (t *fakeTx) DeleteSummariesByTeam(ctx context.Context, teamID uint) error {
	t.record("DeleteSummariesByTeam(%d)", teamID)
	return nil
}

func (t *fakeTx) CompaniesByAdmin(ctx context.Context, userID uint) ([]model.Company, error) {
	return t.companies[userID], nil
}

func (t *fakeTx) DeleteCompanyMeta(ctx context.Context, companyID uint) error {
	t.record("DeleteCompanyMeta(%d)", companyID)
	return nil
}

func (t *fakeTx) DeleteCompaniesByAdmin(ctx context.Context, userID uint) error {
	t.record("DeleteCompaniesByAdmin(%d)", userID)
	return nil
}

func (t *fakeTx) DeleteInvitationsForUser(ctx context.Context, userID uint) error {
	t.record("DeleteInvitationsForUser(%d)", userID)
	return nil
}

func (t *fakeTx) DeleteSubscriptionsByUser(ctx context.Context, userID uint) error {
	t.record("DeleteSubscriptionsByUser(%d)", userID)
	return nil
}

func (t *fakeTx) DeleteUserMeta(ctx context.Context, userID uint) error {
	t.record("DeleteUserMeta(%d)", userID)
	return nil
}

func (t *fakeTx) DeleteRoleBindingsByUser(ctx context.Context, userID uint) error {
	t.record("DeleteRoleBindingsByUser(%d)", userID)
	return nil
}

func (t *fakeTx) DeleteUser(ctx context.Context, userID uint) error {
	t.record("DeleteUser(%d)", userID)
	return nil
}

func (t *fakeTx) UserIDsForCompany(ctx context.Context, companyID uint) ([]uint, error) {
	return t.members[companyID], nil
}

type fakeDeletionStore struct {
	tx         *fakeTx
	committed  bool
	rolledBack bool
}

func (s *fakeDeletionStore) InTransaction(ctx context.Context, fn func(tx repository.DeletionTx) error) error {
	if err := fn(s.tx); err != nil {
		s.rolledBack = true
		return err
	}
	s.committed = true
	return nil
}

// fakeObjectStorage reports configured keys as present and records every
// exists/remove call in order.
type fakeObjectStorage struct {
	present map[string]bool
	ops     []string
}

func (f *fakeObjectStorage) Exists(ctx context.Context, objectKey string) (bool, error) {
	f.ops = append(f.ops, "exists:"+objectKey)
	return f.present[objectKey], nil
}

func (f *fakeObjectStorage) Remove(ctx context.Context, objectKey string) error {
	f.ops = append(f.ops, "remove:"+objectKey)
	return nil
}

func (f *fakeObjectStorage) Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	f.ops = append(f.ops, "put:"+objectKey)
	return nil
}

func TestDeleteUserMissingIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &fakeDeletionStore{tx: newFakeTx()}
	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	objects := &fakeObjectStorage{present: map[string]bool{}}

	svc := service.NewDeletionService(store, companies, objects)

	err := svc.DeleteUser(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.True(t, store.rolledBack)
	assert.False(t, store.committed)
	assert.Equal(t, []string{"FindUser(99)"}, store.tx.ops, "no mutation may happen for a missing user")
	assert.Empty(t, objects.ops)
}

func TestDeleteUserCascadeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := newFakeTx()
	tx.users[7] = &model.User{ID: 7, Email: "owner@example.com"}
	tx.chats[7] = []model.ChatHistory{{ID: 31, UserID: 7}, {ID: 32, UserID: 7}}
	tx.teams[7] = []model.Team{{ID: 5, CompanyID: 2, CreatorID: 7}}
	tx.files[5] = []model.Document{{ID: 42, TeamID: 5, Name: "report.pdf", Type: model.DocumentFile}}
	tx.companies[7] = []model.Company{{ID: 2, AdminID: 7}}

	store := &fakeDeletionStore{tx: tx}
	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	objects := &fakeObjectStorage{present: map[string]bool{"42.pdf": true}}

	svc := service.NewDeletionService(store, companies, objects)

	err := svc.DeleteUser(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, store.committed)

	// Remote existence is probed before removal, and removal happens before
	// the embedding rows go.
	assert.Equal(t, []string{"exists:42.pdf", "remove:42.pdf"}, objects.ops)

	assert.Equal(t, []string{
		"FindUser(7)",
		"DeleteChatMessages(31)",
		"DeleteTokensUsed(31)",
		"DeleteChatMessages(32)",
		"DeleteTokensUsed(32)",
		"DeleteChatHistoriesByUser(7)",
		"DeleteFileEmbeddings(42)",
		"DeleteDocumentsByTeam(5)",
		"DeleteSummariesByTeam(5)",
		"DeleteCompanyMeta(2)",
		"DeleteCompaniesByAdmin(7)",
		"DeleteInvitationsForUser(7)",
		"DeleteSubscriptionsByUser(7)",
		"DeleteUserMeta(7)",
		"DeleteRoleBindingsByUser(7)",
		"DeleteUser(7)",
	}, tx.ops)

	// The single-user path never removes team rows or team-scoped chats.
	assert.NotContains(t, tx.ops, "DeleteChatHistoriesByTeam(5)")
}

func TestDeleteUserSkipsAbsentRemoteObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := newFakeTx()
	tx.users[7] = &model.User{ID: 7}
	tx.teams[7] = []model.Team{{ID: 5, CreatorID: 7}}
	tx.files[5] = []model.Document{{ID: 42, TeamID: 5, Name: "report.pdf", Type: model.DocumentFile}}

	store := &fakeDeletionStore{tx: tx}
	objects := &fakeObjectStorage{present: map[string]bool{}}

	svc := service.NewDeletionService(store, mocks.NewMockCompanyRepositoryIface(ctrl), objects)

	require.NoError(t, svc.DeleteUser(context.Background(), 7))
	assert.Equal(t, []string{"exists:42.pdf"}, objects.ops, "absent objects must not be removed")
	assert.Contains(t, tx.ops, "DeleteFileEmbeddings(42)")
}

func TestDeleteCompanyAccountMissingCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	companies.EXPECT().Exists(gomock.Any(), uint(44)).Return(false, nil)

	store := &fakeDeletionStore{tx: newFakeTx()}
	svc := service.NewDeletionService(store, companies, &fakeObjectStorage{})

	err := svc.DeleteCompanyAccount(context.Background(), 44)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.False(t, store.committed, "the transaction must not open for a missing company")
	assert.Empty(t, store.tx.ops)
}

func TestDeleteCompanyAccountZeroUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	companies.EXPECT().Exists(gomock.Any(), uint(44)).Return(true, nil)

	store := &fakeDeletionStore{tx: newFakeTx()}
	svc := service.NewDeletionService(store, companies, &fakeObjectStorage{})

	require.NoError(t, svc.DeleteCompanyAccount(context.Background(), 44))
	assert.True(t, store.committed)
	assert.Empty(t, store.tx.ops, "no per-user cleanup runs for an empty company")
}

func TestDeleteCompanyAccountSweepsTeamChats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	companies.EXPECT().Exists(gomock.Any(), uint(2)).Return(true, nil)

	tx := newFakeTx()
	tx.members[2] = []uint{7}
	tx.users[7] = &model.User{ID: 7}
	tx.teams[7] = []model.Team{{ID: 5, CompanyID: 2, CreatorID: 7}}

	store := &fakeDeletionStore{tx: tx}
	svc := service.NewDeletionService(store, companies, &fakeObjectStorage{})

	require.NoError(t, svc.DeleteCompanyAccount(context.Background(), 2))
	assert.True(t, store.committed)

	// The company path clears team-scoped chats the single-user path leaves.
	assert.Contains(t, tx.ops, "DeleteChatHistoriesByTeam(5)")
	assert.Contains(t, tx.ops, "DeleteUser(7)")
}
