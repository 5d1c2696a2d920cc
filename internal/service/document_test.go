package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/mocks"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/service"
	"go.uber.org/mock/gomock"
)

type fakeDocumentRepo struct {
	created []*model.Document
	nextID  uint
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *model.Document) error {
	f.nextID++
	doc.ID = f.nextID
	f.created = append(f.created, doc)
	return nil
}

func (f *fakeDocumentRepo) FindByID(ctx context.Context, id uint) (*model.Document, error) {
	for _, doc := range f.created {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, domain.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) ListByTeam(ctx context.Context, teamID uint) ([]model.Document, error) {
	var docs []model.Document
	for _, doc := range f.created {
		if doc.TeamID == teamID {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

func TestUploadStoresRowThenObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &fakeDocumentRepo{nextID: 41}
	usage := mocks.NewMockUsageStoreIface(ctrl)
	settings := mocks.NewMockSettingsServiceIface(ctrl)
	objects := &fakeObjectStorage{present: map[string]bool{}}

	settings.EXPECT().GetInt(gomock.Any(), service.SettingMaxStorage).Return(int64(10240), nil)
	usage.EXPECT().ListFilesByCompany(gomock.Any(), uint(2)).Return(nil, nil)

	svc := service.NewDocumentService(repo, usage, settings, objects)
	doc, err := svc.Upload(context.Background(), service.UploadDocumentInput{
		TeamID:    5,
		CompanyID: 2,
		CreatorID: 7,
		FileName:  "report.pdf",
		Source:    "upload",
		Content:   make([]byte, 2500),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), doc.ID)
	assert.Equal(t, "2.50 KB", doc.Size)
	require.NotNil(t, doc.Source)
	assert.Equal(t, "upload", *doc.Source)

	// The row exists before the object goes out, and the key embeds the id.
	assert.Equal(t, []string{"put:42.pdf"}, objects.ops)
}

func TestUploadRejectsOverCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &fakeDocumentRepo{}
	usage := mocks.NewMockUsageStoreIface(ctrl)
	settings := mocks.NewMockSettingsServiceIface(ctrl)
	objects := &fakeObjectStorage{present: map[string]bool{}}

	// Ceiling of 1 MB, already 999 KB consumed.
	settings.EXPECT().GetInt(gomock.Any(), service.SettingMaxStorage).Return(int64(1), nil)
	usage.EXPECT().ListFilesByCompany(gomock.Any(), uint(2)).Return([]model.Document{
		{ID: 1, Size: "999 KB", Type: model.DocumentFile},
	}, nil)

	svc := service.NewDocumentService(repo, usage, settings, objects)
	_, err := svc.Upload(context.Background(), service.UploadDocumentInput{
		TeamID:    5,
		CompanyID: 2,
		CreatorID: 7,
		FileName:  "report.pdf",
		Content:   make([]byte, 2000),
	})
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)
	assert.Empty(t, repo.created, "no row may be written past the ceiling")
	assert.Empty(t, objects.ops)
}
