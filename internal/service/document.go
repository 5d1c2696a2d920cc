// internal/service/document.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
	"github.com/teamdock/teamdock/internal/storage"
)

type UploadDocumentInput struct {
	TeamID    uint
	CompanyID uint
	CreatorID uint
	FileName  string `validate:"required,max=512"`
	Source    string
	Content   []byte `validate:"required"`
}

type DocumentServiceIface interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*model.Document, error)
	ListByTeam(ctx context.Context, teamID uint) ([]model.Document, error)
}

type DocumentService struct {
	documents repository.DocumentRepositoryIface
	usage     repository.UsageStoreIface
	settings  SettingsServiceIface
	objects   storage.ObjectStorage
	validate  *validator.Validate
}

func NewDocumentService(documents repository.DocumentRepositoryIface, usage repository.UsageStoreIface, settings SettingsServiceIface, objects storage.ObjectStorage) *DocumentService {
	return &DocumentService{
		documents: documents,
		usage:     usage,
		settings:  settings,
		objects:   objects,
		validate:  validator.New(),
	}
}

// Upload records the document row and pushes the bytes to object storage.
// Sizes are stored as "<kb> KB" strings, the unit the aggregator parses. The
// row is written first so the storage key, which embeds the document id, is
// stable.
func (s *DocumentService) Upload(ctx context.Context, input UploadDocumentInput) (*model.Document, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	maxStorageMB, err := s.settings.GetInt(ctx, SettingMaxStorage)
	if err != nil {
		return nil, err
	}
	existing, err := s.usage.ListFilesByCompany(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	sizeKB := float64(len(input.Content)) / 1000
	if sumSizes(existing)+sizeKB > float64(maxStorageMB)*1000 {
		return nil, fmt.Errorf("company %d storage ceiling reached: %w", input.CompanyID, domain.ErrLimitExceeded)
	}

	doc := &model.Document{
		TeamID:    input.TeamID,
		CreatorID: input.CreatorID,
		Name:      input.FileName,
		Type:      model.DocumentFile,
		Size:      fmt.Sprintf("%.2f KB", sizeKB),
	}
	if input.Source != "" {
		doc.Source = &input.Source
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	err = s.objects.Put(ctx, doc.ObjectKey(), bytes.NewReader(input.Content),
		int64(len(input.Content)), "application/octet-stream")
	if err != nil {
		return nil, fmt.Errorf("storing object %s: %w", doc.ObjectKey(), err)
	}

	slog.Info("Uploaded document", "documentId", doc.ID, "teamId", input.TeamID, "key", doc.ObjectKey())
	return doc, nil
}

func (s *DocumentService) ListByTeam(ctx context.Context, teamID uint) ([]model.Document, error) {
	return s.documents.ListByTeam(ctx, teamID)
}
