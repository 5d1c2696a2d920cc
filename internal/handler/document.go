// internal/handler/document.go
package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teamdock/teamdock/internal/middleware"
	"github.com/teamdock/teamdock/internal/serializer"
	"github.com/teamdock/teamdock/internal/service"
)

type DocumentHandler struct {
	documents service.DocumentServiceIface
}

func NewDocumentHandler(documents service.DocumentServiceIface) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Upload accepts a base64-encoded file. The fileType field is validated by
// the extension gate before this handler runs.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, "Missing authorization token", nil)
		return
	}

	var input struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
		Source   string `json:"source"`
		Content  string `json:"content"`
	}
	if !decode(w, r, &input) {
		return
	}

	content, err := base64.StdEncoding.DecodeString(input.Content)
	if err != nil {
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Invalid file content",
			[]map[string]string{{"field": "content", "issue": "must be base64"}})
		return
	}

	doc, err := h.documents.Upload(r.Context(), service.UploadDocumentInput{
		TeamID:    pathUint(chi.URLParam(r, "teamId")),
		CompanyID: claims.Company,
		CreatorID: claims.UserID,
		FileName:  input.FileName,
		Source:    input.Source,
		Content:   content,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusCreated, "Document uploaded", doc)
}

func (h *DocumentHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.ListByTeam(r.Context(), pathUint(chi.URLParam(r, "teamId")))
	if err != nil {
		respondError(w, err)
		return
	}
	serializer.Success(w, http.StatusOK, "", docs)
}
