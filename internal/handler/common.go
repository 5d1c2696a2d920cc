// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/serializer"
	"github.com/teamdock/teamdock/internal/service"
)

// decode reads a JSON body into dst. A false return means the error response
// was already written.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// respondError maps domain sentinels onto the error taxonomy. Anything
// unmapped is a 500 and gets logged with its cause; the client only sees the
// generic message.
func respondError(w http.ResponseWriter, err error) {
	var dateErr *service.DateError
	if errors.As(err, &dateErr) {
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, "Invalid date filter", dateErr.Details)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrSettingNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrNotFound):
		serializer.Error(w, http.StatusNotFound, serializer.KindNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrDuplicateAlias),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyVerified),
		errors.Is(err, domain.ErrInvalidVerifyCode),
		errors.Is(err, domain.ErrInvitationHandled),
		errors.Is(err, domain.ErrLimitExceeded):
		serializer.Error(w, http.StatusBadRequest, serializer.KindBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrUnauthorized):
		serializer.Error(w, http.StatusUnauthorized, serializer.KindUnauthorized, err.Error(), nil)
	case errors.Is(err, domain.ErrAccessDenied):
		serializer.Error(w, http.StatusForbidden, serializer.KindForbidden, err.Error(), nil)
	default:
		slog.Error("Unhandled error", "error", err)
		serializer.Error(w, http.StatusInternalServerError, serializer.KindServerError, "Something went wrong", nil)
	}
}

// pathUint parses a numeric URL parameter; zero means absent or malformed.
func pathUint(value string) uint {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// parseUsageQuery reads the optional day/month/year filter. Non-numeric
// values produce a per-field issue instead of being silently dropped.
func parseUsageQuery(r *http.Request) (service.UsageQuery, *service.DateError) {
	var query service.UsageQuery
	var details []service.FieldIssue
	for _, field := range []struct {
		name string
		dst  **int
	}{
		{"day", &query.Day},
		{"month", &query.Month},
		{"year", &query.Year},
	} {
		raw := r.URL.Query().Get(field.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			details = append(details, service.FieldIssue{Field: field.name, Issue: "must be a number"})
			continue
		}
		*field.dst = &n
	}
	if len(details) > 0 {
		return query, &service.DateError{Details: details}
	}
	return query, nil
}
