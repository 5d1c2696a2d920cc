// internal/service/usage.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/teamdock/teamdock/internal/domain"
	"github.com/teamdock/teamdock/internal/model"
	"github.com/teamdock/teamdock/internal/repository"
)

const (
	statTypeUser    = "user"
	statTypeCompany = "company"
)

// UsageQuery carries the optional date filter. Nil means the parameter was
// not supplied; day requires month and year, month requires year, and all
// three absent means lifetime aggregation.
type UsageQuery struct {
	Day   *int
	Month *int
	Year  *int
}

// FieldIssue names one invalid or missing input field.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// DateError reports an invalid date filter with per-field details. It unwraps
// to domain.ErrInvalidDate so handlers can branch with errors.Is.
type DateError struct {
	Details []FieldIssue
}

func (e *DateError) Error() string {
	issues := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		issues = append(issues, d.Field+": "+d.Issue)
	}
	return "invalid date filter: " + strings.Join(issues, "; ")
}

func (e *DateError) Unwrap() error { return domain.ErrInvalidDate }

// LimitUsage pairs a consumed amount with its admin-configured ceiling.
type LimitUsage struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

// StorageUsage is the same pairing with human-readable sizes.
type StorageUsage struct {
	Used  string `json:"used"`
	Limit string `json:"limit"`
}

// SourceUsage is the per-upload-origin breakdown. Only sources with at least
// one file appear.
type SourceUsage struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
	Size   string `json:"size"`
}

type UsageReport struct {
	Scope         string        `json:"scope"`
	Queries       LimitUsage    `json:"queries"`
	Storage       StorageUsage  `json:"storage"`
	Recordings    LimitUsage    `json:"recordings"`
	Teams         LimitUsage    `json:"teams"`
	Users         *LimitUsage   `json:"users,omitempty"`
	UploadSources []SourceUsage `json:"uploadSources"`
}

type UsageServiceIface interface {
	GetUserUsage(ctx context.Context, userID uint, query UsageQuery) (*UsageReport, error)
	GetCompanyUsage(ctx context.Context, companyID uint, query UsageQuery) (*UsageReport, error)
}

type UsageService struct {
	users     repository.UserRepositoryIface
	companies repository.CompanyRepositoryIface
	store     repository.UsageStoreIface
	settings  SettingsServiceIface
	now       func() time.Time
}

func NewUsageService(users repository.UserRepositoryIface, companies repository.CompanyRepositoryIface, store repository.UsageStoreIface, settings SettingsServiceIface) *UsageService {
	return &UsageService{
		users:     users,
		companies: companies,
		store:     store,
		settings:  settings,
		now:       time.Now,
	}
}

type usageScope int

const (
	scopeOverall usageScope = iota
	scopeMonth
	scopeDate
)

// resolveScope validates the filter combination and, for the ranged scopes,
// returns the [from, to) window. Month and day values must round-trip through
// calendar construction: building the date and reading the components back
// rejects combinations like day=31 month=2 that normalization would silently
// shift into the next month.
func resolveScope(q UsageQuery) (usageScope, time.Time, time.Time, error) {
	var details []FieldIssue
	if q.Day != nil {
		if q.Month == nil {
			details = append(details, FieldIssue{Field: "month", Issue: "required when day is provided"})
		}
		if q.Year == nil {
			details = append(details, FieldIssue{Field: "year", Issue: "required when day is provided"})
		}
	} else if q.Month != nil && q.Year == nil {
		details = append(details, FieldIssue{Field: "year", Issue: "required when month is provided"})
	}
	if len(details) > 0 {
		return scopeOverall, time.Time{}, time.Time{}, &DateError{Details: details}
	}

	switch {
	case q.Day != nil:
		t := time.Date(*q.Year, time.Month(*q.Month), *q.Day, 0, 0, 0, 0, time.UTC)
		if t.Day() != *q.Day || int(t.Month()) != *q.Month || t.Year() != *q.Year {
			return scopeOverall, time.Time{}, time.Time{}, &DateError{Details: []FieldIssue{
				{Field: "day", Issue: "not a valid calendar date"},
			}}
		}
		return scopeDate, t, t.AddDate(0, 0, 1), nil
	case q.Month != nil:
		t := time.Date(*q.Year, time.Month(*q.Month), 1, 0, 0, 0, 0, time.UTC)
		if int(t.Month()) != *q.Month || t.Year() != *q.Year {
			return scopeOverall, time.Time{}, time.Time{}, &DateError{Details: []FieldIssue{
				{Field: "month", Issue: "must be between 1 and 12"},
			}}
		}
		return scopeMonth, t, t.AddDate(0, 1, 0), nil
	default:
		return scopeOverall, time.Time{}, time.Time{}, nil
	}
}

func (s *UsageService) GetUserUsage(ctx context.Context, userID uint, query UsageQuery) (*UsageReport, error) {
	scope, from, to, err := resolveScope(query)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	if scope == scopeMonth && s.monthClosed(from) {
		if report, ok, err := s.savedReport(ctx, userID, statTypeUser, query); err != nil {
			return nil, err
		} else if ok {
			return report, nil
		}
	}

	limits, err := s.loadLimits(ctx)
	if err != nil {
		return nil, err
	}

	report := &UsageReport{Scope: scopeName(scope)}

	var queries int64
	switch scope {
	case scopeOverall:
		queries, err = s.reconcileQueryCounter(ctx, userID)
	default:
		queries, err = s.store.CountUserMessagesInRange(ctx, userID, from, to)
	}
	if err != nil {
		return nil, err
	}
	report.Queries = LimitUsage{Used: queries, Limit: limits.maxQuery}

	var files []model.Document
	if scope == scopeOverall {
		files, err = s.store.ListFilesByCreator(ctx, userID)
	} else {
		files, err = s.store.ListFilesByCreatorInRange(ctx, userID, from, to)
	}
	if err != nil {
		return nil, err
	}
	report.Storage = StorageUsage{
		Used:  formatStorage(sumSizes(files)),
		Limit: formatStorage(float64(limits.maxStorageMB) * 1000),
	}
	report.UploadSources = sourceBreakdown(files)

	recFrom, recTo := from, to
	if scope == scopeOverall {
		// The recording ceiling is monthly; lifetime reports show the
		// current month's consumption against it.
		recFrom, recTo = s.currentMonthWindow()
	}
	recordings, err := s.store.CountRecordingsByUser(ctx, userID, recFrom, recTo)
	if err != nil {
		return nil, err
	}
	report.Recordings = LimitUsage{Used: recordings, Limit: limits.recordingLimit}

	teams, err := s.store.CountTeamsByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	report.Teams = LimitUsage{Used: teams, Limit: limits.maxTeams}

	if scope == scopeMonth && s.monthClosed(from) {
		s.memoize(ctx, userID, statTypeUser, query, report)
	}
	return report, nil
}

func (s *UsageService) GetCompanyUsage(ctx context.Context, companyID uint, query UsageQuery) (*UsageReport, error) {
	scope, from, to, err := resolveScope(query)
	if err != nil {
		return nil, err
	}

	exists, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrCompanyNotFound
	}

	if scope == scopeMonth && s.monthClosed(from) {
		if report, ok, err := s.savedReport(ctx, companyID, statTypeCompany, query); err != nil {
			return nil, err
		} else if ok {
			return report, nil
		}
	}

	limits, err := s.loadLimits(ctx)
	if err != nil {
		return nil, err
	}

	bindings, err := s.companies.RoleBindingsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	report := &UsageReport{Scope: scopeName(scope)}

	var queries int64
	for _, binding := range bindings {
		var n int64
		if scope == scopeOverall {
			n, err = s.reconcileQueryCounter(ctx, binding.UserID)
		} else {
			n, err = s.store.CountUserMessagesInRange(ctx, binding.UserID, from, to)
		}
		if err != nil {
			return nil, err
		}
		queries += n
	}
	report.Queries = LimitUsage{Used: queries, Limit: limits.maxQuery}

	var files []model.Document
	if scope == scopeOverall {
		files, err = s.store.ListFilesByCompany(ctx, companyID)
	} else {
		files, err = s.store.ListFilesByCompanyInRange(ctx, companyID, from, to)
	}
	if err != nil {
		return nil, err
	}
	report.Storage = StorageUsage{
		Used:  formatStorage(sumSizes(files)),
		Limit: formatStorage(float64(limits.maxStorageMB) * 1000),
	}
	report.UploadSources = sourceBreakdown(files)

	recFrom, recTo := from, to
	if scope == scopeOverall {
		recFrom, recTo = s.currentMonthWindow()
	}
	recordings, err := s.store.CountRecordingsByCompany(ctx, companyID, recFrom, recTo)
	if err != nil {
		return nil, err
	}
	report.Recordings = LimitUsage{Used: recordings, Limit: limits.recordingLimit}

	teams, err := s.store.CountTeamsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report.Teams = LimitUsage{Used: teams, Limit: limits.maxTeams}

	report.Users = &LimitUsage{Used: int64(len(bindings)), Limit: limits.maxUsers}

	if scope == scopeMonth && s.monthClosed(from) {
		s.memoize(ctx, companyID, statTypeCompany, query, report)
	}
	return report, nil
}

// reconcileQueryCounter reads the per-user lifetime counter, backfilling it
// from the message table the first time a user without one is seen. The
// write-inside-a-read is deliberate: it turns every later lifetime lookup
// into a single meta-row read.
func (s *UsageService) reconcileQueryCounter(ctx context.Context, userID uint) (int64, error) {
	hasMeta, err := s.users.MetaExists(ctx, userID, model.MetaQueries)
	if err != nil {
		return 0, err
	}
	if hasMeta {
		value, err := s.users.MetaValue(ctx, userID, model.MetaQueries)
		if err != nil {
			return 0, err
		}
		if value == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("query counter for user %d is not numeric: %w", userID, err)
		}
		return n, nil
	}

	count, err := s.store.CountUserMessages(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.users.SetMeta(ctx, userID, model.MetaQueries, strconv.FormatInt(count, 10)); err != nil {
		return 0, err
	}
	slog.Info("Backfilled query counter", "userId", userID, "queries", count)
	return count, nil
}

type usageLimits struct {
	maxStorageMB   int64
	maxTeams       int64
	maxUsers       int64
	maxQuery       int64
	recordingLimit int64
}

func (s *UsageService) loadLimits(ctx context.Context) (usageLimits, error) {
	var limits usageLimits
	var err error
	if limits.maxStorageMB, err = s.settings.GetInt(ctx, SettingMaxStorage); err != nil {
		return limits, err
	}
	if limits.maxTeams, err = s.settings.GetInt(ctx, SettingMaxTeams); err != nil {
		return limits, err
	}
	if limits.maxUsers, err = s.settings.GetInt(ctx, SettingMaxUsers); err != nil {
		return limits, err
	}
	if limits.maxQuery, err = s.settings.GetInt(ctx, SettingMaxQuery); err != nil {
		return limits, err
	}
	if limits.recordingLimit, err = s.settings.GetInt(ctx, SettingRecordingMonthlyLimit); err != nil {
		return limits, err
	}
	return limits, nil
}

// savedReport returns the memoized rollup for a closed month, if one exists.
func (s *UsageService) savedReport(ctx context.Context, statID uint, statType string, query UsageQuery) (*UsageReport, bool, error) {
	stat, err := s.store.SavedStatistic(ctx, statID, *query.Month, *query.Year, statType)
	if err != nil {
		return nil, false, err
	}
	if stat == nil {
		return nil, false, nil
	}
	var report UsageReport
	if err := json.Unmarshal([]byte(stat.Data), &report); err != nil {
		// A corrupt snapshot is recomputed, not fatal.
		slog.Warn("Discarding unreadable usage snapshot", "statId", statID, "type", statType, "error", err)
		return nil, false, nil
	}
	return &report, true, nil
}

// memoize persists a closed month's rollup. Failure only costs a
// recomputation next time, so it is logged and swallowed.
func (s *UsageService) memoize(ctx context.Context, statID uint, statType string, query UsageQuery, report *UsageReport) {
	data, err := json.Marshal(report)
	if err != nil {
		slog.Warn("Failed to encode usage snapshot", "statId", statID, "error", err)
		return
	}
	stat := &model.UsageStatistic{
		StatID: statID,
		Month:  *query.Month,
		Year:   *query.Year,
		Type:   statType,
		Data:   string(data),
	}
	if err := s.store.SaveStatistic(ctx, stat); err != nil {
		slog.Warn("Failed to save usage snapshot", "statId", statID, "error", err)
	}
}

// monthClosed reports whether the month starting at from is strictly in the
// past; the current month keeps changing and is never memoized.
func (s *UsageService) monthClosed(from time.Time) bool {
	now := s.now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from.Before(currentMonth)
}

func (s *UsageService) currentMonthWindow() (time.Time, time.Time) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func scopeName(scope usageScope) string {
	switch scope {
	case scopeDate:
		return "date"
	case scopeMonth:
		return "month"
	default:
		return "overall"
	}
}

// parseSizeKB extracts the numeric kilobyte count from a stored size string
// such as "123.45 KB". Unparseable or empty sizes count as zero.
func parseSizeKB(size string) float64 {
	fields := strings.Fields(size)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return n
}

func sumSizes(files []model.Document) float64 {
	var total float64
	for _, f := range files {
		total += parseSizeKB(f.Size)
	}
	return total
}

// formatStorage renders a kilobyte total at the largest unit that keeps the
// value under 1000, with two decimals.
func formatStorage(kb float64) string {
	if kb < 1000 {
		return fmt.Sprintf("%.2f KB", kb)
	}
	mb := kb / 1000
	if mb < 1000 {
		return fmt.Sprintf("%.2f MB", mb)
	}
	return fmt.Sprintf("%.2f GB", mb/1000)
}

// sourceBreakdown groups files by upload origin. Files without a source are
// skipped; only origins with at least one file appear.
func sourceBreakdown(files []model.Document) []SourceUsage {
	type bucket struct {
		count int64
		kb    float64
	}
	buckets := make(map[string]*bucket)
	var order []string
	for _, f := range files {
		if f.Source == nil || *f.Source == "" {
			continue
		}
		b, ok := buckets[*f.Source]
		if !ok {
			b = &bucket{}
			buckets[*f.Source] = b
			order = append(order, *f.Source)
		}
		b.count++
		b.kb += parseSizeKB(f.Size)
	}
	result := make([]SourceUsage, 0, len(order))
	for _, source := range order {
		b := buckets[source]
		result = append(result, SourceUsage{
			Source: source,
			Count:  b.count,
			Size:   formatStorage(b.kb),
		})
	}
	return result
}
