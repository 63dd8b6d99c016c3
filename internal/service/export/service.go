// Package export renders idea listings as CSV or JSON downloads.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

const csvDateLayout = "02/01/2006, 15:04:05"

var csvHeader = []string{"ID", "Título", "Descrição", "Categoria", "Impacto", "Status", "Usuário", "Email", "Data Criação"}

// ideaLister defines the idea repository interface needed by export service.
type ideaLister interface {
	List(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error)
}

// Config holds export limits and presentation settings.
type Config struct {
	MaxRows  int
	Location *time.Location
}

// Service implements idea exports.
type Service struct {
	log   *slog.Logger
	ideas ideaLister
	cfg   Config
	now   func() time.Time
}

// NewService creates a new export service instance.
func NewService(logger *slog.Logger, ideas ideaLister, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		log:   logger.With("service", "export"),
		ideas: ideas,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Filters are the raw request filters. Empty values and "all" disable a filter.
type Filters struct {
	Status    string
	Category  string
	StartDate string
	EndDate   string
}

// Request is an export request.
type Request struct {
	Format  string
	Filters Filters
}

// Result is a rendered export. CSV is set for csv exports, Ideas for json.
type Result struct {
	Format      string
	Filename    string
	ContentType string
	CSV         []byte
	Ideas       []domain.IdeaWithAuthor
}

// Export lists the ideas visible to the caller and renders them. Admins see
// every idea, other users only their own.
func (s *Service) Export(ctx context.Context, req Request) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatJSON {
		return nil, domain.NewValidationError("format", "must be 'csv' or 'json'")
	}

	filter, err := s.buildFilter(req.Filters)
	if err != nil {
		return nil, err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		filter.UserID = &userID
	}

	ideas, err := s.ideas.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export.Export: %w", err)
	}

	s.log.InfoContext(ctx, "ideas exported",
		slog.String("user_id", userID.String()),
		slog.String("format", format),
		slog.Int("rows", len(ideas)))

	if format == FormatJSON {
		return &Result{Format: format, ContentType: "application/json", Ideas: ideas}, nil
	}

	body, err := s.renderCSV(ideas)
	if err != nil {
		return nil, fmt.Errorf("export.Export csv: %w", err)
	}
	return &Result{
		Format:      format,
		Filename:    "ideias_" + s.now().Format(time.RFC3339) + ".csv",
		ContentType: "text/csv",
		CSV:         body,
	}, nil
}

func (s *Service) buildFilter(f Filters) (domain.IdeaFilter, error) {
	var (
		out  = domain.IdeaFilter{Limit: s.cfg.MaxRows}
		errs []domain.FieldError
	)

	if v, set := filterValue(f.Status); set {
		st := domain.IdeaStatus(v)
		if !st.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
		}
		out.Status = &st
	}
	if v, set := filterValue(f.Category); set {
		c := domain.Category(v)
		if !c.IsValid() {
			errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
		}
		out.Category = &c
	}
	if v, set := filterValue(f.StartDate); set {
		t, _, err := parseDate(v, s.cfg.Location)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "startDate", Message: "invalid date"})
		}
		out.From = &t
	}
	if v, set := filterValue(f.EndDate); set {
		t, dateOnly, err := parseDate(v, s.cfg.Location)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "endDate", Message: "invalid date"})
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
		out.To = &t
	}

	if len(errs) > 0 {
		return domain.IdeaFilter{}, domain.NewValidationErrors(errs)
	}
	return out, nil
}

func filterValue(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "all") {
		return "", false
	}
	return v, true
}

// parseDate accepts YYYY-MM-DD (midnight in loc) or RFC 3339.
func parseDate(v string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(time.DateOnly, v, loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	return t, false, err
}

func (s *Service) renderCSV(ideas []domain.IdeaWithAuthor) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, i := range ideas {
		impact := ""
		if i.Impact != nil {
			impact = *i.Impact
		}
		err := w.Write([]string{
			i.ID.String(),
			i.Title,
			i.Description,
			string(i.Category),
			impact,
			string(i.Status),
			i.AuthorName,
			i.AuthorEmail,
			i.CreatedAt.In(s.cfg.Location).Format(csvDateLayout),
		})
		if err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
