package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-portal/internal/models"
)

// CatalogService serves the workbook catalog shown on the workbooks view and
// its search box.
type CatalogService struct {
	workbooks []models.Workbook
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService; a nil seed falls back to the
// built-in workbook set.
func NewCatalogService(workbooks []models.Workbook, logger *zap.Logger) *CatalogService {
	if workbooks == nil {
		workbooks = models.DefaultWorkbooks()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{workbooks: workbooks, logger: logger}
}

// Workbooks returns the full catalog.
func (s *CatalogService) Workbooks() []models.Workbook {
	return s.workbooks
}

// Search keeps workbooks whose title, description or tags contain the query.
// The query is trimmed and compared case-insensitively; an empty query keeps
// everything.
func (s *CatalogService) Search(query string) []models.Workbook {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.workbooks
	}

	matched := make([]models.Workbook, 0, len(s.workbooks))
	for _, wb := range s.workbooks {
		if strings.Contains(strings.ToLower(wb.Title), q) ||
			strings.Contains(strings.ToLower(wb.Description), q) ||
			strings.Contains(strings.ToLower(strings.Join(wb.Tags, " ")), q) {
			matched = append(matched, wb)
		}
	}
	return matched
}
