// Package query evaluates searches, by-field listings and statistics over the
// company records held by a Reader. Every query is a full scan.
package query

import (
	"sort"
	"strings"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
)

// Reader is the read-only view of the record store the engine needs.
type Reader interface {
	All() []domain.Company
	ByID(id int) (domain.Company, bool)
}

// Service runs queries against a Reader. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	reader Reader
	log    logger.Logger
}

// NewService creates a query service. A nil logger discards output.
func NewService(reader Reader, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{reader: reader, log: log}
}

// Search applies the text query and filters, sorts when asked, and returns
// the requested page.
func (s *Service) Search(req domain.SearchRequest) domain.CompanyList {
	matches := s.filter(func(c *domain.Company) bool {
		return MatchesText(c, req.Query) && MatchesFilters(c, &req.Filters)
	})
	if req.Sort != nil {
		matches = sortCompanies(matches, *req.Sort)
	}

	result := paginate(matches, req.Pagination)
	s.log.Debug("Search executed",
		logger.String("query", req.Query),
		logger.Int("total", result.Total),
		logger.Int("page", result.Page),
	)
	return result
}

// ByField lists companies whose field matches the requested value.
func (s *Service) ByField(req domain.FieldRequest) domain.CompanyList {
	matches := s.filter(func(c *domain.Company) bool {
		return MatchesField(c, req.Field, req.Value)
	})
	return paginate(matches, req.Pagination)
}

// ByFlag lists hiring companies, top companies, or all companies.
func (s *Service) ByFlag(req domain.FlagRequest) domain.CompanyList {
	if req.Flag == domain.FlagAll {
		return paginate(s.reader.All(), req.Pagination)
	}
	matches := s.filter(func(c *domain.Company) bool {
		return MatchesFlag(c, req.Flag)
	})
	return paginate(matches, req.Pagination)
}

// CompanyByID looks up one company. An unknown id is reported through found,
// not as an error; only an id that does not parse is an error.
func (s *Service) CompanyByID(req domain.CompanyIDRequest) (company domain.Company, found bool, err error) {
	id, err := req.ParseID()
	if err != nil {
		return domain.Company{}, false, err
	}
	company, found = s.reader.ByID(id)
	return company, found, nil
}

// Stats summarizes the companies matching the request filters.
func (s *Service) Stats(req domain.StatsRequest) domain.Stats {
	return summarize(s.reader.All(), &req.Filters)
}

func (s *Service) filter(keep func(*domain.Company) bool) []domain.Company {
	all := s.reader.All()
	out := make([]domain.Company, 0)
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out
}

// paginate cuts the window [(page-1)*size, page*size) out of matches.
func paginate(matches []domain.Company, p domain.Pagination) domain.CompanyList {
	p = p.WithDefaults()
	total := len(matches)

	// Bound page and size against total before multiplying so huge page
	// numbers cannot wrap.
	start := total
	if p.Page-1 <= total/p.PageSize {
		start = (p.Page - 1) * p.PageSize
	}
	end := total
	if p.PageSize < total-start {
		end = start + p.PageSize
	}

	page := make([]domain.Company, end-start)
	copy(page, matches[start:end])

	return domain.CompanyList{
		Companies: page,
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
		HasMore:   total > 0 && p.Page <= (total-1)/p.PageSize,
	}
}

// sortCompanies returns a stably sorted copy of companies. An unknown field
// returns the copy in its original order.
func sortCompanies(companies []domain.Company, s domain.Sort) []domain.Company {
	out := make([]domain.Company, len(companies))
	copy(out, companies)

	cmp := comparator(s.Field)
	if cmp == nil {
		return out
	}

	desc := s.Order == domain.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return cmp(&out[j], &out[i]) < 0
		}
		return cmp(&out[i], &out[j]) < 0
	})
	return out
}

func comparator(field domain.SortField) func(a, b *domain.Company) int {
	switch field {
	case domain.SortByName:
		return func(a, b *domain.Company) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case domain.SortByTeamSize:
		return func(a, b *domain.Company) int {
			return compareInt64(int64(domain.IntValue(a.TeamSize)), int64(domain.IntValue(b.TeamSize)))
		}
	case domain.SortByLaunchedAt:
		return func(a, b *domain.Company) int {
			return compareInt64(domain.Int64Value(a.LaunchedAt), domain.Int64Value(b.LaunchedAt))
		}
	case domain.SortByBatch:
		return func(a, b *domain.Company) int {
			return strings.Compare(domain.StringValue(a.Batch), domain.StringValue(b.Batch))
		}
	default:
		return nil
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
