package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Filters is a set of optional predicates, AND-combined. A nil pointer or an
// empty slice means the predicate is absent.
type Filters struct {
	Industry       *string  `json:"industry,omitempty"`
	Stage          *string  `json:"stage,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Batch          *string  `json:"batch,omitempty"`
	MinTeamSize    *int     `json:"minTeamSize,omitempty"`
	MaxTeamSize    *int     `json:"maxTeamSize,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Regions        []string `json:"regions,omitempty"`
	IsHiring       *bool    `json:"isHiring,omitempty"`
	TopCompany     *bool    `json:"topCompany,omitempty"`
	Nonprofit      *bool    `json:"nonprofit,omitempty"`
	LaunchedAfter  *int64   `json:"launchedAfter,omitempty"`
	LaunchedBefore *int64   `json:"launchedBefore,omitempty"`
}

// Pagination selects a window of a result sequence. Page is 1-based.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// WithDefaults replaces values below 1 with DefaultPage and DefaultPageSize.
func (p Pagination) WithDefaults() Pagination {
	return p.withDefaultSize(DefaultPageSize)
}

func (p Pagination) withDefaultSize(size int) Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = size
	}
	return p
}

// Limits bounds pagination at the request boundary.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultLimits returns the built-in page size limits.
func DefaultLimits() Limits {
	return Limits{DefaultPageSize: DefaultPageSize, MaxPageSize: MaxPageSize}
}

func (l Limits) normalize(p Pagination) (Pagination, error) {
	if l.DefaultPageSize < 1 {
		l.DefaultPageSize = DefaultPageSize
	}
	p = p.withDefaultSize(l.DefaultPageSize)
	if l.MaxPageSize > 0 && p.PageSize > l.MaxPageSize {
		return p, fmt.Errorf("%w: pageSize must not exceed %d", ErrInvalidParams, l.MaxPageSize)
	}
	return p, nil
}

// SortField names a sortable company attribute.
type SortField string

// Sortable fields.
const (
	SortByName       SortField = "name"
	SortByTeamSize   SortField = "team_size"
	SortByLaunchedAt SortField = "launched_at"
	SortByBatch      SortField = "batch"
)

// SortOrder is asc or desc.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort describes an optional ordering for search results.
type Sort struct {
	Field SortField `json:"sortBy,omitempty"`
	Order SortOrder `json:"sortOrder,omitempty"`
}

// Valid reports whether f is one of the sortable fields.
func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByTeamSize, SortByLaunchedAt, SortByBatch:
		return true
	}
	return false
}

// SearchRequest is a free-text search with filters, sort and pagination.
type SearchRequest struct {
	Query      string
	Filters    Filters
	Pagination Pagination
	Sort       *Sort
}

// Validate applies pagination and sort defaults and rejects unknown sort keys.
func (r *SearchRequest) Validate(l Limits) error {
	p, err := l.normalize(r.Pagination)
	if err != nil {
		return err
	}
	r.Pagination = p

	if err := validateSort(r); err != nil {
		return err
	}
	return validateTeamSize(&r.Filters)
}

func validateSort(r *SearchRequest) error {
	if r.Sort == nil {
		return nil
	}
	if r.Sort.Field == "" {
		if r.Sort.Order != "" {
			return fmt.Errorf("%w: sortOrder requires sortBy", ErrInvalidParams)
		}
		r.Sort = nil
		return nil
	}
	if !r.Sort.Field.Valid() {
		return fmt.Errorf("%w: unsupported sortBy %q (expected name, team_size, launched_at or batch)",
			ErrInvalidParams, r.Sort.Field)
	}
	switch r.Sort.Order {
	case "":
		r.Sort.Order = SortAsc
	case SortAsc, SortDesc:
	default:
		return fmt.Errorf("%w: unsupported sortOrder %q (expected asc or desc)", ErrInvalidParams, r.Sort.Order)
	}
	return nil
}

func validateTeamSize(f *Filters) error {
	if f.MinTeamSize != nil && *f.MinTeamSize < 0 {
		return fmt.Errorf("%w: minTeamSize must not be negative", ErrInvalidParams)
	}
	if f.MaxTeamSize != nil && *f.MaxTeamSize < 0 {
		return fmt.Errorf("%w: maxTeamSize must not be negative", ErrInvalidParams)
	}
	return nil
}

// FieldKind selects the attribute a FieldRequest matches against.
type FieldKind string

// Field kinds for by-field lookups.
const (
	FieldBatch    FieldKind = "batch"
	FieldIndustry FieldKind = "industry"
	FieldStatus   FieldKind = "status"
	FieldStage    FieldKind = "stage"
	FieldRegion   FieldKind = "region"
	FieldTag      FieldKind = "tag"
)

// FieldKinds lists every supported FieldKind.
var FieldKinds = []FieldKind{FieldBatch, FieldIndustry, FieldStatus, FieldStage, FieldRegion, FieldTag}

// FieldRequest lists companies whose Field matches Value.
type FieldRequest struct {
	Field      FieldKind
	Value      string
	Pagination Pagination
}

// Validate requires a known field and a non-blank value.
func (r *FieldRequest) Validate(l Limits) error {
	known := false
	for _, k := range FieldKinds {
		if r.Field == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unsupported field %q", ErrInvalidParams, r.Field)
	}
	if strings.TrimSpace(r.Value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidParams, r.Field)
	}

	p, err := l.normalize(r.Pagination)
	if err != nil {
		return err
	}
	r.Pagination = p
	return nil
}

// FlagKind selects a boolean listing.
type FlagKind string

// Flag kinds.
const (
	FlagHiring FlagKind = "hiring"
	FlagTop    FlagKind = "top"
	FlagAll    FlagKind = "all"
)

// FlagRequest lists hiring companies, top companies, or every company.
type FlagRequest struct {
	Flag       FlagKind
	Pagination Pagination
}

// Validate requires a known flag.
func (r *FlagRequest) Validate(l Limits) error {
	switch r.Flag {
	case FlagHiring, FlagTop, FlagAll:
	default:
		return fmt.Errorf("%w: unsupported listing %q", ErrInvalidParams, r.Flag)
	}
	p, err := l.normalize(r.Pagination)
	if err != nil {
		return err
	}
	r.Pagination = p
	return nil
}

// StatsRequest summarizes the companies matching Filters.
type StatsRequest struct {
	Filters Filters
}

// Validate checks the filter bounds.
func (r *StatsRequest) Validate() error {
	return validateTeamSize(&r.Filters)
}

// CompanyIDRequest looks up a single company. ID holds the raw string or
// numeric id as received.
type CompanyIDRequest struct {
	ID string
}

// Validate requires an id that parses as an integer.
func (r *CompanyIDRequest) Validate() error {
	_, err := r.ParseID()
	return err
}

// ParseID returns the numeric id.
func (r *CompanyIDRequest) ParseID() (int, error) {
	raw := strings.TrimSpace(r.ID)
	if raw == "" {
		return 0, fmt.Errorf("%w: companyId is required", ErrInvalidParams)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: companyId %q is not an integer", ErrInvalidParams, r.ID)
	}
	return id, nil
}
