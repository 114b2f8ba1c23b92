package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

// wholeNumber decodes JSON numbers with no fractional part, so 2 and 2.0
// are both accepted.
type wholeNumber int64

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("%s is not a whole number", data)
	}
	*n = wholeNumber(f)
	return nil
}

func (n *wholeNumber) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func (n *wholeNumber) int64Ptr() *int64 {
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}

type pagingArgs struct {
	Page     *wholeNumber `json:"page"`
	PageSize *wholeNumber `json:"pageSize"`
	Format   string       `json:"format"`
}

func (a pagingArgs) pagination() domain.Pagination {
	var p domain.Pagination
	if a.Page != nil {
		p.Page = int(*a.Page)
	}
	if a.PageSize != nil {
		p.PageSize = int(*a.PageSize)
	}
	return p
}

type filterArgs struct {
	Industry       *string      `json:"industry"`
	Stage          *string      `json:"stage"`
	Status         *string      `json:"status"`
	Batch          *string      `json:"batch"`
	MinTeamSize    *wholeNumber `json:"minTeamSize"`
	MaxTeamSize    *wholeNumber `json:"maxTeamSize"`
	Tags           []string     `json:"tags"`
	Regions        []string     `json:"regions"`
	IsHiring       *bool        `json:"isHiring"`
	TopCompany     *bool        `json:"topCompany"`
	Nonprofit      *bool        `json:"nonprofit"`
	LaunchedAfter  *wholeNumber `json:"launchedAfter"`
	LaunchedBefore *wholeNumber `json:"launchedBefore"`
}

func (f *filterArgs) toDomain() domain.Filters {
	if f == nil {
		return domain.Filters{}
	}
	return domain.Filters{
		Industry:       f.Industry,
		Stage:          f.Stage,
		Status:         f.Status,
		Batch:          f.Batch,
		MinTeamSize:    f.MinTeamSize.intPtr(),
		MaxTeamSize:    f.MaxTeamSize.intPtr(),
		Tags:           f.Tags,
		Regions:        f.Regions,
		IsHiring:       f.IsHiring,
		TopCompany:     f.TopCompany,
		Nonprofit:      f.Nonprofit,
		LaunchedAfter:  f.LaunchedAfter.int64Ptr(),
		LaunchedBefore: f.LaunchedBefore.int64Ptr(),
	}
}

type searchArgs struct {
	pagingArgs
	Query     string      `json:"query"`
	Filters   *filterArgs `json:"filters"`
	SortBy    string      `json:"sortBy"`
	SortOrder string      `json:"sortOrder"`
}

func (a searchArgs) request() domain.SearchRequest {
	req := domain.SearchRequest{
		Query:      a.Query,
		Filters:    a.Filters.toDomain(),
		Pagination: a.pagination(),
	}
	if a.SortBy != "" || a.SortOrder != "" {
		req.Sort = &domain.Sort{Field: domain.SortField(a.SortBy), Order: domain.SortOrder(a.SortOrder)}
	}
	return req
}

type statsArgs struct {
	filterArgs
	Format string `json:"format"`
}

type companyArgs struct {
	CompanyID json.RawMessage `json:"companyId"`
	Format    string          `json:"format"`
}

// id returns companyId as text whether it was sent as a string or a number.
func (a companyArgs) id() string {
	raw := bytes.TrimSpace(a.CompanyID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return string(raw)
}

// decodeArgs unmarshals tool arguments, treating a missing payload as {}.
func decodeArgs(arguments json.RawMessage, dst any) error {
	arguments = bytes.TrimSpace(arguments)
	if len(arguments) == 0 || bytes.Equal(arguments, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(arguments, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
	}
	return nil
}
