package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

func TestPagination_WithDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   domain.Pagination
		want domain.Pagination
	}{
		{name: "zero value", in: domain.Pagination{}, want: domain.Pagination{Page: 1, PageSize: 50}},
		{name: "negative", in: domain.Pagination{Page: -2, PageSize: -1}, want: domain.Pagination{Page: 1, PageSize: 50}},
		{name: "explicit", in: domain.Pagination{Page: 3, PageSize: 10}, want: domain.Pagination{Page: 3, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      domain.SearchRequest
		wantErr  bool
		wantSort *domain.Sort
	}{
		{name: "empty request", req: domain.SearchRequest{}},
		{
			name:     "sort order defaults to asc",
			req:      domain.SearchRequest{Sort: &domain.Sort{Field: domain.SortByName}},
			wantSort: &domain.Sort{Field: domain.SortByName, Order: domain.SortAsc},
		},
		{
			name:     "desc kept",
			req:      domain.SearchRequest{Sort: &domain.Sort{Field: domain.SortByBatch, Order: domain.SortDesc}},
			wantSort: &domain.Sort{Field: domain.SortByBatch, Order: domain.SortDesc},
		},
		{name: "empty sort dropped", req: domain.SearchRequest{Sort: &domain.Sort{}}},
		{name: "unknown sort field", req: domain.SearchRequest{Sort: &domain.Sort{Field: "revenue"}}, wantErr: true},
		{name: "unknown order", req: domain.SearchRequest{Sort: &domain.Sort{Field: domain.SortByName, Order: "up"}}, wantErr: true},
		{name: "order without field", req: domain.SearchRequest{Sort: &domain.Sort{Order: domain.SortDesc}}, wantErr: true},
		{name: "page size over max", req: domain.SearchRequest{Pagination: domain.Pagination{PageSize: 501}}, wantErr: true},
		{
			name:    "negative team size",
			req:     domain.SearchRequest{Filters: domain.Filters{MinTeamSize: domain.Ptr(-1)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.req
			err := req.Validate(domain.DefaultLimits())
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidParams)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Pagination{Page: 1, PageSize: 50}, req.Pagination)
			assert.Equal(t, tt.wantSort, req.Sort)
		})
	}
}

func TestSearchRequest_Validate_ConfiguredDefaultPageSize(t *testing.T) {
	t.Parallel()

	req := domain.SearchRequest{}
	require.NoError(t, req.Validate(domain.Limits{DefaultPageSize: 20, MaxPageSize: 100}))
	assert.Equal(t, 20, req.Pagination.PageSize)
}

func TestFieldRequest_Validate(t *testing.T) {
	t.Parallel()

	ok := domain.FieldRequest{Field: domain.FieldBatch, Value: "W21"}
	require.NoError(t, ok.Validate(domain.DefaultLimits()))
	assert.Equal(t, 1, ok.Pagination.Page)

	blank := domain.FieldRequest{Field: domain.FieldTag, Value: "  "}
	require.ErrorIs(t, blank.Validate(domain.DefaultLimits()), domain.ErrInvalidParams)

	unknown := domain.FieldRequest{Field: "city", Value: "Paris"}
	require.ErrorIs(t, unknown.Validate(domain.DefaultLimits()), domain.ErrInvalidParams)
}

func TestFlagRequest_Validate(t *testing.T) {
	t.Parallel()

	for _, flag := range []domain.FlagKind{domain.FlagHiring, domain.FlagTop, domain.FlagAll} {
		req := domain.FlagRequest{Flag: flag}
		require.NoError(t, req.Validate(domain.DefaultLimits()))
	}

	bad := domain.FlagRequest{Flag: "remote"}
	require.ErrorIs(t, bad.Validate(domain.DefaultLimits()), domain.ErrInvalidParams)
}

func TestCompanyIDRequest_ParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "999", want: 999},
		{raw: " 42 ", want: 42},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			req := domain.CompanyIDRequest{ID: tt.raw}
			id, err := req.ParseID()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidParams)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestCompanyList_TotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, domain.CompanyList{Total: 0, PageSize: 50}.TotalPages())
	assert.Equal(t, 1, domain.CompanyList{Total: 50, PageSize: 50}.TotalPages())
	assert.Equal(t, 3, domain.CompanyList{Total: 101, PageSize: 50}.TotalPages())
}
