package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/query"
)

var ptr = domain.Ptr[string]

func TestMatchesText(t *testing.T) {
	t.Parallel()

	c := domain.Company{
		Name:         "Stripe",
		OneLiner:     ptr("Payments infrastructure for the internet"),
		Website:      ptr("https://stripe.com"),
		AllLocations: ptr("San Francisco, CA, USA"),
		Tags:         []string{"Fintech", "API"},
		Industries:   []string{"Financial Technology"},
	}

	tests := []struct {
		q    string
		want bool
	}{
		{q: "", want: true},
		{q: "STRIPE", want: true},
		{q: "payments", want: true},
		{q: "stripe.com", want: true},
		{q: "francisco", want: true},
		{q: "fin", want: true},
		{q: "technology", want: true},
		{q: "crypto", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, query.MatchesText(&c, tt.q), "query %q", tt.q)
	}
}

func TestMatchesText_SkipsAbsentFields(t *testing.T) {
	t.Parallel()

	c := domain.Company{Name: "Bare"}
	assert.False(t, query.MatchesText(&c, "description"))
	assert.True(t, query.MatchesText(&c, "bar"))
}

func TestMatchesFilters_VacuousPass(t *testing.T) {
	t.Parallel()

	bare := domain.Company{Name: "Bare"}

	filters := map[string]domain.Filters{
		"industry":       {Industry: ptr("Fintech")},
		"stage":          {Stage: ptr("Growth")},
		"status":         {Status: ptr("Active")},
		"batch":          {Batch: ptr("W21")},
		"minTeamSize":    {MinTeamSize: domain.Ptr(10)},
		"maxTeamSize":    {MaxTeamSize: domain.Ptr(1)},
		"launchedAfter":  {LaunchedAfter: domain.Ptr[int64](1_600_000_000)},
		"launchedBefore": {LaunchedBefore: domain.Ptr[int64](1)},
	}

	for name, f := range filters {
		assert.True(t, query.MatchesFilters(&bare, &f), "%s should pass when the record lacks the field", name)
	}
}

func TestMatchesFilters_BooleanAbsentIsFalse(t *testing.T) {
	t.Parallel()

	bare := domain.Company{Name: "Bare"}

	assert.True(t, query.MatchesFilters(&bare, &domain.Filters{IsHiring: domain.Ptr(false)}))
	assert.False(t, query.MatchesFilters(&bare, &domain.Filters{IsHiring: domain.Ptr(true)}))
	assert.True(t, query.MatchesFilters(&bare, &domain.Filters{TopCompany: domain.Ptr(false)}))
	assert.False(t, query.MatchesFilters(&bare, &domain.Filters{TopCompany: domain.Ptr(true)}))
	assert.True(t, query.MatchesFilters(&bare, &domain.Filters{Nonprofit: domain.Ptr(false)}))
	assert.False(t, query.MatchesFilters(&bare, &domain.Filters{Nonprofit: domain.Ptr(true)}))
}

func TestMatchesFilters_Fields(t *testing.T) {
	t.Parallel()

	c := domain.Company{
		Name:         "Acme",
		Industry:     ptr("B2B"),
		Industries:   []string{"B2B", "Supply Chain"},
		Stage:        ptr("Growth"),
		Status:       ptr("Active"),
		Batch:        ptr("S20"),
		TeamSize:     domain.Ptr(25),
		Tags:         []string{"Logistics", "SaaS"},
		AllLocations: ptr("Berlin, Germany"),
		Regions:      []string{"Europe", "Remote"},
		IsHiring:     domain.Ptr(true),
		LaunchedAt:   domain.Ptr[int64](1_600_000_000),
	}

	tests := []struct {
		name string
		f    domain.Filters
		want bool
	}{
		{name: "industry primary", f: domain.Filters{Industry: ptr("b2b")}, want: true},
		{name: "industry list", f: domain.Filters{Industry: ptr("supply chain")}, want: true},
		{name: "industry substring rejected", f: domain.Filters{Industry: ptr("supply")}, want: false},
		{name: "stage", f: domain.Filters{Stage: ptr("GROWTH")}, want: true},
		{name: "stage mismatch", f: domain.Filters{Stage: ptr("Early")}, want: false},
		{name: "status mismatch", f: domain.Filters{Status: ptr("Acquired")}, want: false},
		{name: "batch", f: domain.Filters{Batch: ptr("s20")}, want: true},
		{name: "min bound inclusive", f: domain.Filters{MinTeamSize: domain.Ptr(25)}, want: true},
		{name: "max bound inclusive", f: domain.Filters{MaxTeamSize: domain.Ptr(25)}, want: true},
		{name: "min bound violated", f: domain.Filters{MinTeamSize: domain.Ptr(26)}, want: false},
		{name: "max bound violated", f: domain.Filters{MaxTeamSize: domain.Ptr(24)}, want: false},
		{name: "any tag", f: domain.Filters{Tags: []string{"hardware", "saas"}}, want: true},
		{name: "tag must be exact", f: domain.Filters{Tags: []string{"saa"}}, want: false},
		{name: "region in locations", f: domain.Filters{Regions: []string{"germany"}}, want: true},
		{name: "region substring of list", f: domain.Filters{Regions: []string{"euro"}}, want: true},
		{name: "region missing", f: domain.Filters{Regions: []string{"Canada"}}, want: false},
		{name: "hiring", f: domain.Filters{IsHiring: domain.Ptr(true)}, want: true},
		{name: "not hiring", f: domain.Filters{IsHiring: domain.Ptr(false)}, want: false},
		{name: "launched after inclusive", f: domain.Filters{LaunchedAfter: domain.Ptr[int64](1_600_000_000)}, want: true},
		{name: "launched after violated", f: domain.Filters{LaunchedAfter: domain.Ptr[int64](1_600_000_001)}, want: false},
		{name: "launched before violated", f: domain.Filters{LaunchedBefore: domain.Ptr[int64](1_599_999_999)}, want: false},
		{
			name: "all predicates AND-combined",
			f:    domain.Filters{Industry: ptr("B2B"), Tags: []string{"SaaS"}, MaxTeamSize: domain.Ptr(10)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, query.MatchesFilters(&c, &tt.f))
		})
	}
}

func TestMatchesFilters_TagsRequireRecordTags(t *testing.T) {
	t.Parallel()

	c := domain.Company{Name: "NoTags", TagsHighlighted: []string{"AI"}}
	assert.False(t, query.MatchesFilters(&c, &domain.Filters{Tags: []string{"AI"}}))
}

func TestMatchesField_NoVacuousPass(t *testing.T) {
	t.Parallel()

	bare := domain.Company{Name: "Bare"}
	for _, kind := range domain.FieldKinds {
		assert.False(t, query.MatchesField(&bare, kind, "anything"), "field %s", kind)
	}
}

func TestMatchesField(t *testing.T) {
	t.Parallel()

	c := domain.Company{
		Name:            "Acme",
		Batch:           ptr("W21"),
		Status:          ptr("Public"),
		Stage:           ptr("Growth"),
		Industry:        ptr("Fintech"),
		Industries:      []string{"Fintech", "Payments"},
		AllLocations:    ptr("Toronto, ON, Canada"),
		Tags:            []string{"Banking"},
		TagsHighlighted: []string{"Neobank"},
	}

	assert.True(t, query.MatchesField(&c, domain.FieldBatch, "w21"))
	assert.False(t, query.MatchesField(&c, domain.FieldBatch, "W2"))
	assert.True(t, query.MatchesField(&c, domain.FieldStatus, "public"))
	assert.True(t, query.MatchesField(&c, domain.FieldStage, "GROWTH"))
	assert.True(t, query.MatchesField(&c, domain.FieldIndustry, "payments"))
	assert.True(t, query.MatchesField(&c, domain.FieldIndustry, "fintech"))
	assert.True(t, query.MatchesField(&c, domain.FieldRegion, "canada"))
	assert.True(t, query.MatchesField(&c, domain.FieldTag, "banking"))
	assert.True(t, query.MatchesField(&c, domain.FieldTag, "NEOBANK"))
	assert.False(t, query.MatchesField(&c, domain.FieldTag, "bank"))
}
