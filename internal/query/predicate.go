package query

import (
	"strings"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

// A string field holding "" is treated like a missing one, and so are a
// team_size or launched_at of 0: none of them count as reported.

func hasString(p *string) bool { return p != nil && *p != "" }

func hasTeamSize(c *domain.Company) bool { return c.TeamSize != nil && *c.TeamSize != 0 }

func hasLaunchedAt(c *domain.Company) bool { return c.LaunchedAt != nil && *c.LaunchedAt != 0 }

func containsFold(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}

func anyEqualFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func anyContainsFold(values []string, lowerSub string) bool {
	for _, v := range values {
		if containsFold(v, lowerSub) {
			return true
		}
	}
	return false
}

// MatchesText reports whether q occurs, case-insensitively, in the name,
// one-liner, long description, website, locations, any tag or any industry.
// An empty q matches every record.
func MatchesText(c *domain.Company, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)

	if containsFold(c.Name, q) {
		return true
	}
	for _, field := range []*string{c.OneLiner, c.LongDescription, c.Website, c.AllLocations} {
		if field != nil && containsFold(*field, q) {
			return true
		}
	}
	return anyContainsFold(c.Tags, q) || anyContainsFold(c.Industries, q)
}

// MatchesFilters reports whether c satisfies every predicate present in f.
//
// String and numeric predicates pass when the record does not carry the
// field. Boolean predicates compare against false when the record field is
// missing.
func MatchesFilters(c *domain.Company, f *domain.Filters) bool {
	if f == nil {
		return true
	}

	if hasString(f.Industry) && !matchesIndustryFilter(c, *f.Industry) {
		return false
	}
	if !matchesOptionalExact(c.Stage, f.Stage) ||
		!matchesOptionalExact(c.Status, f.Status) ||
		!matchesOptionalExact(c.Batch, f.Batch) {
		return false
	}

	if hasTeamSize(c) {
		size := *c.TeamSize
		if f.MinTeamSize != nil && size < *f.MinTeamSize {
			return false
		}
		if f.MaxTeamSize != nil && size > *f.MaxTeamSize {
			return false
		}
	}

	if len(f.Tags) > 0 && !matchesAnyTag(c.Tags, f.Tags) {
		return false
	}
	if len(f.Regions) > 0 && !matchesAnyRegion(c, f.Regions) {
		return false
	}

	if f.IsHiring != nil && c.Hiring() != *f.IsHiring {
		return false
	}
	if f.TopCompany != nil && c.Top() != *f.TopCompany {
		return false
	}
	if f.Nonprofit != nil && c.NonprofitOrg() != *f.Nonprofit {
		return false
	}

	if hasLaunchedAt(c) {
		launched := *c.LaunchedAt
		if f.LaunchedAfter != nil && launched < *f.LaunchedAfter {
			return false
		}
		if f.LaunchedBefore != nil && launched > *f.LaunchedBefore {
			return false
		}
	}

	return true
}

func matchesIndustryFilter(c *domain.Company, want string) bool {
	if !hasString(c.Industry) && len(c.Industries) == 0 {
		return true
	}
	return matchesIndustry(c, want)
}

func matchesIndustry(c *domain.Company, want string) bool {
	if hasString(c.Industry) && strings.EqualFold(*c.Industry, want) {
		return true
	}
	return anyEqualFold(c.Industries, want)
}

// matchesOptionalExact passes when either side is missing.
func matchesOptionalExact(field, want *string) bool {
	if !hasString(want) || !hasString(field) {
		return true
	}
	return strings.EqualFold(*field, *want)
}

func matchesAnyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		if anyEqualFold(tags, w) {
			return true
		}
	}
	return false
}

func matchesAnyRegion(c *domain.Company, wanted []string) bool {
	for _, w := range wanted {
		if matchesRegion(c, w) {
			return true
		}
	}
	return false
}

func matchesRegion(c *domain.Company, region string) bool {
	region = strings.ToLower(region)
	if c.AllLocations != nil && containsFold(*c.AllLocations, region) {
		return true
	}
	return anyContainsFold(c.Regions, region)
}

// MatchesField is the predicate behind the by-field listings. Unlike
// MatchesFilters, a record without the field never matches.
func MatchesField(c *domain.Company, kind domain.FieldKind, value string) bool {
	switch kind {
	case domain.FieldBatch:
		return hasString(c.Batch) && strings.EqualFold(*c.Batch, value)
	case domain.FieldStatus:
		return hasString(c.Status) && strings.EqualFold(*c.Status, value)
	case domain.FieldStage:
		return hasString(c.Stage) && strings.EqualFold(*c.Stage, value)
	case domain.FieldIndustry:
		return matchesIndustry(c, value)
	case domain.FieldRegion:
		return matchesRegion(c, value)
	case domain.FieldTag:
		return anyEqualFold(c.Tags, value) || anyEqualFold(c.TagsHighlighted, value)
	default:
		return false
	}
}

// MatchesFlag is the predicate behind the hiring, top and all listings.
func MatchesFlag(c *domain.Company, flag domain.FlagKind) bool {
	switch flag {
	case domain.FlagHiring:
		return c.Hiring()
	case domain.FlagTop:
		return c.Top()
	case domain.FlagAll:
		return true
	default:
		return false
	}
}
