package query

import "github.com/mieltoinc/yclistdedalus/internal/domain"

// Status values counted separately in Stats. Compared case-sensitively.
const (
	statusPublic   = "Public"
	statusAcquired = "Acquired"
)

// summarize aggregates records matching f in a single pass.
func summarize(records []domain.Company, f *domain.Filters) domain.Stats {
	stats := domain.Stats{
		ByStatus:   map[string]int{},
		ByIndustry: map[string]int{},
		ByStage:    map[string]int{},
		ByBatch:    map[string]int{},
	}

	var teamSizeSum, teamSizeCount int
	for i := range records {
		c := &records[i]
		if !MatchesFilters(c, f) {
			continue
		}
		stats.TotalCompanies++

		countValue(stats.ByStatus, c.Status)
		countValue(stats.ByIndustry, c.Industry)
		countValue(stats.ByStage, c.Stage)
		countValue(stats.ByBatch, c.Batch)

		if hasTeamSize(c) {
			teamSizeSum += *c.TeamSize
			teamSizeCount++
		}

		if c.Hiring() {
			stats.HiringCompanies++
		}
		if c.Top() {
			stats.TopCompanies++
		}
		switch domain.StringValue(c.Status) {
		case statusPublic:
			stats.PublicCompanies++
		case statusAcquired:
			stats.AcquiredCompanies++
		}
	}

	stats.AverageTeamSize = roundedMean(teamSizeSum, teamSizeCount)
	return stats
}

func countValue(bucket map[string]int, value *string) {
	if hasString(value) {
		bucket[*value]++
	}
}

// roundedMean rounds half away from zero for non-negative sums. 0 when count is 0.
func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	if sum < 0 {
		return -roundedMean(-sum, count)
	}
	return (2*sum + count) / (2 * count)
}
