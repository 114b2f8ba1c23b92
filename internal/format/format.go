// Package format renders companies, result pages and statistics as markdown
// for clients that prefer prose over JSON.
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

// Company renders the short summary used in lists.
func Company(c *domain.Company) string {
	lines := []string{"**" + c.Name + "**"}
	add := func(cond bool, line string) {
		if cond {
			lines = append(lines, line)
		}
	}

	add(nonEmpty(c.OneLiner), "*"+domain.StringValue(c.OneLiner)+"*")
	add(nonEmpty(c.Website), "Website: "+domain.StringValue(c.Website))
	add(nonEmpty(c.AllLocations), "Location: "+domain.StringValue(c.AllLocations))
	add(nonEmpty(c.Industry), "Industry: "+domain.StringValue(c.Industry))
	add(nonEmpty(c.Stage), "Stage: "+domain.StringValue(c.Stage))
	add(nonEmpty(c.Status), "Status: "+domain.StringValue(c.Status))
	add(nonEmpty(c.Batch), "YC Batch: "+domain.StringValue(c.Batch))
	add(domain.IntValue(c.TeamSize) != 0, "Team Size: "+strconv.Itoa(domain.IntValue(c.TeamSize)))
	add(len(c.Tags) > 0, "Tags: "+strings.Join(c.Tags, ", "))
	add(c.Hiring(), "🟢 **Currently Hiring**")
	add(c.Top(), "⭐ **Top Company**")
	add(c.NonprofitOrg(), "🏛️ **Nonprofit**")

	return strings.Join(lines, "\n")
}

// CompanyDetail renders a single company with every descriptive field.
func CompanyDetail(c *domain.Company) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if nonEmpty(c.OneLiner) {
		fmt.Fprintf(&b, "*%s*\n\n", *c.OneLiner)
	}
	if nonEmpty(c.LongDescription) {
		fmt.Fprintf(&b, "%s\n\n", *c.LongDescription)
	}

	fmt.Fprintf(&b, "- ID: %d\n", c.ID)
	if c.Slug != "" {
		fmt.Fprintf(&b, "- Slug: %s\n", c.Slug)
	}
	if len(c.FormerNames) > 0 {
		fmt.Fprintf(&b, "- Former names: %s\n", strings.Join(c.FormerNames, ", "))
	}
	if c.LaunchedAt != nil && *c.LaunchedAt > 0 {
		fmt.Fprintf(&b, "- Launched: %s\n", time.Unix(*c.LaunchedAt, 0).UTC().Format("2006-01-02"))
	}
	if nonEmpty(c.Subindustry) {
		fmt.Fprintf(&b, "- Subindustry: %s\n", *c.Subindustry)
	}
	if len(c.Industries) > 0 {
		fmt.Fprintf(&b, "- Industries: %s\n", strings.Join(c.Industries, ", "))
	}
	if len(c.Regions) > 0 {
		fmt.Fprintf(&b, "- Regions: %s\n", strings.Join(c.Regions, ", "))
	}

	b.WriteString("\n")
	b.WriteString(Company(c))
	return b.String()
}

// CompanyList renders a numbered page of companies under title.
func CompanyList(list domain.CompanyList, title string) string {
	if len(list.Companies) == 0 {
		return "No companies found for: " + title
	}

	offset := 0
	if list.Page > 1 {
		offset = (list.Page - 1) * list.PageSize
	}

	entries := make([]string, 0, len(list.Companies))
	for i := range list.Companies {
		entries = append(entries, fmt.Sprintf("%d. %s", offset+i+1, Company(&list.Companies[i])))
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(entries, "\n\n"))
	fmt.Fprintf(&b, "\n\n---\nPage %d of %d | Total: %d companies", list.Page, list.TotalPages(), list.Total)
	if list.HasMore {
		b.WriteString("\n*Use pagination to see more results*")
	}
	return b.String()
}

// Stats renders the summary counters followed by one table per grouping.
func Stats(s domain.Stats, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)

	summary := table.NewWriter()
	summary.AppendHeader(table.Row{"Metric", "Value"})
	summary.AppendRows([]table.Row{
		{"Total companies", s.TotalCompanies},
		{"Average team size", s.AverageTeamSize},
		{"Hiring", s.HiringCompanies},
		{"Top companies", s.TopCompanies},
		{"Public", s.PublicCompanies},
		{"Acquired", s.AcquiredCompanies},
	})
	b.WriteString(summary.RenderMarkdown())

	for _, group := range []struct {
		name   string
		counts map[string]int
	}{
		{"Status", s.ByStatus},
		{"Industry", s.ByIndustry},
		{"Stage", s.ByStage},
		{"Batch", s.ByBatch},
	} {
		if len(group.counts) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n\n## By %s\n\n", strings.ToLower(group.name))
		t := table.NewWriter()
		t.AppendHeader(table.Row{group.name, "Companies"})
		for _, bucket := range SortedCounts(group.counts) {
			t.AppendRow(table.Row{bucket.Key, bucket.Count})
		}
		b.WriteString(t.RenderMarkdown())
	}

	return b.String()
}

// Bucket is one entry of a grouping table.
type Bucket struct {
	Key   string
	Count int
}

// SortedCounts orders counts by descending count, then key.
func SortedCounts(counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for k, v := range counts {
		out = append(out, Bucket{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func nonEmpty(p *string) bool {
	return p != nil && *p != ""
}
