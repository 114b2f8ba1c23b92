package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/format"
)

const (
	oneLinerWidth = 60
	locationWidth = 30
	topBuckets    = 10
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.DrawBorder = true
	return t
}

func renderCompanyList(w io.Writer, list domain.CompanyList, title string) {
	if len(list.Companies) == 0 {
		fmt.Fprintln(w, "No companies found for: "+title)
		return
	}

	t := newTable(w)
	t.SetTitle(title)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "One-liner", WidthMax: oneLinerWidth},
		{Name: "Location", WidthMax: locationWidth},
		{Name: "Team", Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"#", "ID", "Name", "Batch", "Status", "Team", "Location", "One-liner"})

	offset := (list.Page - 1) * list.PageSize
	for i := range list.Companies {
		c := &list.Companies[i]
		t.AppendRow(table.Row{
			offset + i + 1,
			c.ID,
			c.Name,
			orNA(c.Batch),
			orNA(c.Status),
			teamSize(c.TeamSize),
			orNA(c.AllLocations),
			orNA(c.OneLiner),
		})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("Page %d of %d", list.Page, list.TotalPages()), "", "",
		fmt.Sprintf("Total: %d", list.Total)})
	t.Render()
	if list.HasMore {
		fmt.Fprintln(w, "Use --page to see more results")
	}
}

func renderCompany(w io.Writer, c *domain.Company) {
	t := newTable(w)
	t.SetTitle(c.Name)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 80}})

	t.AppendRow(table.Row{"ID", c.ID})
	t.AppendRow(table.Row{"Slug", c.Slug})
	t.AppendRow(table.Row{"One-liner", orNA(c.OneLiner)})
	t.AppendRow(table.Row{"Website", orNA(c.Website)})
	t.AppendRow(table.Row{"Location", orNA(c.AllLocations)})
	t.AppendRow(table.Row{"Batch", orNA(c.Batch)})
	t.AppendRow(table.Row{"Status", orNA(c.Status)})
	t.AppendRow(table.Row{"Stage", orNA(c.Stage)})
	t.AppendRow(table.Row{"Industry", orNA(c.Industry)})
	t.AppendRow(table.Row{"Industries", joinOrNA(c.Industries)})
	t.AppendRow(table.Row{"Regions", joinOrNA(c.Regions)})
	t.AppendRow(table.Row{"Tags", joinOrNA(c.Tags)})
	t.AppendRow(table.Row{"Team size", teamSize(c.TeamSize)})
	t.AppendRow(table.Row{"Launched", launched(c.LaunchedAt)})
	t.AppendRow(table.Row{"Hiring", yesNo(c.Hiring())})
	t.AppendRow(table.Row{"Top company", yesNo(c.Top())})
	t.AppendRow(table.Row{"Nonprofit", yesNo(c.NonprofitOrg())})
	t.Render()

	if desc := domain.StringValue(c.LongDescription); desc != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, desc)
	}
}

func renderStats(w io.Writer, s domain.Stats) {
	t := newTable(w)
	t.SetTitle("YC company statistics")
	t.AppendRows([]table.Row{
		{"Total companies", s.TotalCompanies},
		{"Average team size", s.AverageTeamSize},
		{"Hiring", s.HiringCompanies},
		{"Top companies", s.TopCompanies},
		{"Public", s.PublicCompanies},
		{"Acquired", s.AcquiredCompanies},
	})
	t.Render()

	renderBuckets(w, "By status", s.ByStatus)
	renderBuckets(w, "By industry", s.ByIndustry)
	renderBuckets(w, "By stage", s.ByStage)
	renderBuckets(w, "By batch", s.ByBatch)
}

// renderBuckets prints the largest groups; the rest are folded into one row.
func renderBuckets(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	t := newTable(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Value", "Companies"})

	buckets := format.SortedCounts(counts)
	other := 0
	for i, b := range buckets {
		if i >= topBuckets {
			other += b.Count
			continue
		}
		t.AppendRow(table.Row{b.Key, b.Count})
	}
	if other > 0 {
		t.AppendRow(table.Row{fmt.Sprintf("(%d more)", len(buckets)-topBuckets), other})
	}
	t.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func orNA(p *string) string {
	if p == nil || *p == "" {
		return "N/A"
	}
	return *p
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}

func teamSize(p *int) string {
	if p == nil || *p == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", *p)
}

func launched(p *int64) string {
	if p == nil || *p == 0 {
		return "N/A"
	}
	return time.Unix(*p, 0).UTC().Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
