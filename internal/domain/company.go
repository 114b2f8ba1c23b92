// Package domain holds the company record model and the typed query requests
// understood by the query engine.
package domain

import "encoding/json"

// Company is one record of the dataset. Optional fields are pointers or
// slices; nil means the source did not carry the field.
type Company struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	FormerNames []string `json:"former_names,omitempty"`

	SmallLogoThumbURL *string `json:"small_logo_thumb_url,omitempty"`
	Website           *string `json:"website,omitempty"`
	AllLocations      *string `json:"all_locations,omitempty"`
	LongDescription   *string `json:"long_description,omitempty"`
	OneLiner          *string `json:"one_liner,omitempty"`

	TeamSize   *int   `json:"team_size,omitempty"`
	LaunchedAt *int64 `json:"launched_at,omitempty"`

	Industry    *string  `json:"industry,omitempty"`
	Subindustry *string  `json:"subindustry,omitempty"`
	Industries  []string `json:"industries,omitempty"`
	Stage       *string  `json:"stage,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Batch       *string  `json:"batch,omitempty"`
	Regions     []string `json:"regions,omitempty"`

	Tags            []string `json:"tags,omitempty"`
	TagsHighlighted []string `json:"tags_highlighted,omitempty"`

	TopCompany *bool `json:"top_company,omitempty"`
	IsHiring   *bool `json:"isHiring,omitempty"`
	Nonprofit  *bool `json:"nonprofit,omitempty"`

	// Carried through to clients untouched.
	AppVideoPublic     *bool           `json:"app_video_public,omitempty"`
	DemoDayVideoPublic *bool           `json:"demo_day_video_public,omitempty"`
	QuestionAnswers    *bool           `json:"question_answers,omitempty"`
	AppAnswers         json.RawMessage `json:"app_answers,omitempty"`
	ObjectID           string          `json:"objectID,omitempty"`
	HighlightResult    json.RawMessage `json:"_highlightResult,omitempty"`
}

// Hiring reports the isHiring flag, false when absent.
func (c *Company) Hiring() bool { return BoolValue(c.IsHiring) }

// Top reports the top_company flag, false when absent.
func (c *Company) Top() bool { return BoolValue(c.TopCompany) }

// NonprofitOrg reports the nonprofit flag, false when absent.
func (c *Company) NonprofitOrg() bool { return BoolValue(c.Nonprofit) }

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IntValue dereferences p, returning 0 for nil.
func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Int64Value dereferences p, returning 0 for nil.
func Int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// BoolValue dereferences p, returning false for nil.
func BoolValue(p *bool) bool {
	return p != nil && *p
}
