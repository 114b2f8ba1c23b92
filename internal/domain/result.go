package domain

// CompanyList is one page of a query result.
type CompanyList struct {
	Companies []Company `json:"companies"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PageSize  int       `json:"pageSize"`
	HasMore   bool      `json:"hasMore"`
}

// TotalPages returns the number of pages needed for Total at PageSize.
func (l CompanyList) TotalPages() int {
	if l.PageSize < 1 || l.Total == 0 {
		return 0
	}
	return (l.Total + l.PageSize - 1) / l.PageSize
}

// Stats summarizes a set of companies.
type Stats struct {
	TotalCompanies    int            `json:"totalCompanies"`
	ByStatus          map[string]int `json:"byStatus"`
	ByIndustry        map[string]int `json:"byIndustry"`
	ByStage           map[string]int `json:"byStage"`
	ByBatch           map[string]int `json:"byBatch"`
	AverageTeamSize   int            `json:"averageTeamSize"`
	HiringCompanies   int            `json:"hiringCompanies"`
	TopCompanies      int            `json:"topCompanies"`
	PublicCompanies   int            `json:"publicCompanies"`
	AcquiredCompanies int            `json:"acquiredCompanies"`
}
