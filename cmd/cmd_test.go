package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
)

const testDataset = `{"companies": [
  {"id": 531, "name": "DoorDash", "slug": "doordash", "industry": "Consumer", "status": "Public",
   "batch": "S13", "team_size": 8600, "isHiring": true, "top_company": true,
   "all_locations": "San Francisco, CA, USA", "one_liner": "Restaurant delivery.", "tags": ["Delivery"]},
  {"id": 1, "name": "Stripe", "slug": "stripe", "industry": "Fintech", "status": "Active",
   "batch": "S09", "team_size": 7000, "top_company": true, "tags": ["Fintech", "SaaS"]},
  {"id": 2, "name": "Tiny", "slug": "tiny", "industry": "B2B", "status": "Inactive", "team_size": 3}
]}`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yc.json")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	missingConfig := filepath.Join(t.TempDir(), "none.yml")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", missingConfig}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCmd_Table(t *testing.T) {
	t.Parallel()

	out, err := run(t, "search", "--data", writeDataset(t), "--industry", "fintech")
	require.NoError(t, err)
	assert.Contains(t, out, "Stripe")
	assert.NotContains(t, out, "DoorDash")
	assert.Contains(t, out, "Total: 1")
}

func TestSearchCmd_JSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, "search", "--data", writeDataset(t),
		"--min-team-size", "100", "--sort", "team_size", "--order", "desc", "--page-size", "1", "--json")
	require.NoError(t, err)

	var list domain.CompanyList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 2, list.Total)
	assert.True(t, list.HasMore)
	require.Len(t, list.Companies, 1)
	assert.Equal(t, "DoorDash", list.Companies[0].Name)
}

func TestSearchCmd_HiringFalse(t *testing.T) {
	t.Parallel()

	out, err := run(t, "search", "--data", writeDataset(t), "--hiring=false", "--json")
	require.NoError(t, err)

	var list domain.CompanyList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 2, list.Total)
}

func TestSearchCmd_InvalidSort(t *testing.T) {
	t.Parallel()

	_, err := run(t, "search", "--data", writeDataset(t), "--sort", "revenue")
	require.ErrorIs(t, err, domain.ErrInvalidParams)
}

func TestSearchCmd_MissingDatasetStillAnswers(t *testing.T) {
	t.Parallel()

	out, err := run(t, "search", "--data", filepath.Join(t.TempDir(), "missing.json"), "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"companies":[],"total":0,"page":1,"pageSize":50,"hasMore":false}`, out)
}

func TestStatsCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "stats", "--data", writeDataset(t), "--json")
	require.NoError(t, err)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.TotalCompanies)
	assert.Equal(t, 1, stats.PublicCompanies)
	assert.Equal(t, 5201, stats.AverageTeamSize)

	out, err = run(t, "stats", "--data", writeDataset(t))
	require.NoError(t, err)
	assert.Contains(t, out, "By industry")
}

func TestCompanyCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "company", "--data", writeDataset(t), "531")
	require.NoError(t, err)
	assert.Contains(t, out, "DoorDash")
	assert.Contains(t, out, "Restaurant delivery.")

	_, err = run(t, "company", "--data", writeDataset(t), "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, "company", "--data", writeDataset(t), "abc")
	require.ErrorIs(t, err, domain.ErrInvalidParams)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "yclists version")
}

func TestLoadConfig_DataFlag(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "none.yml")
	tests := []struct {
		data     string
		wantPath string
		wantURL  string
	}{
		{"companies.json", "companies.json", ""},
		{"https://example.com/yc.json", "", "https://example.com/yc.json"},
	}
	for _, tt := range tests {
		cfg, err := loadConfig(&globalFlags{configPath: missing, dataSource: tt.data, debug: true})
		require.NoError(t, err)
		assert.Equal(t, tt.wantPath, cfg.Dataset.Path)
		assert.Equal(t, tt.wantURL, cfg.Dataset.URL)
		assert.Equal(t, "debug", cfg.Logging.Level)
	}
}

func TestServeFlags_UseHTTP(t *testing.T) {
	t.Parallel()

	assert.False(t, (&serveFlags{}).useHTTP())
	assert.False(t, (&serveFlags{stdio: true}).useHTTP())
	assert.True(t, (&serveFlags{http: true}).useHTTP())
	assert.True(t, (&serveFlags{port: 8080}).useHTTP())
}
