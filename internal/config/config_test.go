package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 7500, cfg.Simulation.Employees)
	require.Len(t, cfg.Departments, 8)

	var share float64
	for _, d := range cfg.Departments {
		share += d.Share
	}
	require.InDelta(t, 1.0, share, 0.01)

	require.Equal(t, cfg.EndDate().AddDate(0, 0, -cfg.Simulation.HorizonDays), cfg.StartDate())
	require.True(t, cfg.StartDate().Before(cfg.EndDate()))
}

func TestDueDateBucketOrder(t *testing.T) {
	cfg := Default()
	// bucket order is significant for cumulative selection
	want := []string{"within_1_week", "within_1_month", "within_3_months", "no_due_date", "overdue"}
	require.Len(t, cfg.DueDateBuckets, len(want))
	for i, b := range cfg.DueDateBuckets {
		require.Equal(t, want[i], b.Name)
	}
}

func TestDepartmentLookup(t *testing.T) {
	cfg := Default()
	eng := cfg.Department("Engineering")
	require.NotNil(t, eng)
	require.Equal(t, "Engineering", eng.Name)
	require.NotEmpty(t, eng.JobTitles)
	require.NotEmpty(t, eng.ProjectTypes)

	require.Nil(t, cfg.Department("Astrology"))
}

func TestCompletionRateFallback(t *testing.T) {
	cfg := Default()
	min, max := cfg.CompletionRate("nonexistent-type")
	require.Equal(t, 0.5, min)
	require.Equal(t, 0.6, max)

	min, max = cfg.CompletionRate("Sprint")
	require.Greater(t, max, min)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero employees", func(c *Config) { c.Simulation.Employees = 0 }},
		{"bad end date", func(c *Config) { c.Simulation.EndDate = "not-a-date" }},
		{"zero horizon", func(c *Config) { c.Simulation.HorizonDays = 0 }},
		{"no departments", func(c *Config) { c.Departments = nil }},
		{"shares not normalized", func(c *Config) { c.Departments[0].Share += 0.5 }},
		{"inverted team size", func(c *Config) { c.Departments[0].TeamSize = IntRange{Min: 10, Max: 5} }},
		{"no project types", func(c *Config) { c.Departments[0].ProjectTypes = nil }},
		{"no buckets", func(c *Config) { c.DueDateBuckets = nil }},
		{"negative bucket", func(c *Config) { c.DueDateBuckets[0].Weight = -0.1 }},
		{"rate out of range", func(c *Config) { c.Tasks.UnassignedRate = 1.5 }},
		{"inverted tasks per project", func(c *Config) { c.Tasks.PerProject = IntRange{Min: 40, Max: 15} }},
		{"bad completion rate", func(c *Config) { c.CompletionRates[0].Max = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("simulation: ["))
	require.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worksim.yml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultTemplate), 0o644))

	cfg, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, Default().Simulation.Employees, cfg.Simulation.Employees)

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, Default().Simulation.Employees, cfg.Simulation.Employees)
}
