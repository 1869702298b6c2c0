package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Weight is a named weight inside an ordered distribution. Order in the
// config file is significant for bucketed selection and must be preserved,
// which is why distributions are lists rather than maps.
type Weight struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type RateRange struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

type Department struct {
	Name        string   `yaml:"name"`
	Share       float64  `yaml:"share"`
	TeamSize    IntRange `yaml:"team_size"`
	Identifiers []string `yaml:"identifiers"`
	JobTitles   []string `yaml:"job_titles"`
	Description string   `yaml:"description"`
	// ProjectTypes is the per-department project type distribution.
	ProjectTypes []Weight `yaml:"project_types"`
}

type CustomFieldSpec struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Options []string `yaml:"options,omitempty"`
}

type AttachmentType struct {
	MIME       string   `yaml:"mime"`
	Extensions []string `yaml:"extensions"`
}

// Config models worksim.yml: every parameter the generation run consumes.
// The core packages receive values from here; nothing below cmd/ reads the
// environment.
type Config struct {
	Simulation struct {
		Employees   int    `yaml:"employees"`
		EndDate     string `yaml:"end_date"`
		HorizonDays int    `yaml:"horizon_days"`
		Seed        int64  `yaml:"seed"`
	} `yaml:"simulation"`

	LLM struct {
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
		BatchDelay  int     `yaml:"batch_delay_ms"`
	} `yaml:"llm"`

	Time struct {
		WeekdayBias           float64 `yaml:"weekday_bias"`
		WeekendAvoidance      float64 `yaml:"weekend_avoidance"`
		SprintDays            int     `yaml:"sprint_days"`
		SprintAlignedDueDates bool    `yaml:"sprint_aligned_due_dates"`
	} `yaml:"time"`

	Departments []Department `yaml:"departments"`

	UserRoles []Weight `yaml:"user_roles"`

	Projects struct {
		PerTeam            IntRange `yaml:"per_team"`
		TrailingBufferDays int      `yaml:"trailing_buffer_days"`
		StatusWeights      []Weight `yaml:"status_weights"`
	} `yaml:"projects"`

	Tasks struct {
		PerProject     IntRange `yaml:"per_project"`
		UnassignedRate float64  `yaml:"unassigned_rate"`
		LikeRate       float64  `yaml:"like_rate"`
	} `yaml:"tasks"`

	CompletionRates []RateRange `yaml:"completion_rates"`

	DueDateBuckets []Weight `yaml:"due_date_buckets"`

	Subtasks struct {
		Rate    float64  `yaml:"rate"`
		PerTask IntRange `yaml:"per_task"`
	} `yaml:"subtasks"`

	Comments struct {
		Rate    float64  `yaml:"rate"`
		PerTask IntRange `yaml:"per_task"`
	} `yaml:"comments"`

	Attachments struct {
		Rate  float64          `yaml:"rate"`
		Types []AttachmentType `yaml:"types"`
	} `yaml:"attachments"`

	TaskTags struct {
		Rate    float64  `yaml:"rate"`
		PerTask IntRange `yaml:"per_task"`
	} `yaml:"task_tags"`

	CustomFields struct {
		Fields       []CustomFieldSpec `yaml:"fields"`
		PriorityRate float64           `yaml:"priority_rate"`
		EffortRate   float64           `yaml:"effort_rate"`
	} `yaml:"custom_fields"`

	Tags []string `yaml:"tags"`

	Workload struct {
		ParetoAssignment bool    `yaml:"pareto_assignment"`
		TopFraction      float64 `yaml:"top_fraction"`
		TopMass          float64 `yaml:"top_mass"`
	} `yaml:"workload"`
}

// EndDate parses the configured horizon end.
func (c *Config) EndDate() time.Time {
	t, _ := time.Parse(dateLayout, c.Simulation.EndDate)
	return t
}

// StartDate is the horizon start, HorizonDays before the end.
func (c *Config) StartDate() time.Time {
	return c.EndDate().AddDate(0, 0, -c.Simulation.HorizonDays)
}

// Department returns the department config by name, nil if unknown.
func (c *Config) Department(name string) *Department {
	for i := range c.Departments {
		if c.Departments[i].Name == name {
			return &c.Departments[i]
		}
	}
	return nil
}

// CompletionRate returns the completion-rate range for a project type,
// defaulting to (0.5, 0.6) for unknown types.
func (c *Config) CompletionRate(projectType string) (float64, float64) {
	for _, r := range c.CompletionRates {
		if r.Name == projectType {
			return r.Min, r.Max
		}
	}
	return 0.5, 0.6
}

// Validate ensures the config can drive a run.
func (c *Config) Validate() error {
	if c.Simulation.Employees <= 0 {
		return fmt.Errorf("simulation.employees must be positive")
	}
	if c.Simulation.HorizonDays <= 0 {
		return fmt.Errorf("simulation.horizon_days must be positive")
	}
	if _, err := time.Parse(dateLayout, c.Simulation.EndDate); err != nil {
		return fmt.Errorf("simulation.end_date: %w", err)
	}
	if len(c.Departments) == 0 {
		return fmt.Errorf("departments is required")
	}
	var share float64
	for _, d := range c.Departments {
		if d.Name == "" {
			return fmt.Errorf("departments contains empty name")
		}
		if d.Share < 0 {
			return fmt.Errorf("department %s has negative share", d.Name)
		}
		if d.TeamSize.Min <= 0 || d.TeamSize.Max < d.TeamSize.Min {
			return fmt.Errorf("department %s has invalid team_size", d.Name)
		}
		if len(d.ProjectTypes) == 0 {
			return fmt.Errorf("department %s has no project_types", d.Name)
		}
		for _, w := range d.ProjectTypes {
			if w.Weight < 0 {
				return fmt.Errorf("department %s project type %s has negative weight", d.Name, w.Name)
			}
		}
		share += d.Share
	}
	if math.Abs(share-1.0) > 0.01 {
		return fmt.Errorf("department shares sum to %.3f, want 1.0", share)
	}
	if len(c.DueDateBuckets) == 0 {
		return fmt.Errorf("due_date_buckets is required")
	}
	for _, b := range c.DueDateBuckets {
		if b.Weight < 0 {
			return fmt.Errorf("due date bucket %s has negative probability", b.Name)
		}
	}
	for _, r := range c.CompletionRates {
		if r.Min < 0 || r.Max > 1 || r.Max < r.Min {
			return fmt.Errorf("completion rate for %s out of range", r.Name)
		}
	}
	if c.Tasks.PerProject.Min <= 0 || c.Tasks.PerProject.Max < c.Tasks.PerProject.Min {
		return fmt.Errorf("tasks.per_project range invalid")
	}
	if c.Projects.PerTeam.Min <= 0 || c.Projects.PerTeam.Max < c.Projects.PerTeam.Min {
		return fmt.Errorf("projects.per_team range invalid")
	}
	for _, rate := range []struct {
		name string
		v    float64
	}{
		{"tasks.unassigned_rate", c.Tasks.UnassignedRate},
		{"subtasks.rate", c.Subtasks.Rate},
		{"comments.rate", c.Comments.Rate},
		{"attachments.rate", c.Attachments.Rate},
		{"task_tags.rate", c.TaskTags.Rate},
		{"time.weekday_bias", c.Time.WeekdayBias},
		{"time.weekend_avoidance", c.Time.WeekendAvoidance},
	} {
		if rate.v < 0 || rate.v > 1 {
			return fmt.Errorf("%s must be in [0,1]", rate.name)
		}
	}
	return nil
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

// LoadOptional returns the default config if the file does not exist.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Default returns the built-in simulation parameters.
func Default() *Config {
	cfg, err := FromYAML([]byte(DefaultTemplate))
	if err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return cfg
}
