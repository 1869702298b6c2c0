package sim

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"worksim/internal/config"
	"worksim/internal/db"
	"worksim/internal/domain"
	"worksim/internal/llm"
	"worksim/internal/migrate"
	"worksim/internal/store"
)

const testConfigYAML = `
simulation:
  employees: 15
  end_date: "2026-01-07"
  horizon_days: 90
  seed: 42
llm:
  model: test
  temperature: 0.7
  max_tokens: 200
  batch_delay_ms: 0
time:
  weekday_bias: 0.7
  weekend_avoidance: 0.85
  sprint_days: 14
  sprint_aligned_due_dates: false
departments:
  - name: Engineering
    share: 1.0
    team_size: {min: 5, max: 10}
    identifiers: [Platform, Core]
    job_titles: [Software Engineer, Senior Engineer]
    description: Builds the product
    project_types:
      - {name: Kanban, weight: 1.0}
user_roles:
  - {name: member, weight: 0.9}
  - {name: admin, weight: 0.1}
projects:
  per_team: {min: 1, max: 2}
  trailing_buffer_days: 30
  status_weights:
    - {name: active, weight: 1.0}
tasks:
  per_project: {min: 15, max: 40}
  unassigned_rate: 0.15
  like_rate: 0.3
completion_rates:
  - {name: Kanban, min: 0.6, max: 0.7}
due_date_buckets:
  - {name: within_1_week, weight: 0.25}
  - {name: within_1_month, weight: 0.40}
  - {name: within_3_months, weight: 0.20}
  - {name: no_due_date, weight: 0.10}
  - {name: overdue, weight: 0.05}
subtasks:
  rate: 0.30
  per_task: {min: 1, max: 5}
comments:
  rate: 0.45
  per_task: {min: 1, max: 8}
attachments:
  rate: 0.20
  types:
    - {mime: application/pdf, extensions: [pdf]}
task_tags:
  rate: 0.30
  per_task: {min: 1, max: 2}
custom_fields:
  priority_rate: 0.70
  effort_rate: 0.50
  fields:
    - name: Priority
      type: enum
      options: [High, Medium, Low]
    - name: Effort
      type: enum
      options: [S, M, L]
tags: [bug, feature, urgent]
workload:
  pareto_assignment: false
  top_fraction: 0.2
  top_mass: 0.8
`

func runGeneration(t *testing.T) (store.Store, *Summary) {
	t.Helper()
	cfg, err := config.FromYAML([]byte(testConfigYAML))
	require.NoError(t, err)

	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrate.Migrate(conn))

	st := store.Store{DB: conn}
	gen, err := New(cfg, st, llm.New(llm.Config{}, zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)

	summary, err := gen.Run(context.Background())
	require.NoError(t, err)
	return st, summary
}

func TestRunProducesCompleteSnapshot(t *testing.T) {
	st, summary := runGeneration(t)
	ctx := context.Background()

	require.Equal(t, int64(42), summary.Seed)
	require.Equal(t, 1, summary.Counts[domain.CollectionOrganizations])
	require.Equal(t, 15, summary.Counts[domain.CollectionUsers])
	require.Equal(t, 2, summary.Counts[domain.CollectionTeams])
	require.Positive(t, summary.Counts[domain.CollectionProjects])
	require.Positive(t, summary.Counts[domain.CollectionTasks])

	// Engineering workflow template has five sections per project
	require.Equal(t, summary.Counts[domain.CollectionProjects]*5,
		summary.Counts[domain.CollectionSections])

	// summary counts match what actually landed in the store
	for collection, want := range summary.Counts {
		n, err := st.Count(ctx, collection)
		require.NoError(t, err)
		require.Equal(t, want, n, collection)
	}
}

func TestRunTaskConsistency(t *testing.T) {
	st, _ := runGeneration(t)
	ctx := context.Background()

	rows, err := st.Query(ctx, `
		SELECT task_id, status, assignee_id, created_by, created_at, modified_at,
		       completed_at, completed_by, parent_task_id
		FROM tasks`)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	userRows, err := st.Query(ctx, `SELECT user_id FROM users`)
	require.NoError(t, err)
	users := map[any]struct{}{}
	for _, u := range userRows {
		users[u["user_id"]] = struct{}{}
	}

	unassigned := 0
	for _, row := range rows {
		_, ok := users[row["created_by"]]
		require.True(t, ok, "created_by must be a real user")
		if row["assignee_id"] == nil {
			unassigned++
		} else {
			_, ok = users[row["assignee_id"]]
			require.True(t, ok)
		}

		// RFC3339 UTC strings compare chronologically
		require.LessOrEqual(t, row["created_at"].(string), row["modified_at"].(string))

		switch row["status"] {
		case "complete":
			require.NotNil(t, row["completed_at"])
			require.NotNil(t, row["completed_by"])
		case "incomplete":
			require.Nil(t, row["completed_at"])
			require.Nil(t, row["completed_by"])
		default:
			t.Fatalf("unexpected status %v", row["status"])
		}
	}
	// 15% unassigned rate should stay well under half
	require.Less(t, float64(unassigned)/float64(len(rows)), 0.5)
}

func TestRunBackfilledCounts(t *testing.T) {
	st, _ := runGeneration(t)
	ctx := context.Background()

	rows, err := st.Query(ctx, `
		SELECT t.task_id,
		       t.num_subtasks,
		       t.num_comments,
		       (SELECT COUNT(*) FROM tasks c WHERE c.parent_task_id = t.task_id) AS actual_subtasks,
		       (SELECT COUNT(*) FROM comments cm WHERE cm.task_id = t.task_id) AS actual_comments
		FROM tasks t`)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	for _, row := range rows {
		require.Equal(t, row["actual_subtasks"], row["num_subtasks"], "task %v", row["task_id"])
		require.Equal(t, row["actual_comments"], row["num_comments"], "task %v", row["task_id"])
	}
}

func TestRunSubtaskDepth(t *testing.T) {
	st, _ := runGeneration(t)

	rows, err := st.Query(context.Background(), `
		SELECT COUNT(*) AS n
		FROM tasks c
		JOIN tasks p ON c.parent_task_id = p.task_id
		WHERE p.parent_task_id IS NOT NULL`)
	require.NoError(t, err)
	require.Equal(t, int64(0), rows[0]["n"])
}

func TestRunReferentialIntegrity(t *testing.T) {
	st, _ := runGeneration(t)
	ctx := context.Background()

	orphanChecks := map[string]string{
		"tasks without section": `
			SELECT COUNT(*) AS n FROM tasks t
			LEFT JOIN sections s ON t.section_id = s.section_id
			WHERE s.section_id IS NULL`,
		"comments without task": `
			SELECT COUNT(*) AS n FROM comments c
			LEFT JOIN tasks t ON c.task_id = t.task_id
			WHERE t.task_id IS NULL`,
		"memberships without user": `
			SELECT COUNT(*) AS n FROM team_memberships m
			LEFT JOIN users u ON m.user_id = u.user_id
			WHERE u.user_id IS NULL`,
		"task tags without tag": `
			SELECT COUNT(*) AS n FROM task_tags tt
			LEFT JOIN tags g ON tt.tag_id = g.tag_id
			WHERE g.tag_id IS NULL`,
		"values without option": `
			SELECT COUNT(*) AS n FROM custom_field_values v
			LEFT JOIN custom_field_enum_options o ON v.enum_option_id = o.option_id
			WHERE v.enum_option_id IS NOT NULL AND o.option_id IS NULL`,
	}
	for name, query := range orphanChecks {
		rows, err := st.Query(ctx, query)
		require.NoError(t, err)
		require.Equal(t, int64(0), rows[0]["n"], name)
	}
}

func TestRunProjectDescriptionsPopulated(t *testing.T) {
	st, _ := runGeneration(t)

	rows, err := st.Query(context.Background(), `SELECT description FROM projects`)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		// disabled completion client fills the marked placeholder
		require.Equal(t, llm.PlaceholderDisabled, row["description"])
	}
}
