// Package sim orchestrates a full generation run: one organization's teams,
// users, projects and work items, built stage by stage and bulk-inserted into
// the store. Stages run in dependency order and any stage error aborts the
// run; a finished database is always a complete, referentially consistent
// snapshot.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"worksim/internal/company"
	"worksim/internal/config"
	"worksim/internal/dist"
	"worksim/internal/domain"
	"worksim/internal/factory"
	"worksim/internal/llm"
	"worksim/internal/namegen"
	"worksim/internal/store"
	"worksim/internal/timegen"
)

type Generator struct {
	cfg       *config.Config
	rng       *rand.Rand
	store     store.Store
	llm       *llm.Client
	factory   *factory.Factory
	companies *company.Provider
	names     *namegen.Generator
	seed      int64
	log       zerolog.Logger
}

// Summary reports what a run produced.
type Summary struct {
	Counts  map[string]int
	Elapsed time.Duration
	LLM     llm.Stats
	Seed    int64
}

// New wires a generator from config. A zero seed is replaced with the current
// time so unseeded runs differ; the effective seed is reported in the summary.
func New(cfg *config.Config, st store.Store, llmClient *llm.Client, log zerolog.Logger) (*Generator, error) {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	buckets := make([]dist.Bucket, len(cfg.DueDateBuckets))
	for i, b := range cfg.DueDateBuckets {
		buckets[i] = dist.Bucket{Name: b.Name, Prob: b.Weight}
	}
	clock, err := timegen.New(rng, timegen.Config{
		Start:            cfg.StartDate(),
		End:              cfg.EndDate(),
		WeekdayBias:      cfg.Time.WeekdayBias,
		WeekendAvoidance: cfg.Time.WeekendAvoidance,
		SprintDays:       cfg.Time.SprintDays,
		Buckets:          buckets,
	})
	if err != nil {
		return nil, fmt.Errorf("temporal engine: %w", err)
	}

	return &Generator{
		cfg:       cfg,
		rng:       rng,
		store:     st,
		llm:       llmClient,
		factory:   factory.New(cfg, rng, clock, log),
		companies: company.New(rng, log),
		names:     namegen.New(rng),
		seed:      seed,
		log:       log,
	}, nil
}

// Run executes every generation stage and returns the run summary.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	summary := &Summary{Counts: make(map[string]int), Seed: g.seed}

	org := g.factory.Organization(g.companies.Pick(ctx))
	g.log.Info().Str("name", org.Name).Str("domain", org.Domain).Msg("organization")
	if err := g.insert(ctx, summary, domain.CollectionOrganizations, records([]domain.Organization{org})); err != nil {
		return nil, err
	}

	teams := g.factory.Teams(org.OrganizationID)
	if err := g.insert(ctx, summary, domain.CollectionTeams, records(teams)); err != nil {
		return nil, err
	}

	people := g.names.Generate(g.cfg.Simulation.Employees, org.Domain)
	users, err := g.factory.Users(org.OrganizationID, people)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	if err := g.insert(ctx, summary, domain.CollectionUsers, records(users)); err != nil {
		return nil, err
	}

	memberships, err := g.factory.Memberships(teams, users)
	if err != nil {
		return nil, fmt.Errorf("memberships: %w", err)
	}
	if err := g.insert(ctx, summary, domain.CollectionTeamMemberships, records(memberships)); err != nil {
		return nil, err
	}
	membersByTeam := make(map[string][]string)
	for _, m := range memberships {
		membersByTeam[m.TeamID] = append(membersByTeam[m.TeamID], m.UserID)
	}

	defs, enumOptions := g.factory.CustomFields(org.OrganizationID)
	if err := g.insert(ctx, summary, domain.CollectionCustomFieldDefinitions, records(defs)); err != nil {
		return nil, err
	}
	if err := g.insert(ctx, summary, domain.CollectionCustomFieldEnumOptions, records(enumOptions)); err != nil {
		return nil, err
	}

	tags := g.factory.Tags(org.OrganizationID)
	if err := g.insert(ctx, summary, domain.CollectionTags, records(tags)); err != nil {
		return nil, err
	}

	var projects []domain.Project
	var sections []domain.Section
	sectionsByProject := make(map[string][]domain.Section)
	for _, team := range teams {
		memberIDs := membersByTeam[team.TeamID]
		if len(memberIDs) == 0 {
			continue
		}
		teamProjects, err := g.factory.Projects(org, team, memberIDs)
		if err != nil {
			return nil, fmt.Errorf("projects for team %s: %w", team.Name, err)
		}
		for _, p := range teamProjects {
			s := g.factory.Sections(p)
			sections = append(sections, s...)
			sectionsByProject[p.ProjectID] = s
		}
		projects = append(projects, teamProjects...)
	}
	g.describeProjects(ctx, projects, teams)
	if err := g.insert(ctx, summary, domain.CollectionProjects, records(projects)); err != nil {
		return nil, err
	}
	if err := g.insert(ctx, summary, domain.CollectionSections, records(sections)); err != nil {
		return nil, err
	}

	teamByID := make(map[string]domain.Team, len(teams))
	for _, t := range teams {
		teamByID[t.TeamID] = t
	}
	var tasks []domain.Task
	for _, p := range projects {
		projectTasks, err := g.factory.Tasks(p, sectionsByProject[p.ProjectID], membersByTeam[p.TeamID])
		if err != nil {
			return nil, fmt.Errorf("tasks for project %s: %w", p.Name, err)
		}
		tasks = append(tasks, projectTasks...)
	}
	g.log.Info().Int("count", len(tasks)).Msg("top-level tasks built")

	tasks = append(tasks, g.factory.Subtasks(tasks)...)
	tasks = factory.BackfillSubtaskCounts(tasks)

	comments := g.factory.Comments(tasks)
	tasks = factory.BackfillCommentCounts(tasks, comments)

	// Tasks are written once, after both backfill passes.
	if err := g.insert(ctx, summary, domain.CollectionTasks, records(tasks)); err != nil {
		return nil, err
	}
	if err := g.insert(ctx, summary, domain.CollectionComments, records(comments)); err != nil {
		return nil, err
	}

	values := g.factory.FieldValues(tasks, defs, enumOptions)
	if err := g.insert(ctx, summary, domain.CollectionCustomFieldValues, records(values)); err != nil {
		return nil, err
	}

	taskTags, err := g.factory.TaskTags(tasks, tags)
	if err != nil {
		return nil, fmt.Errorf("task tags: %w", err)
	}
	if err := g.insert(ctx, summary, domain.CollectionTaskTags, records(taskTags)); err != nil {
		return nil, err
	}

	attachments := g.factory.Attachments(tasks)
	if err := g.insert(ctx, summary, domain.CollectionAttachments, records(attachments)); err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(started)
	summary.LLM = g.llm.Stats()
	g.log.Info().Dur("elapsed", summary.Elapsed).Msg("generation complete")
	return summary, nil
}

// describeProjects fills project descriptions through the completion client.
// Disabled clients return placeholders, so descriptions are always populated.
func (g *Generator) describeProjects(ctx context.Context, projects []domain.Project, teams []domain.Team) {
	if len(projects) == 0 {
		return
	}
	teamName := make(map[string]string, len(teams))
	for _, t := range teams {
		teamName[t.TeamID] = t.Name
	}
	prompts := make([]string, len(projects))
	for i, p := range projects {
		prompts[i] = fmt.Sprintf(
			"Write a concise two-sentence description for a %s project named %q run by the %s team.",
			p.ProjectType, p.Name, teamName[p.TeamID],
		)
	}
	system := "You write realistic internal project descriptions for a project management tool. Plain prose, no headings."
	descriptions := g.llm.CompleteBatch(ctx, prompts, g.cfg.LLM.MaxTokens, g.cfg.LLM.Temperature, system)
	for i := range projects {
		projects[i].Description = descriptions[i]
	}
}

type recorder interface {
	Record() map[string]any
}

func records[T recorder](items []T) []map[string]any {
	out := make([]map[string]any, len(items))
	for i, item := range items {
		out[i] = item.Record()
	}
	return out
}

func (g *Generator) insert(ctx context.Context, summary *Summary, collection string, recs []map[string]any) error {
	if err := g.store.BulkInsert(ctx, collection, domain.Columns(collection), recs); err != nil {
		return fmt.Errorf("persist %s: %w", collection, err)
	}
	summary.Counts[collection] = len(recs)
	g.log.Info().Str("collection", collection).Int("count", len(recs)).Msg("persisted")
	return nil
}
