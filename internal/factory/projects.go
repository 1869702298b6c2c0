package factory

import (
	"fmt"

	"worksim/internal/dist"
	"worksim/internal/domain"
	"worksim/internal/projectname"
)

// Projects builds the configured number of projects for one team. Project
// type follows the department's type distribution, the workflow archetype
// follows the department, and the owner is drawn uniformly from the team.
// Creation is capped at a trailing buffer before the horizon end so every
// project has room for task activity.
func (f *Factory) Projects(org domain.Organization, team domain.Team, memberIDs []string) ([]domain.Project, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	dept := f.cfg.Department(team.TeamType)
	if dept == nil {
		return nil, fmt.Errorf("team %s has unknown department %q", team.Name, team.TeamType)
	}
	typeNames := make([]string, len(dept.ProjectTypes))
	typeWeights := make([]float64, len(dept.ProjectTypes))
	for i, w := range dept.ProjectTypes {
		typeNames[i] = w.Name
		typeWeights[i] = w.Weight
	}
	statusNames := make([]string, len(f.cfg.Projects.StatusWeights))
	statusWeights := make([]float64, len(f.cfg.Projects.StatusWeights))
	for i, w := range f.cfg.Projects.StatusWeights {
		statusNames[i] = w.Name
		statusWeights[i] = w.Weight
	}
	archetype := projectname.ForDepartment(team.TeamType)

	count := dist.UniformInt(f.rng, f.cfg.Projects.PerTeam.Min, f.cfg.Projects.PerTeam.Max)
	latest := f.cfg.EndDate().AddDate(0, 0, -f.cfg.Projects.TrailingBufferDays)

	projects := make([]domain.Project, 0, count)
	for i := 0; i < count; i++ {
		ptype, err := dist.WeightedPick(f.rng, typeNames, typeWeights)
		if err != nil {
			return nil, err
		}
		status, err := dist.WeightedPick(f.rng, statusNames, statusWeights)
		if err != nil {
			return nil, err
		}
		created, err := f.clock.CreatedAt(f.cfg.StartDate(), latest)
		if err != nil {
			return nil, err
		}
		projects = append(projects, domain.Project{
			ProjectID:      domain.NewID(),
			OrganizationID: org.OrganizationID,
			TeamID:         team.TeamID,
			Name:           f.names.Project(archetype),
			ProjectType:    ptype,
			WorkflowType:   archetype.String(),
			Status:         status,
			OwnerID:        memberIDs[f.rng.Intn(len(memberIDs))],
			IsPublic:       true,
			Color:          fmt.Sprintf("#%06x", f.rng.Intn(0x1000000)),
			CreatedAt:      created,
		})
	}
	return projects, nil
}

// Sections instantiates the project's workflow section template in order.
// Sections exist from the moment the project does.
func (f *Factory) Sections(project domain.Project) []domain.Section {
	template := projectname.Parse(project.WorkflowType).SectionTemplate()
	sections := make([]domain.Section, 0, len(template))
	for i, name := range template {
		sections = append(sections, domain.Section{
			SectionID: domain.NewID(),
			ProjectID: project.ProjectID,
			Name:      name,
			Position:  i,
			CreatedAt: project.CreatedAt,
		})
	}
	return sections
}
