// Package factory constructs simulation entities by composing the sampling
// primitives and the temporal engine under structural rules: hierarchy,
// ownership and team membership. Entities are built exactly once; the only
// post-construction writes are the two documented backfill passes over
// aggregate counts.
package factory

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"worksim/internal/company"
	"worksim/internal/config"
	"worksim/internal/dist"
	"worksim/internal/domain"
	"worksim/internal/namegen"
	"worksim/internal/projectname"
	"worksim/internal/timegen"
)

type Factory struct {
	cfg   *config.Config
	rng   *rand.Rand
	clock *timegen.Engine
	names *projectname.Generator
	log   zerolog.Logger
}

func New(cfg *config.Config, rng *rand.Rand, clock *timegen.Engine, log zerolog.Logger) *Factory {
	return &Factory{
		cfg:   cfg,
		rng:   rng,
		clock: clock,
		names: projectname.New(rng),
		log:   log,
	}
}

// Organization builds the root workspace entity. The company predates the
// simulated window by a year.
func (f *Factory) Organization(c company.Company) domain.Organization {
	return domain.Organization{
		OrganizationID: domain.NewID(),
		Name:           c.Name,
		Domain:         c.Domain,
		IsOrganization: true,
		CreatedAt:      f.cfg.StartDate().AddDate(0, 0, -365),
	}
}

// Teams sizes each department as employees*share and splits it into teams of
// the department's average size. Team name suffixes come from the
// department's identifier pool, then fall back to a numbered suffix.
func (f *Factory) Teams(orgID string) []domain.Team {
	var teams []domain.Team
	for _, dept := range f.cfg.Departments {
		alloc := int(float64(f.cfg.Simulation.Employees) * dept.Share)
		if alloc == 0 {
			continue
		}
		avgSize := float64(dept.TeamSize.Min+dept.TeamSize.Max) / 2
		numTeams := int(float64(alloc) / avgSize)
		if numTeams < 1 {
			numTeams = 1
		}
		for i := 0; i < numTeams; i++ {
			name := dept.Name
			if numTeams > 1 {
				if i < len(dept.Identifiers) {
					name = dept.Name + " - " + dept.Identifiers[i]
				} else {
					name = dept.Name + " - Team " + itoa(i+1)
				}
			}
			teams = append(teams, domain.Team{
				TeamID:         domain.NewID(),
				OrganizationID: orgID,
				Name:           name,
				Description:    dept.Description,
				TeamType:       dept.Name,
				CreatedAt:      f.cfg.StartDate().AddDate(0, 0, -dist.UniformInt(f.rng, 30, 365)),
			})
		}
	}
	return teams
}

// Users builds one user per generated person, assigning role, department and
// job title by the configured distributions.
func (f *Factory) Users(orgID string, people []namegen.Person) ([]domain.User, error) {
	roleNames := make([]string, len(f.cfg.UserRoles))
	roleWeights := make([]float64, len(f.cfg.UserRoles))
	for i, w := range f.cfg.UserRoles {
		roleNames[i] = w.Name
		roleWeights[i] = w.Weight
	}
	deptNames := make([]string, len(f.cfg.Departments))
	deptWeights := make([]float64, len(f.cfg.Departments))
	for i, d := range f.cfg.Departments {
		deptNames[i] = d.Name
		deptWeights[i] = d.Share
	}

	users := make([]domain.User, 0, len(people))
	for _, person := range people {
		role, err := dist.WeightedPick(f.rng, roleNames, roleWeights)
		if err != nil {
			return nil, err
		}
		deptName, err := dist.WeightedPick(f.rng, deptNames, deptWeights)
		if err != nil {
			return nil, err
		}
		title := "Team Member"
		if dept := f.cfg.Department(deptName); dept != nil && len(dept.JobTitles) > 0 {
			title = dept.JobTitles[f.rng.Intn(len(dept.JobTitles))]
		}

		// Most users were active within the last week; 5 percent have been
		// idle for a month or more.
		var lastActive time.Time
		if f.rng.Float64() < 0.95 {
			lastActive = f.cfg.EndDate().
				AddDate(0, 0, -dist.UniformInt(f.rng, 0, 7)).
				Add(-time.Duration(dist.UniformInt(f.rng, 0, 23)) * time.Hour)
		} else {
			lastActive = f.cfg.EndDate().AddDate(0, 0, -dist.UniformInt(f.rng, 30, 180))
		}

		users = append(users, domain.User{
			UserID:         domain.NewID(),
			OrganizationID: orgID,
			Email:          person.Email,
			FirstName:      person.FirstName,
			LastName:       person.LastName,
			Role:           role,
			JobTitle:       title,
			Department:     deptName,
			IsActive:       true,
			CreatedAt:      f.cfg.StartDate().AddDate(0, 0, -dist.UniformInt(f.rng, 1, 365)),
			LastActiveAt:   &lastActive,
		})
	}
	return users, nil
}

// Memberships partitions each department's user pool across that
// department's teams without replacement. Teams later in iteration order draw
// from a shrunken pool; that size variance is accepted, not corrected. One
// member per team is flagged lead.
func (f *Factory) Memberships(teams []domain.Team, users []domain.User) ([]domain.TeamMembership, error) {
	pools := make(map[string][]domain.User)
	for _, u := range users {
		pools[u.Department] = append(pools[u.Department], u)
	}

	var memberships []domain.TeamMembership
	for _, team := range teams {
		pool := pools[team.TeamType]
		if len(pool) == 0 {
			continue
		}
		sizeMin, sizeMax := 5, 10
		if dept := f.cfg.Department(team.TeamType); dept != nil {
			sizeMin, sizeMax = dept.TeamSize.Min, dept.TeamSize.Max
		}
		target := dist.UniformInt(f.rng, sizeMin, sizeMax)
		if target > len(pool) {
			target = len(pool)
		}
		members, err := dist.Sample(f.rng, pool, target)
		if err != nil {
			return nil, err
		}

		taken := make(map[string]struct{}, len(members))
		for _, m := range members {
			taken[m.UserID] = struct{}{}
		}
		remaining := pool[:0]
		for _, u := range pool {
			if _, ok := taken[u.UserID]; !ok {
				remaining = append(remaining, u)
			}
		}
		pools[team.TeamType] = remaining

		lead := members[f.rng.Intn(len(members))]
		for _, m := range members {
			memberships = append(memberships, domain.TeamMembership{
				MembershipID: domain.NewID(),
				TeamID:       team.TeamID,
				UserID:       m.UserID,
				IsTeamLead:   m.UserID == lead.UserID,
				JoinedAt:     m.CreatedAt.AddDate(0, 0, dist.UniformInt(f.rng, 0, 30)),
			})
		}
	}
	return memberships, nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
