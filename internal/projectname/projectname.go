// Package projectname generates project and task names from per-workflow
// template tables. Workflow archetypes are a closed enumeration; every
// dispatch is an exhaustive switch.
package projectname

import (
	"fmt"
	"math/rand"
	"strings"
)

// Archetype labels the workflow governing a project's section template and
// naming patterns.
type Archetype int

const (
	Engineering Archetype = iota
	Marketing
	Product
	Design
	Operations
	General
)

func (a Archetype) String() string {
	switch a {
	case Engineering:
		return "Engineering"
	case Marketing:
		return "Marketing"
	case Product:
		return "Product"
	case Design:
		return "Design"
	case Operations:
		return "Operations"
	default:
		return "General"
	}
}

// ForDepartment maps a department name to its workflow archetype. Departments
// without a dedicated template set (Sales, HR, Finance, Operations) run
// operations-style workflows.
func ForDepartment(department string) Archetype {
	switch department {
	case "Engineering":
		return Engineering
	case "Marketing":
		return Marketing
	case "Product":
		return Product
	case "Design":
		return Design
	default:
		return Operations
	}
}

// Parse maps an archetype's String form back to the enum. Unknown strings
// parse as General.
func Parse(s string) Archetype {
	switch s {
	case "Engineering":
		return Engineering
	case "Marketing":
		return Marketing
	case "Product":
		return Product
	case "Design":
		return Design
	case "Operations":
		return Operations
	default:
		return General
	}
}

// SectionTemplate returns the ordered section names for the archetype.
func (a Archetype) SectionTemplate() []string {
	switch a {
	case Engineering:
		return []string{"Backlog", "To Do", "In Progress", "In Review", "Done"}
	case Marketing:
		return []string{"Ideas", "Planning", "In Production", "Review", "Published"}
	case Product:
		return []string{"Discovery", "Prioritized", "In Development", "Testing", "Shipped"}
	case Design:
		return []string{"Backlog", "To Do", "In Progress", "Review", "Done"}
	case Operations:
		return []string{"New Requests", "In Progress", "Waiting", "Done"}
	default:
		return []string{"To Do", "In Progress", "Done"}
	}
}

// Generator fills naming templates with a seeded random source.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) pick(items []string) string {
	return items[g.rng.Intn(len(items))]
}

// Project returns a project name for the archetype.
func (g *Generator) Project(a Archetype) string {
	switch a {
	case Engineering:
		return g.engineeringProject()
	case Marketing:
		return g.marketingProject()
	case Product:
		return g.productProject()
	case Design:
		return g.designProject()
	case Operations, General:
		return g.operationsProject()
	default:
		return g.operationsProject()
	}
}

func (g *Generator) engineeringProject() string {
	pattern := g.pick(engineeringPatterns)
	return g.fill(pattern, map[string]func() string{
		"component": func() string { return g.pick(engineeringComponents) },
		"version":   func() string { return fmt.Sprintf("v%d.%d", 1+g.rng.Intn(5), g.rng.Intn(10)) },
		"work_type": func() string { return g.pick([]string{"Sprint", "Development", "Updates"}) },
		"quarter":   func() string { return g.pick(quarters) },
		"feature":   func() string { return g.pick(engineeringFeatures) },
		"system":    func() string { return g.pick(engineeringComponents) },
		"service":   func() string { return g.pick(engineeringComponents) },
		"focus":     func() string { return g.pick([]string{"Scalability", "Performance", "Security", "Reliability"}) },
		"area":      func() string { return g.pick(engineeringComponents) },
		"platform":  func() string { return g.pick([]string{"AWS", "GCP", "Azure", "Kubernetes"}) },
	})
}

func (g *Generator) marketingProject() string {
	pattern := g.pick(marketingPatterns)
	return g.fill(pattern, map[string]func() string{
		"quarter":       func() string { return g.pick(quarters) },
		"campaign_type": func() string { return g.pick(marketingCampaigns) },
		"channel":       func() string { return g.pick(marketingChannels) },
		"period":        func() string { return g.pick(periods) },
		"event":         func() string { return g.pick([]string{"Product Launch", "Conference", "Webinar", "Summit"}) },
		"product":       func() string { return g.pick([]string{"New Feature", "Platform", "Service"}) },
		"initiative":    func() string { return g.pick([]string{"Refresh", "Redesign", "Guidelines", "Awareness"}) },
		"campaign":      func() string { return g.pick(marketingCampaigns) },
		"program":       func() string { return g.pick([]string{"Success", "Advocacy", "Retention", "Acquisition"}) },
	})
}

func (g *Generator) productProject() string {
	pattern := g.pick(productPatterns)
	return g.fill(pattern, map[string]func() string{
		"feature":      func() string { return g.pick(productFeatures) },
		"quarter":      func() string { return g.pick(quarters) },
		"product_area": func() string { return g.pick(productFeatures) },
		"focus":        func() string { return g.pick([]string{"Usability", "Features", "Performance"}) },
		"initiative":   func() string { return g.pick([]string{"Strategic", "Feature", "Enhancement"}) },
		"period":       func() string { return g.pick(periods) },
		"area":         func() string { return g.pick(productFeatures) },
	})
}

func (g *Generator) designProject() string {
	pattern := g.pick(designPatterns)
	return g.fill(pattern, map[string]func() string{
		"version":   func() string { return fmt.Sprintf("v%d.%d", 1+g.rng.Intn(3), g.rng.Intn(10)) },
		"focus":     func() string { return g.pick([]string{"User Flows", "Information Architecture", "Usability"}) },
		"component": func() string { return g.pick([]string{"Dashboard", "Onboarding", "Settings", "Navigation"}) },
		"project":   func() string { return g.pick([]string{"Q1", "Q2", "Q3", "Q4", "Website", "App"}) },
		"feature":   func() string { return g.pick(productFeatures) },
		"period":    func() string { return g.pick(periods) },
	})
}

func (g *Generator) operationsProject() string {
	pattern := g.pick(operationsPatterns)
	return g.fill(pattern, map[string]func() string{
		"process":    func() string { return g.pick(operationsProcesses) },
		"quarter":    func() string { return g.pick(quarters) },
		"department": func() string { return g.pick([]string{"HR", "Finance", "IT", "Legal", "Operations"}) },
		"system":     func() string { return g.pick([]string{"ERP", "CRM", "HRIS", "Expense Management"}) },
		"area":       func() string { return g.pick([]string{"Security", "Privacy", "Financial", "HR"}) },
		"category":   func() string { return g.pick([]string{"Software", "Hardware", "Services"}) },
		"initiative": func() string { return g.pick([]string{"Tool", "Process", "Policy"}) },
	})
}

// fill substitutes {placeholder} occurrences. Fillers run only for
// placeholders the pattern actually contains, so the number of random draws
// depends on the chosen pattern, never on the filler table.
func (g *Generator) fill(pattern string, fillers map[string]func() string) string {
	out := pattern
	for start := strings.Index(out, "{"); start >= 0; start = strings.Index(out, "{") {
		end := strings.Index(out[start:], "}")
		if end < 0 {
			break
		}
		key := out[start+1 : start+end]
		filler, ok := fillers[key]
		if !ok {
			break
		}
		out = out[:start] + filler() + out[start+end+1:]
	}
	return out
}

// TaskName returns a task name for the archetype. Archetypes without a task
// template set use the engineering patterns.
func (g *Generator) TaskName(a Archetype) string {
	var templates []string
	switch a {
	case Engineering:
		templates = engineeringTaskPatterns
	case Marketing:
		templates = marketingTaskPatterns
	case Product:
		templates = productTaskPatterns
	case Design:
		templates = designTaskPatterns
	default:
		templates = engineeringTaskPatterns
	}
	pattern := g.pick(templates)
	return g.fill(pattern, map[string]func() string{
		"bug":       func() string { return g.pick([]string{"authentication error", "API timeout", "UI glitch", "memory leak"}) },
		"component": func() string { return g.pick([]string{"dashboard", "API", "database", "frontend", "auth service"}) },
		"feature":   func() string { return g.pick([]string{"user profiles", "notifications", "search", "analytics", "export"}) },
		"tech":      func() string { return g.pick([]string{"TypeScript", "React", "GraphQL", "PostgreSQL"}) },
		"asset":     func() string { return g.pick([]string{"email template", "landing page", "social post", "infographic"}) },
		"campaign":  func() string { return g.pick([]string{"Q1 launch", "product release", "brand awareness", "webinar"}) },
		"content":   func() string { return g.pick([]string{"blog", "social media", "email", "video"}) },
		"event":     func() string { return g.pick([]string{"webinar", "conference", "product launch", "workshop"}) },
		"metric":    func() string { return g.pick([]string{"engagement", "conversion", "retention", "churn"}) },
		"topic":     func() string { return g.pick([]string{"onboarding", "navigation", "checkout", "settings"}) },
		"area":      func() string { return g.pick([]string{"features", "bugs", "technical debt", "improvements"}) },
	})
}

// TaskDescription returns a description for a task: empty 20% of the time,
// a one-liner 50%, and a multi-line note otherwise. Consumes one draw.
func (g *Generator) TaskDescription(taskName string) string {
	switch draw := g.rng.Float64(); {
	case draw < 0.2:
		return ""
	case draw < 0.7:
		return "Work on: " + strings.ToLower(taskName)
	default:
		return fmt.Sprintf("Task details:\n- %s\n- Please review and implement\n- Coordinate with team", taskName)
	}
}
