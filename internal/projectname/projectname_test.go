package projectname

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allArchetypes = []Archetype{Engineering, Marketing, Product, Design, Operations, General}

func TestParseRoundTrip(t *testing.T) {
	for _, a := range allArchetypes {
		require.Equal(t, a, Parse(a.String()), a.String())
	}
	require.Equal(t, General, Parse("whatever"))
}

func TestForDepartment(t *testing.T) {
	require.Equal(t, Engineering, ForDepartment("Engineering"))
	require.Equal(t, Marketing, ForDepartment("Marketing"))
	require.Equal(t, Product, ForDepartment("Product"))
	require.Equal(t, Design, ForDepartment("Design"))
	// departments without dedicated templates run operations workflows
	require.Equal(t, Operations, ForDepartment("Sales"))
	require.Equal(t, Operations, ForDepartment("Human Resources"))
	require.Equal(t, Operations, ForDepartment("Finance"))
}

func TestSectionTemplates(t *testing.T) {
	for _, a := range allArchetypes {
		sections := a.SectionTemplate()
		require.NotEmpty(t, sections, a.String())
		seen := map[string]struct{}{}
		for _, s := range sections {
			_, dup := seen[s]
			require.False(t, dup, "%s repeats section %s", a, s)
			seen[s] = struct{}{}
		}
	}
	require.Equal(t,
		[]string{"Backlog", "To Do", "In Progress", "In Review", "Done"},
		Engineering.SectionTemplate())
}

func TestProjectNamesFilled(t *testing.T) {
	g := New(rand.New(rand.NewSource(42)))
	for _, a := range allArchetypes {
		for i := 0; i < 200; i++ {
			name := g.Project(a)
			require.NotEmpty(t, name)
			require.NotContains(t, name, "{", "unfilled placeholder in %q", name)
			require.NotContains(t, name, "}", "unfilled placeholder in %q", name)
		}
	}
}

func TestTaskNamesFilled(t *testing.T) {
	g := New(rand.New(rand.NewSource(42)))
	for _, a := range allArchetypes {
		for i := 0; i < 200; i++ {
			name := g.TaskName(a)
			require.NotEmpty(t, name)
			require.NotContains(t, name, "{")
		}
	}
}

func TestTaskDescriptionShape(t *testing.T) {
	g := New(rand.New(rand.NewSource(42)))
	var empty, oneLine, multi int
	const n = 2000
	for i := 0; i < n; i++ {
		switch desc := g.TaskDescription("Fix login bug"); {
		case desc == "":
			empty++
		case strings.HasPrefix(desc, "Work on: "):
			oneLine++
			require.Equal(t, "Work on: fix login bug", desc)
		default:
			multi++
			require.Contains(t, desc, "Fix login bug")
			require.Contains(t, desc, "\n")
		}
	}
	require.InDelta(t, 0.2, float64(empty)/n, 0.04)
	require.InDelta(t, 0.5, float64(oneLine)/n, 0.04)
	require.InDelta(t, 0.3, float64(multi)/n, 0.04)
}

func TestGeneratorDeterministic(t *testing.T) {
	a := New(rand.New(rand.NewSource(9)))
	b := New(rand.New(rand.NewSource(9)))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Project(Engineering), b.Project(Engineering))
		require.Equal(t, a.TaskName(Marketing), b.TaskName(Marketing))
	}
}
