package namegen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnique(t *testing.T) {
	g := New(rand.New(rand.NewSource(42)))
	people := g.Generate(500, "acme.com")
	require.Len(t, people, 500)

	emails := map[string]struct{}{}
	pairs := map[string]struct{}{}
	for _, p := range people {
		require.NotEmpty(t, p.FirstName)
		require.NotEmpty(t, p.LastName)
		require.True(t, strings.HasSuffix(p.Email, "@acme.com"), p.Email)
		require.Equal(t, strings.ToLower(p.Email), p.Email)

		_, dup := emails[p.Email]
		require.False(t, dup, "duplicate email %s", p.Email)
		emails[p.Email] = struct{}{}

		key := p.FirstName + "|" + p.LastName
		_, dup = pairs[key]
		require.False(t, dup, "duplicate name pair %s", key)
		pairs[key] = struct{}{}
	}
}

func TestEmailFormatFallback(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	want := []string{
		"jane.smith@acme.com",
		"jsmith@acme.com",
		"janes@acme.com",
		"janesmith@acme.com",
		"jane.smith1@acme.com",
		"jane.smith2@acme.com",
	}
	for _, w := range want {
		require.Equal(t, w, g.email("Jane", "Smith", "acme.com"))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := New(rand.New(rand.NewSource(7))).Generate(50, "x.com")
	b := New(rand.New(rand.NewSource(7))).Generate(50, "x.com")
	require.Equal(t, a, b)
}
