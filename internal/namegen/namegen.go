// Package namegen samples human names from US Census frequency tables and
// derives organization emails that are guaranteed unique within a run.
package namegen

import (
	"fmt"
	"math/rand"
	"strings"
)

// Person is one generated identity.
type Person struct {
	FirstName string
	LastName  string
	Email     string
}

// Generator produces unique names and emails.
type Generator struct {
	rng        *rand.Rand
	usedEmails map[string]struct{}
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, usedEmails: make(map[string]struct{})}
}

// Generate returns count persons with unique (first, last) pairs and unique
// emails on the given domain.
func (g *Generator) Generate(count int, domain string) []Person {
	type pair struct{ first, last string }
	seen := make(map[pair]struct{}, count)
	names := make([]pair, 0, count)
	for len(names) < count {
		p := pair{
			first: firstNames[g.rng.Intn(len(firstNames))],
			last:  lastNames[g.rng.Intn(len(lastNames))],
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		names = append(names, p)
	}

	people := make([]Person, 0, count)
	for _, n := range names {
		people = append(people, Person{
			FirstName: n.first,
			LastName:  n.last,
			Email:     g.email(n.first, n.last, domain),
		})
	}
	return people
}

// email tries common address formats in order, then falls back to a numeric
// suffix once all formats collide.
func (g *Generator) email(first, last, domain string) string {
	f := strings.ToLower(first)
	l := strings.ToLower(last)
	formats := []string{
		fmt.Sprintf("%s.%s@%s", f, l, domain),
		fmt.Sprintf("%s%s@%s", f[:1], l, domain),
		fmt.Sprintf("%s%s@%s", f, l[:1], domain),
		fmt.Sprintf("%s%s@%s", f, l, domain),
	}
	for _, addr := range formats {
		if _, ok := g.usedEmails[addr]; !ok {
			g.usedEmails[addr] = struct{}{}
			return addr
		}
	}
	for i := 1; ; i++ {
		addr := fmt.Sprintf("%s.%s%d@%s", f, l, i, domain)
		if _, ok := g.usedEmails[addr]; !ok {
			g.usedEmails[addr] = struct{}{}
			return addr
		}
	}
}
