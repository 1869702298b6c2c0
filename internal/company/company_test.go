package company

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDeriveDomain(t *testing.T) {
	cases := map[string]string{
		"Stripe":          "stripe.com",
		"Scale AI":        "scaleai.com",
		"Ginkgo Bioworks": "ginkgobioworks.com",
		"Mono-Repo 2.0":   "monorepo20.com",
	}
	for name, want := range cases {
		require.Equal(t, want, deriveDomain(name))
	}
}

func TestDirectoryLinkParsing(t *testing.T) {
	html := `
		<div><a class="c" href="/companies/stripe">Stripe</a></div>
		<a href="/companies/scale-ai" data-x="1">Scale AI</a>
		<a href="/about">About us</a>
		<a href="/companies/xy">xy</a>`

	matches := companyLinkRe.FindAllStringSubmatch(html, -1)
	var names []string
	for _, m := range matches {
		names = append(names, strings.TrimSpace(m[1]))
	}
	require.Contains(t, names, "Stripe")
	require.Contains(t, names, "Scale AI")
	require.NotContains(t, names, "About us")
}

func TestFallback(t *testing.T) {
	p := New(rand.New(rand.NewSource(42)), zerolog.Nop())

	companies := p.fallback(5)
	require.Len(t, companies, 5)
	require.Equal(t, "Stripe", companies[0].Name)

	// padding kicks in past the static list
	companies = p.fallback(40)
	require.Len(t, companies, 40)
	for _, c := range companies {
		require.NotEmpty(t, c.Name)
		require.Contains(t, c.Domain, ".")
	}
}
