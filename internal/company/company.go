// Package company supplies an organization name and domain, fetched from a
// public startup directory when reachable and otherwise drawn from a static
// fallback list. Fetch failures degrade, never abort a run.
package company

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const directoryURL = "https://www.ycombinator.com/companies"

// Company is a name plus an email/web domain.
type Company struct {
	Name   string
	Domain string
}

type Provider struct {
	rng    *rand.Rand
	client *http.Client
	log    zerolog.Logger
}

func New(rng *rand.Rand, log zerolog.Logger) *Provider {
	return &Provider{
		rng:    rng,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Pick returns one company, preferring live directory data.
func (p *Provider) Pick(ctx context.Context) Company {
	companies := p.Companies(ctx, 1)
	return companies[0]
}

// Companies returns up to limit companies. On any fetch or parse failure it
// falls back to the static list, padded with synthetic names.
func (p *Provider) Companies(ctx context.Context, limit int) []Company {
	companies, err := p.fetch(ctx, limit)
	if err != nil {
		p.log.Warn().Err(err).Msg("company directory fetch failed, using fallback data")
		return p.fallback(limit)
	}
	if len(companies) == 0 {
		p.log.Warn().Msg("company directory returned no entries, using fallback data")
		return p.fallback(limit)
	}
	return companies
}

var companyLinkRe = regexp.MustCompile(`<a[^>]+href="/companies/[^"]+"[^>]*>([^<]+)</a>`)

func (p *Provider) fetch(ctx context.Context, limit int) ([]Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, directoryURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var companies []Company
	for _, m := range companyLinkRe.FindAllStringSubmatch(string(body), limit) {
		name := strings.TrimSpace(m[1])
		if len(name) <= 2 {
			continue
		}
		companies = append(companies, Company{Name: name, Domain: deriveDomain(name)})
	}
	return companies, nil
}

// deriveDomain lowercases the name, strips everything but letters, digits and
// spaces, collapses spaces and appends .com.
func deriveDomain(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String() + ".com"
}

var (
	fallbackCompanies = []Company{
		{"Stripe", "stripe.com"}, {"Airbnb", "airbnb.com"}, {"Dropbox", "dropbox.com"},
		{"Reddit", "reddit.com"}, {"Twitch", "twitch.tv"}, {"Instacart", "instacart.com"},
		{"DoorDash", "doordash.com"}, {"Coinbase", "coinbase.com"}, {"Gusto", "gusto.com"},
		{"Brex", "brex.com"}, {"GitLab", "gitlab.com"}, {"Rappi", "rappi.com"},
		{"Ginkgo Bioworks", "ginkgobioworks.com"}, {"Faire", "faire.com"}, {"Scale AI", "scale.com"},
		{"Retool", "retool.com"}, {"Amplitude", "amplitude.com"}, {"Segment", "segment.com"},
		{"Plaid", "plaid.com"}, {"Checkr", "checkr.com"}, {"Rippling", "rippling.com"},
		{"Lattice", "lattice.com"}, {"Mixpanel", "mixpanel.com"}, {"OpenSea", "opensea.io"},
		{"Verkada", "verkada.com"}, {"Webflow", "webflow.com"}, {"Airtable", "airtable.com"},
		{"Figma", "figma.com"}, {"Notion", "notion.so"}, {"Zapier", "zapier.com"},
	}
	syntheticPrefixes = []string{"Cloud", "Data", "Smart", "Quantum", "Cyber", "Neural", "Edge", "Flex"}
	syntheticSuffixes = []string{"Labs", "AI", "Tech", "Systems", "Solutions", "Platform", "Software"}
)

func (p *Provider) fallback(limit int) []Company {
	companies := make([]Company, len(fallbackCompanies))
	copy(companies, fallbackCompanies)
	for len(companies) < limit {
		name := syntheticPrefixes[p.rng.Intn(len(syntheticPrefixes))] + syntheticSuffixes[p.rng.Intn(len(syntheticSuffixes))]
		companies = append(companies, Company{Name: name, Domain: strings.ToLower(name) + ".com"})
	}
	if limit < len(companies) {
		companies = companies[:limit]
	}
	return companies
}
