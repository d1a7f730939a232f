package detector

import (
	"regexp"
	"strings"
)

// HostingPatterns er domenesuffiksene som regnes som en kjørende deploy.
// Rekkefølgen er viktig: første mønster som treffer vinner.
var HostingPatterns = []string{
	"vercel.app",
	"netlify.app",
	"herokuapp.com",
	"render.com",
	"github.io",
	"surge.sh",
	"onrender.com",
	"pages.dev",
	"fly.dev",
	"railway.app",
}

var demoLabelKeywords = []string{"demo", "live", "preview"}

var markdownLink = regexp.MustCompile(`\[([^\]]*)\]\((https?://[^)\s]+)\)`)

type Matcher struct {
	hosting []*regexp.Regexp
}

var defaultMatcher = NewMatcher(HostingPatterns...)

func DefaultMatcher() *Matcher {
	return defaultMatcher
}

// NewMatcher bygger en matcher for de oppgitte domenesuffiksene, f.eks. "vercel.app".
func NewMatcher(suffixes ...string) *Matcher {
	m := &Matcher{}
	for _, s := range suffixes {
		s = strings.TrimPrefix(strings.TrimSpace(s), "*.")
		if s == "" {
			continue
		}
		expr := `(?i)https?://[^\s/()\[\]<>"'@]+\.` + regexp.QuoteMeta(s) + `\b`
		m.hosting = append(m.hosting, regexp.MustCompile(expr))
	}
	return m
}

// MatchHosting returnerer første delstreng som treffer et hosting-mønster.
// Mønstrene sjekkes i deklarert rekkefølge, og innen et mønster vinner første treff i teksten.
func (m *Matcher) MatchHosting(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, re := range m.hosting {
		if match := re.FindString(text); match != "" {
			return match, true
		}
	}
	return "", false
}

// MatchLabeledLink finner første markdown-lenke der teksten inneholder demo, live eller preview.
func (m *Matcher) MatchLabeledLink(text string) (string, bool) {
	for _, link := range markdownLink.FindAllStringSubmatch(text, -1) {
		label := strings.ToLower(link[1])
		for _, kw := range demoLabelKeywords {
			if strings.Contains(label, kw) {
				return link[2], true
			}
		}
	}
	return "", false
}
