package detector

import "strings"

// Detect finner en sannsynlig demo-URL. Homepage brukes bare hvis den treffer
// et kjent hosting-mønster; ukjente homepages ignoreres.
func (m *Matcher) Detect(homepage, readme string) (string, bool) {
	homepage = strings.TrimSpace(homepage)
	if homepage != "" {
		if _, ok := m.MatchHosting(homepage); ok {
			return homepage, true
		}
	}

	if readme == "" {
		return "", false
	}
	if match, ok := m.MatchHosting(readme); ok {
		return match, true
	}
	return m.MatchLabeledLink(readme)
}

func DetectDemoURL(homepage, readme string) (string, bool) {
	return defaultMatcher.Detect(homepage, readme)
}
