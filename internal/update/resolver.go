package update

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultAPIBase = "https://api.github.com"
	apiHostMarker  = "api.github.com"
)

// webRepoPattern captures owner and repo from a GitHub web or clone
// URL. The charset stays permissive (anything but "/"): tightening it
// would reject URLs GitHub itself accepts.
var webRepoPattern = regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+)`)

// ResolveEndpoint turns a repository reference into the latest-release
// metadata endpoint. Already-canonical API URLs pass through unchanged,
// so resolving twice is harmless and callers may hand in either form.
func ResolveEndpoint(rawURL string) (string, error) {
	if strings.Contains(rawURL, apiHostMarker) {
		return rawURL, nil
	}

	m := webRepoPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", newErrorf(KindInvalidRepoURL, "invalid GitHub repository URL: %q", rawURL)
	}

	owner := m[1]
	repo := strings.TrimSuffix(m[2], ".git")

	return fmt.Sprintf("%s/repos/%s/%s/releases/latest", defaultAPIBase, owner, repo), nil
}

// rewriteBase points a canonical endpoint at an alternate API base.
// Used when RELCHECK_API_BASE redirects checks at a stand-in server.
func rewriteBase(endpoint, base string) string {
	base = strings.TrimRight(base, "/")
	if base == "" || base == defaultAPIBase {
		return endpoint
	}
	return strings.Replace(endpoint, defaultAPIBase, base, 1)
}
