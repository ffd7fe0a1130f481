package update

import (
	"github.com/relcheck/relcheck-cli/internal/semver"
)

// releaseFetcher is what the Checker needs from the transport layer.
type releaseFetcher interface {
	Fetch(url string) ([]byte, error)
}

// Checker runs the resolve → fetch → extract → parse → compare
// pipeline. It holds no mutable state, so a single Checker may serve
// concurrent checks without locking.
type Checker struct {
	fetcher releaseFetcher
	apiBase string
}

// NewChecker wires a Checker to a fetcher. A non-default apiBase
// redirects the resolved endpoint (test servers, GitHub Enterprise
// style proxies); pass "" for api.github.com.
func NewChecker(fetcher releaseFetcher, apiBase string) *Checker {
	return &Checker{fetcher: fetcher, apiBase: apiBase}
}

// Check reports whether the repository's latest release is strictly
// newer than localVersion. Steps run in strict order, each gated on the
// previous one, and any failure propagates unchanged — no wrapping, no
// retries, no partial results. The one side effect is the single fetch.
func (c *Checker) Check(repoURL, localVersion string) (*CheckResult, error) {
	endpoint, err := ResolveEndpoint(repoURL)
	if err != nil {
		return nil, err
	}
	endpoint = rewriteBase(endpoint, c.apiBase)

	body, err := c.fetcher.Fetch(endpoint)
	if err != nil {
		return nil, err
	}

	tag, err := extractTag(body)
	if err != nil {
		return nil, err
	}

	local, err := semver.Parse(localVersion)
	if err != nil {
		return nil, err
	}
	remote, err := semver.Parse(tag)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		LocalVersion: localVersion,
		LatestTag:    tag,
		HasUpdate:    semver.Compare(remote, local) > 0,
	}, nil
}
