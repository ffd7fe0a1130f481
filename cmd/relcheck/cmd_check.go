package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/relcheck/relcheck-cli/internal/exitcodes"
	"github.com/relcheck/relcheck-cli/internal/update"
)

// releaseChecker is the seam used by runCheckCore so tests can inject
// a stub instead of hitting the network.
type releaseChecker interface {
	Check(repoURL, localVersion string) (*update.CheckResult, error)
}

type checkOpts struct {
	repoURL      string
	localVersion string
	jsonOut      bool
}

// checkReport is the JSON shape of a successful check.
type checkReport struct {
	Local  string `json:"local"`
	Remote string `json:"remote"`
	Update bool   `json:"update"`
}

// runCheck builds the real checker from config and delegates to
// runCheckCore.
func runCheck(repoURL, localVersion string) error {
	cfg := loadCfg()
	fetcher := update.NewFetcher(cfg.HTTPTimeout, cfg.UserAgent)
	checker := update.NewChecker(fetcher, cfg.APIBase)

	return runCheckCore(os.Stdout, checker, checkOpts{
		repoURL:      repoURL,
		localVersion: localVersion,
		jsonOut:      flagJSON,
	})
}

// runCheckCore performs the check and renders the result. The returned
// error carries the exit code: nil for no update, UpdateAvailable when
// the remote is newer, CheckFailed for any pipeline fault.
func runCheckCore(w io.Writer, checker releaseChecker, opts checkOpts) error {
	res, err := checker.Check(opts.repoURL, opts.localVersion)
	if err != nil {
		if opts.jsonOut {
			writeJSON(w, map[string]string{"error": err.Error()})
			return silentErr{exitcodes.CheckErr(err)}
		}
		return exitcodes.CheckErr(err)
	}

	if opts.jsonOut {
		writeJSON(w, checkReport{
			Local:  res.LocalVersion,
			Remote: res.LatestTag,
			Update: res.HasUpdate,
		})
	} else {
		updateWord := "NO"
		if res.HasUpdate {
			updateWord = "YES"
		}
		fmt.Fprintf(w, "Local version:  %s\n", res.LocalVersion)
		fmt.Fprintf(w, "Remote version: %s\n", res.LatestTag)
		fmt.Fprintf(w, "Update:         %s\n", updateWord)
	}

	if res.HasUpdate {
		return silentErr{exitcodes.NewError(exitcodes.UpdateAvailable, "update available")}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
