package domain

import "errors"

// NonPRSentinel is the value CI systems assign to the pull request variable
// when a build was not triggered by a pull request. Travis sets
// TRAVIS_PULL_REQUEST to the literal string "false" in that case.
const NonPRSentinel = "false"

// BuildContext holds the CI-provided values for one build. PullRequest
// doubles as the build-context flag and the PR identifier: it is either
// the sentinel, empty (no CI context at all), or the PR number.
type BuildContext struct {
	PullRequest string
	Branch      string // target branch the PR merges into
}

// IsPullRequest reports whether this build should be benchmarked.
// An unset value counts as "not a pull request": it cannot name a PR
// artifact, so treating it as one would write benches/PR_ with an empty
// identifier.
func (c BuildContext) IsPullRequest() bool {
	return c.PullRequest != "" && c.PullRequest != NonPRSentinel
}

// Validate checks that a pull request build carries everything the run
// sequence needs. It is called before any side effect so that a broken
// context never mutates the working tree or the benches directory.
func (c BuildContext) Validate() error {
	if !c.IsPullRequest() {
		return nil
	}
	if c.Branch == "" {
		return errors.New("pull request build without a target branch")
	}
	return nil
}
