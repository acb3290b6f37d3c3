// Package prreport publishes a benchmark comparison as a pull request
// comment on GitHub.
package prreport

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v68/github"
)

// Adapter implements ports.Reporter by creating an issue comment on the
// pull request being benchmarked.
type Adapter struct {
	client    *github.Client
	owner     string
	repo      string
	prNumber  int
	baseline  string
	candidate string
}

// New creates a reporter for one pull request. baseline and candidate are
// the artifact names, used to label the comment.
func New(client *github.Client, owner, repo string, prNumber int, baseline, candidate string) *Adapter {
	return &Adapter{
		client:    client,
		owner:     owner,
		repo:      repo,
		prNumber:  prNumber,
		baseline:  baseline,
		candidate: candidate,
	}
}

// Publish posts the comparison as a PR comment.
func (a *Adapter) Publish(ctx context.Context, comparison string) error {
	body := FormatComment(a.baseline, a.candidate, comparison)
	comment := &github.IssueComment{Body: github.String(body)}
	if _, _, err := a.client.Issues.CreateComment(ctx, a.owner, a.repo, a.prNumber, comment); err != nil {
		return fmt.Errorf("creating PR comment: %w", err)
	}
	return nil
}

// FormatComment renders the comment markdown: a header naming both
// artifacts and the comparison in a fenced block, since benchmark tables
// rely on monospace alignment.
func FormatComment(baseline, candidate, comparison string) string {
	var sb strings.Builder
	sb.WriteString("## Benchmark comparison\n\n")
	fmt.Fprintf(&sb, "Baseline `%s` vs candidate `%s`:\n\n", baseline, candidate)
	sb.WriteString("```text\n")
	sb.WriteString(strings.TrimRight(comparison, "\n"))
	sb.WriteString("\n```\n")
	return sb.String()
}

// NewTokenClient returns a GitHub client authenticated with a personal
// access token.
func NewTokenClient(token string) *github.Client {
	return github.NewClient(nil).WithAuthToken(token)
}

// NewAppClient returns a GitHub client authenticated as a GitHub App
// installation, using a private key file on disk.
func NewAppClient(appID, installationID int64, privateKeyPath string) (*github.Client, error) {
	itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}
