// Package config loads bench-sentry configuration from environment
// variables and an optional config file, and detects the CI build context.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
)

// Config is the resolved configuration for one invocation. Precedence is
// env (BENCH_SENTRY_*) over config file over CI autodetection over
// defaults.
type Config struct {
	PullRequest string
	Branch      string

	BenchCommand []string
	CompareTool  string
	Remote       string
	BenchesDir   string

	GitHub GitHubConfig
}

// GitHubConfig enables optional PR comment reporting. Either a personal
// access token or App credentials must be set, along with the repository.
type GitHubConfig struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	Owner          string
	Repo           string
}

// Enabled reports whether there is enough configuration to post a PR
// comment.
func (g GitHubConfig) Enabled() bool {
	if g.Owner == "" || g.Repo == "" {
		return false
	}
	return g.Token != "" || (g.AppID != 0 && g.InstallationID != 0 && g.PrivateKeyPath != "")
}

// Context returns the build context derived from this configuration.
func (c *Config) Context() domain.BuildContext {
	return domain.BuildContext{PullRequest: c.PullRequest, Branch: c.Branch}
}

// Load reads the optional config file (.bench-sentry.yaml in the working
// directory unless cfgFile overrides it) and the environment. A cfgFile
// given explicitly must exist; the default file is allowed to be absent.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BENCH_SENTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bench.command", "cargo bench")
	v.SetDefault("compare.tool", "cargo-benchcmp")
	v.SetDefault("git.remote", "origin")
	v.SetDefault("benches.dir", domain.DefaultBenchesDir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName(".bench-sentry")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		BenchCommand: strings.Fields(v.GetString("bench.command")),
		CompareTool:  v.GetString("compare.tool"),
		Remote:       v.GetString("git.remote"),
		BenchesDir:   v.GetString("benches.dir"),
		GitHub: GitHubConfig{
			Token:          v.GetString("github.token"),
			AppID:          v.GetInt64("github.app_id"),
			InstallationID: v.GetInt64("github.installation_id"),
			PrivateKeyPath: v.GetString("github.private_key_path"),
			Owner:          v.GetString("github.owner"),
			Repo:           v.GetString("github.repo"),
		},
	}

	cfg.PullRequest, cfg.Branch = detectCI()
	if s := v.GetString("pull_request"); s != "" {
		cfg.PullRequest = s
	}
	if s := v.GetString("branch"); s != "" {
		cfg.Branch = s
	}

	return cfg, nil
}

// prRefRe matches GitHub Actions merge refs like "refs/pull/123/merge".
var prRefRe = regexp.MustCompile(`^refs/pull/(\d+)/`)

// detectCI reads the CI systems' own variables. Travis exposes the pull
// request value directly (the number, or "false"); GitHub Actions encodes
// the number in GITHUB_REF and the target branch in GITHUB_BASE_REF.
func detectCI() (pullRequest, branch string) {
	if v := os.Getenv("TRAVIS_PULL_REQUEST"); v != "" {
		return v, os.Getenv("TRAVIS_BRANCH")
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		if os.Getenv("GITHUB_EVENT_NAME") != "pull_request" {
			return domain.NonPRSentinel, ""
		}
		if m := prRefRe.FindStringSubmatch(os.Getenv("GITHUB_REF")); m != nil {
			return m[1], os.Getenv("GITHUB_BASE_REF")
		}
		return domain.NonPRSentinel, ""
	}

	return "", ""
}
