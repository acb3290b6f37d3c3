package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
)

// clearCIEnv blanks every variable Load consults, so ambient CI context in
// the test environment cannot leak into assertions.
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRAVIS_PULL_REQUEST", "TRAVIS_BRANCH",
		"GITHUB_ACTIONS", "GITHUB_EVENT_NAME", "GITHUB_REF", "GITHUB_BASE_REF",
		"BENCH_SENTRY_PULL_REQUEST", "BENCH_SENTRY_BRANCH",
		"BENCH_SENTRY_BENCH_COMMAND", "BENCH_SENTRY_COMPARE_TOOL",
		"BENCH_SENTRY_GIT_REMOTE", "BENCH_SENTRY_BENCHES_DIR",
		"BENCH_SENTRY_GITHUB_TOKEN", "BENCH_SENTRY_GITHUB_OWNER", "BENCH_SENTRY_GITHUB_REPO",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearCIEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.BenchCommand; len(got) != 2 || got[0] != "cargo" || got[1] != "bench" {
		t.Errorf("BenchCommand = %v, want [cargo bench]", got)
	}
	if cfg.CompareTool != "cargo-benchcmp" {
		t.Errorf("CompareTool = %q", cfg.CompareTool)
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q", cfg.Remote)
	}
	if cfg.BenchesDir != domain.DefaultBenchesDir {
		t.Errorf("BenchesDir = %q", cfg.BenchesDir)
	}
	if cfg.Context().IsPullRequest() {
		t.Errorf("no CI context should not look like a PR build: %+v", cfg.Context())
	}
}

func TestLoad_TravisContext(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("TRAVIS_PULL_REQUEST", "123")
	t.Setenv("TRAVIS_BRANCH", "main")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PullRequest != "123" || cfg.Branch != "main" {
		t.Errorf("context = %q/%q, want 123/main", cfg.PullRequest, cfg.Branch)
	}
}

func TestLoad_TravisSentinel(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("TRAVIS_PULL_REQUEST", "false")
	t.Setenv("TRAVIS_BRANCH", "main")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Context().IsPullRequest() {
		t.Errorf("sentinel build treated as PR: %+v", cfg.Context())
	}
}

func TestLoad_GitHubActionsContext(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_EVENT_NAME", "pull_request")
	t.Setenv("GITHUB_REF", "refs/pull/42/merge")
	t.Setenv("GITHUB_BASE_REF", "develop")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PullRequest != "42" || cfg.Branch != "develop" {
		t.Errorf("context = %q/%q, want 42/develop", cfg.PullRequest, cfg.Branch)
	}
}

func TestLoad_GitHubActionsPushIsNotPR(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_EVENT_NAME", "push")
	t.Setenv("GITHUB_REF", "refs/heads/main")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PullRequest != domain.NonPRSentinel {
		t.Errorf("PullRequest = %q, want sentinel", cfg.PullRequest)
	}
}

func TestLoad_ExplicitOverridesBeatCI(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("TRAVIS_PULL_REQUEST", "123")
	t.Setenv("TRAVIS_BRANCH", "main")
	t.Setenv("BENCH_SENTRY_PULL_REQUEST", "999")
	t.Setenv("BENCH_SENTRY_BRANCH", "release")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PullRequest != "999" || cfg.Branch != "release" {
		t.Errorf("context = %q/%q, want 999/release", cfg.PullRequest, cfg.Branch)
	}
}

func TestLoad_EnvTooling(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("BENCH_SENTRY_BENCH_COMMAND", "go test -bench . ./...")
	t.Setenv("BENCH_SENTRY_COMPARE_TOOL", "benchcmp")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"go", "test", "-bench", ".", "./..."}
	if len(cfg.BenchCommand) != len(want) {
		t.Fatalf("BenchCommand = %v, want %v", cfg.BenchCommand, want)
	}
	for i := range want {
		if cfg.BenchCommand[i] != want[i] {
			t.Fatalf("BenchCommand = %v, want %v", cfg.BenchCommand, want)
		}
	}
	if cfg.CompareTool != "benchcmp" {
		t.Errorf("CompareTool = %q, want benchcmp", cfg.CompareTool)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearCIEnv(t)

	path := filepath.Join(t.TempDir(), "bench-sentry.yaml")
	content := `bench:
  command: cargo bench --features simd
git:
  remote: upstream
github:
  owner: RReverser
  repo: esprit
  token: tok
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want upstream", cfg.Remote)
	}
	if len(cfg.BenchCommand) != 4 || cfg.BenchCommand[2] != "--features" || cfg.BenchCommand[3] != "simd" {
		t.Errorf("BenchCommand = %v", cfg.BenchCommand)
	}
	if !cfg.GitHub.Enabled() {
		t.Errorf("GitHub reporting should be enabled: %+v", cfg.GitHub)
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	clearCIEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected an error for a missing explicit config file")
	}
}

func TestGitHubConfig_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  GitHubConfig
		want bool
	}{
		{
			name: "empty",
			cfg:  GitHubConfig{},
			want: false,
		},
		{
			name: "token without repo",
			cfg:  GitHubConfig{Token: "tok"},
			want: false,
		},
		{
			name: "token with repo",
			cfg:  GitHubConfig{Token: "tok", Owner: "o", Repo: "r"},
			want: true,
		},
		{
			name: "app credentials with repo",
			cfg:  GitHubConfig{AppID: 1, InstallationID: 2, PrivateKeyPath: "key.pem", Owner: "o", Repo: "r"},
			want: true,
		},
		{
			name: "incomplete app credentials",
			cfg:  GitHubConfig{AppID: 1, Owner: "o", Repo: "r"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
