package domain

// DefaultBenchesDir is where benchmark artifacts are written, relative to
// the repository root.
const DefaultBenchesDir = "benches"

// PRArtifactName returns the artifact file name for a pull request run.
// Example: PRArtifactName("123") == "PR_123".
func PRArtifactName(prID string) string {
	return "PR_" + prID
}

// BranchArtifactName returns the artifact file name for a target branch
// run. The branch name is used verbatim, matching the fetch ref.
func BranchArtifactName(branch string) string {
	return branch
}
