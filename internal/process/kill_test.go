package process

// Notes:
// - KillProcessGroup: we only test with an invalid PID to verify the function
//   doesn't panic. Real kill behavior shows up when a git or pip invocation
//   is cancelled mid-run, which cannot be exercised safely in unit tests.
// - Cannot test with PID 0 (kills current process group) or real PIDs.

import "testing"

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
