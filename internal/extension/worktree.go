package extension

import (
	"os/exec"
)

// Worktree is the host capability for locating an executable by name on
// the environment's search path.
type Worktree interface {
	// Which returns the full path to name and true when found.
	Which(name string) (string, bool)
}

// execWorktree is the default Worktree, backed by exec.LookPath.
type execWorktree struct{}

func (execWorktree) Which(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
