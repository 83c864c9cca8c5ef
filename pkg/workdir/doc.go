// Package workdir manages the lifecycle of a single filesystem directory.
//
// A Config names a path and a policy: whether the directory survives the end
// of its scope (Keep), whether existing content is wiped before use (Clean)
// and whether a ".gitignore" ignoring everything is seeded (WithGitignore).
// Config values are immutable; every policy method returns a modified copy.
//
// Open turns a Config into a Dir handle. Nothing touches the filesystem until
// Initialize is called. Close ends the handle's scope and, unless the policy
// retains the directory, removes it with all of its content. Close never
// fails: cleanup errors are logged and swallowed. Pair Open with a deferred
// Close, or use Use, so cleanup runs on every exit path:
//
//	d := workdir.New("out/run").Clean().WithGitignore().Open()
//	defer d.Close()
//	if err := d.Initialize(); err != nil {
//		return err
//	}
//	return d.WriteJSON("result.json", result)
//
// Handles are not safe for concurrent use, and two handles over overlapping
// paths race on the filesystem. Callers own that coordination.
package workdir
