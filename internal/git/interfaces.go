package git

// Repository provides the read-only queries the release preflight needs.
// This is the key abstraction point for testing.
type Repository interface {
	// WorkingDirectory returns the path to the working tree root.
	WorkingDirectory() string

	// Head returns the current HEAD branch.
	Head() (Branch, error)

	// TagExists reports whether refs/tags/<name> exists.
	TagExists(name string) (bool, error)

	// BranchExists reports whether the local branch refs/heads/<name> exists.
	BranchExists(name string) (bool, error)

	// NumberOfUncommittedChanges returns the count of staged or modified
	// tracked files in the working directory. Untracked files are not counted.
	NumberOfUncommittedChanges() (int, error)

	// RemoteURL returns the first fetch URL of the named remote.
	RemoteURL(name string) (string, error)
}
