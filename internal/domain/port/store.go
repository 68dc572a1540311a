package port

// JobStore maps job identities onto the filesystem. There is no in-memory
// index: every read walks the job's directory, so the directory tree is the
// single source of truth.
type JobStore interface {
	// CreateJobDir makes the directory for a new job and returns its path.
	CreateJobDir(jobID string) (string, error)
	// JobDir returns the directory a job's frames live in, whether or not
	// it exists.
	JobDir(jobID string) string
	// Exists reports whether a job directory is present.
	Exists(jobID string) bool
	// ListImages returns the job's frame filenames sorted lexicographically,
	// which equals extraction order because names are zero-padded sequence
	// numbers. Returns entity.ErrJobNotFound for unknown jobs.
	ListImages(jobID string) ([]string, error)
	// ArchivePath returns where the job's ZIP artifact lives, adjacent to
	// (not inside) the job directory.
	ArchivePath(jobID string) string
	// RemoveJob deletes a job directory and everything in it.
	RemoveJob(jobID string) error
}
