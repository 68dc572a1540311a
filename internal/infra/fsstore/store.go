package fsstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
)

// Store keeps all job state on disk under a single output root: one
// directory per job holding its frames, one ZIP per job next to the
// directory. Reads re-scan the directory every time; there is no index to
// fall out of sync.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string { return s.root }

func (s *Store) CreateJobDir(jobID string) (string, error) {
	dir := s.JobDir(jobID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create job dir: %w", err)
	}
	return dir, nil
}

func (s *Store) JobDir(jobID string) string {
	return filepath.Join(s.root, jobID)
}

func (s *Store) Exists(jobID string) bool {
	info, err := os.Stat(s.JobDir(jobID))
	return err == nil && info.IsDir()
}

func (s *Store) ListImages(jobID string) ([]string, error) {
	// An identity can resolve to a regular file (an adjacent archive lives
	// in the same root); only a directory counts as a job.
	if !s.Exists(jobID) {
		return nil, entity.ErrJobNotFound
	}

	entries, err := os.ReadDir(s.JobDir(jobID))
	if err != nil {
		return nil, fmt.Errorf("read job dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jpg") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) ArchivePath(jobID string) string {
	return filepath.Join(s.root, jobID+".zip")
}

func (s *Store) RemoveJob(jobID string) error {
	return os.RemoveAll(s.JobDir(jobID))
}
