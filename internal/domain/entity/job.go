package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode selects the frame extraction strategy.
type Mode string

const (
	// ModeScene keeps one frame per detected scene transition.
	ModeScene Mode = "scene"
	// ModeAll samples frames at a fixed rate regardless of content.
	ModeAll Mode = "all"
)

// ParseMode validates a client-supplied mode string. The empty string
// falls back to scene mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeScene, ModeAll:
		return Mode(s), nil
	case "":
		return ModeScene, nil
	default:
		return "", ErrInvalidMode
	}
}

// Job is one upload-to-extraction unit of work. Its only durable state is
// the directory of extracted frames; everything else here describes the
// in-flight request.
type Job struct {
	ID         string
	Mode       Mode
	Threshold  float64
	SourceName string
	FrameCount int
	Duration   float64
	CreatedAt  time.Time
}

// NewJob allocates a fresh job identity. IDs are the hex form of a v4
// UUID so they are URL-safe and never reused across uploads.
func NewJob(sourceName string, mode Mode, threshold float64) *Job {
	return &Job{
		ID:         strings.ReplaceAll(uuid.New().String(), "-", ""),
		Mode:       mode,
		Threshold:  threshold,
		SourceName: sourceName,
		CreatedAt:  time.Now().UTC(),
	}
}
