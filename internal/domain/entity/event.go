package entity

// ExtractionStatus labels the terminal state of an extraction.
type ExtractionStatus string

const (
	ExtractionCompleted ExtractionStatus = "COMPLETED"
	ExtractionFailed    ExtractionStatus = "FAILED"
)

// ExtractionEvent is the message published after an extraction finishes.
// Publishing is best-effort and happens after the outcome is decided, so
// consumers observe results only, never progress.
type ExtractionEvent struct {
	JobID        string           `json:"job_id"`
	Status       ExtractionStatus `json:"status"`
	Mode         Mode             `json:"mode"`
	Threshold    float64          `json:"threshold"`
	FrameCount   int              `json:"frame_count,omitempty"`
	Duration     float64          `json:"duration_seconds,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
}
