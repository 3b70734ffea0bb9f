package model

import "time"

// RunStatus represents the current state of a sort run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one invocation of the organizer over a source folder.
type Run struct {
	ID        string     `json:"id"`
	SourceDir string     `json:"source_dir"`
	TargetDir string     `json:"target_dir"`
	DryRun    bool       `json:"dry_run"`
	Status    RunStatus  `json:"status"`
	Summary   RunSummary `json:"summary"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RunSummary counts per-category outcomes of a run.
type RunSummary struct {
	Company      int `json:"company"`
	Industry     int `json:"industry"`
	Unclassified int `json:"unclassified"`
	Failed       int `json:"failed"`
}

// Total returns the number of files the run handled.
func (s RunSummary) Total() int {
	return s.Company + s.Industry + s.Unclassified + s.Failed
}

// FileRecord is the ledger entry for a single processed file.
type FileRecord struct {
	ID         string    `json:"id"`
	RunID      string    `json:"run_id"`
	SourceName string    `json:"source_name"`
	Category   Category  `json:"category"`
	Entity     string    `json:"entity,omitempty"`
	Strategy   string    `json:"strategy,omitempty"`
	TargetPath string    `json:"target_path,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
