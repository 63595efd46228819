// Package steps provides step definitions, dependency validation, and progress tracking
// for the candidate scoring pipeline.
package steps

import (
	"fmt"
	"sort"
	"sync"
)

// Step categories
const (
	CategoryIngestion  = "ingestion"
	CategoryExtraction = "extraction"
	CategoryScoring    = "scoring"
)

// Step names
const (
	LoadJob         = "load_job"
	LoadCandidates  = "load_candidates"
	ExtractProfiles = "extract_profiles"
	ScoreCandidates = "score_candidates"
	RankCandidates  = "rank_candidates"
)

// Step statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	LoadJob: {
		Name:         LoadJob,
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	LoadCandidates: {
		Name:         LoadCandidates,
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	ExtractProfiles: {
		Name:         ExtractProfiles,
		Category:     CategoryExtraction,
		Dependencies: []string{LoadCandidates},
	},
	ScoreCandidates: {
		Name:         ScoreCandidates,
		Category:     CategoryScoring,
		Dependencies: []string{LoadJob, ExtractProfiles},
	},
	RankCandidates: {
		Name:         RankCandidates,
		Category:     CategoryScoring,
		Dependencies: []string{ScoreCandidates},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s has missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Tracker records the status of each step in one pipeline run. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	statuses map[string]string
}

// NewTracker returns a tracker with every step pending.
func NewTracker() *Tracker {
	return &Tracker{statuses: make(map[string]string)}
}

// Status returns the current status of a step.
func (t *Tracker) Status(stepName string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status(stepName)
}

func (t *Tracker) status(stepName string) string {
	if status, ok := t.statuses[stepName]; ok {
		return status
	}
	return StatusPending
}

// Start validates a step's dependencies and marks it in progress.
func (t *Tracker) Start(stepName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.validate(stepName); err != nil {
		return err
	}
	t.statuses[stepName] = StatusInProgress
	return nil
}

// Complete marks a step completed.
func (t *Tracker) Complete(stepName string) {
	t.set(stepName, StatusCompleted)
}

// Fail marks a step failed.
func (t *Tracker) Fail(stepName string) {
	t.set(stepName, StatusFailed)
}

func (t *Tracker) set(stepName, status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses[stepName] = status
}

// ValidateDependencies checks if all required dependencies for a step are completed
func (t *Tracker) ValidateDependencies(stepName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.validate(stepName)
}

func (t *Tracker) validate(stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if t.status(dep) != StatusCompleted {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// AvailableSteps returns pending or failed steps whose dependencies are met, sorted by name
func (t *Tracker) AvailableSteps() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var available []string
	for stepName := range StepRegistry {
		status := t.status(stepName)
		if status == StatusCompleted || status == StatusInProgress {
			continue
		}
		if t.validate(stepName) != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// BlockedSteps returns unfinished steps whose dependencies are not met, sorted by name
func (t *Tracker) BlockedSteps() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var blocked []string
	for stepName := range StepRegistry {
		status := t.status(stepName)
		if status == StatusCompleted || status == StatusInProgress {
			continue
		}
		if t.validate(stepName) != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}
