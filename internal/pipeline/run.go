// Package pipeline provides the batch orchestration for scoring and ranking candidates
// against one job description.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-scorer/internal/logging"
	"github.com/jonathan/candidate-scorer/internal/parsing"
	"github.com/jonathan/candidate-scorer/internal/pipeline/steps"
	"github.com/jonathan/candidate-scorer/internal/ranking"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// DefaultWorkers is the worker count used when Options.Workers is not positive
const DefaultWorkers = 4

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// JobInput is the job description every candidate in a batch is scored against
type JobInput struct {
	Title       string
	Description string
}

// CandidateInput is one resume to score. Analysis is optional.
type CandidateInput struct {
	FileName string
	Text     string
	Analysis *types.AIAnalysis
}

// Options holds configuration for a batch run
type Options struct {
	Workers    int
	Extractor  *parsing.Extractor // nil uses the wall clock
	OnProgress ProgressCallback
	// Tracker records step status; nil starts a fresh tracker with inputs treated as loaded
	Tracker *steps.Tracker
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, message string, content any) {
	if opts.OnProgress == nil {
		return
	}
	opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: steps.StepRegistry[step].Category,
		Message:  message,
		Content:  content,
	})
}

// ScoreBatch extracts, scores, and ranks every candidate. Work is spread over a bounded
// number of goroutines; results do not depend on the worker count, and candidates with
// equal scores keep their submission order. Cancelling ctx stops scheduling new work and
// returns the context error.
func ScoreBatch(ctx context.Context, scorer *ranking.Scorer, job JobInput, candidates []CandidateInput, opts Options) ([]*types.ScoreResult, error) {
	if scorer == nil {
		return nil, errors.New("scorer is required")
	}
	logger := logging.Ctx(ctx)

	tracker := opts.Tracker
	if tracker == nil {
		tracker = steps.NewTracker()
		tracker.Complete(steps.LoadJob)
		tracker.Complete(steps.LoadCandidates)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	// Extract profiles
	if err := tracker.Start(steps.ExtractProfiles); err != nil {
		return nil, fmt.Errorf("failed to start extraction: %w", err)
	}
	profiles := make([]*types.CandidateProfile, len(candidates))
	err := forEach(ctx, workers, len(candidates), func(i int) {
		profiles[i] = opts.Extractor.Extract(candidates[i].Text, candidates[i].FileName)
		if profiles[i].ParsingFailed {
			logger.Warn().Str("file", candidates[i].FileName).Msg("resume text could not be extracted")
		}
	})
	if err != nil {
		tracker.Fail(steps.ExtractProfiles)
		return nil, fmt.Errorf("extraction cancelled: %w", err)
	}
	tracker.Complete(steps.ExtractProfiles)
	emitProgress(&opts, steps.ExtractProfiles, fmt.Sprintf("Extracted %d candidate profiles", len(profiles)), nil)

	// Score candidates
	if err := tracker.Start(steps.ScoreCandidates); err != nil {
		return nil, fmt.Errorf("failed to start scoring: %w", err)
	}
	results := make([]*types.ScoreResult, len(candidates))
	err = forEach(ctx, workers, len(candidates), func(i int) {
		results[i] = scorer.Score(profiles[i], job.Description, job.Title, candidates[i].Analysis)
		logger.Debug().
			Str("candidate", results[i].CandidateName).
			Str("file", results[i].FileName).
			Float64("total_score", results[i].TotalScore).
			Str("grade", results[i].Grade).
			Msg("candidate scored")
	})
	if err != nil {
		tracker.Fail(steps.ScoreCandidates)
		return nil, fmt.Errorf("scoring cancelled: %w", err)
	}
	tracker.Complete(steps.ScoreCandidates)
	emitProgress(&opts, steps.ScoreCandidates, fmt.Sprintf("Scored %d candidates", len(results)), nil)

	// Rank candidates
	if err := tracker.Start(steps.RankCandidates); err != nil {
		return nil, fmt.Errorf("failed to start ranking: %w", err)
	}
	ranked := ranking.Rank(results)
	tracker.Complete(steps.RankCandidates)
	emitProgress(&opts, steps.RankCandidates, fmt.Sprintf("Ranked %d candidates", len(ranked)), ranked)

	logger.Info().
		Str("job_title", job.Title).
		Int("candidates", len(ranked)).
		Int("workers", workers).
		Msg("batch ranked")

	return ranked, nil
}

// forEach runs fn for every index in [0, n) on at most workers goroutines.
func forEach(ctx context.Context, workers, n int, fn func(i int)) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if gCtx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
