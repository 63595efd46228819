package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/candidate-scorer/internal/fusion"
	"github.com/jonathan/candidate-scorer/internal/ingestion"
	"github.com/jonathan/candidate-scorer/internal/logging"
	"github.com/jonathan/candidate-scorer/internal/pipeline/steps"
	"github.com/jonathan/candidate-scorer/internal/ranking"
	"github.com/jonathan/candidate-scorer/internal/types"
)

// AnalysisSuffix names the optional AI analysis file stored next to a resume:
// jane_doe.txt pairs with jane_doe.ai.json
const AnalysisSuffix = ".ai.json"

// unreadableExtensions are resume formats that need an external text extractor. They are
// kept in the batch so they surface as parsing failures for manual review.
var unreadableExtensions = map[string]bool{
	".doc": true,
	".rtf": true,
}

// RunOptions holds configuration for loading and ranking a directory of resumes
type RunOptions struct {
	JobPath    string
	JobTitle   string
	ResumesDir string
	Options
}

// Run loads a job description and a directory of resumes, then scores and ranks them.
func Run(ctx context.Context, scorer *ranking.Scorer, opts RunOptions) (*types.RankedCandidates, error) {
	tracker := steps.NewTracker()
	opts.Tracker = tracker

	if err := tracker.Start(steps.LoadJob); err != nil {
		return nil, err
	}
	job, err := LoadJob(opts.JobPath, opts.JobTitle)
	if err != nil {
		tracker.Fail(steps.LoadJob)
		return nil, err
	}
	tracker.Complete(steps.LoadJob)
	emitProgress(&opts.Options, steps.LoadJob, fmt.Sprintf("Loaded job description from %s", opts.JobPath), nil)

	if err := tracker.Start(steps.LoadCandidates); err != nil {
		return nil, err
	}
	candidates, err := LoadCandidates(ctx, opts.ResumesDir)
	if err != nil {
		tracker.Fail(steps.LoadCandidates)
		return nil, err
	}
	tracker.Complete(steps.LoadCandidates)
	emitProgress(&opts.Options, steps.LoadCandidates, fmt.Sprintf("Loaded %d resumes from %s", len(candidates), opts.ResumesDir), nil)

	ranked, err := ScoreBatch(ctx, scorer, job, candidates, opts.Options)
	if err != nil {
		return nil, err
	}
	return &types.RankedCandidates{JobTitle: job.Title, Ranked: ranked}, nil
}

// LoadJob reads a job description document. An empty title falls back to the first line
// of the description.
func LoadJob(path, title string) (JobInput, error) {
	description, err := ingestion.LoadDocument(path)
	if err != nil {
		return JobInput{}, fmt.Errorf("failed to load job description: %w", err)
	}
	if strings.TrimSpace(description) == "" {
		return JobInput{}, fmt.Errorf("job description %s is empty", path)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = firstLine(description)
	}
	return JobInput{Title: title, Description: description}, nil
}

// LoadCandidates reads every resume in dir, in file name order, together with its optional
// AI analysis sidecar. Unreadable resumes become empty inputs rather than errors; a sidecar
// that fails to decode is logged and ignored.
func LoadCandidates(ctx context.Context, dir string) ([]CandidateInput, error) {
	logger := logging.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resumes directory: %w", err)
	}

	candidates := make([]CandidateInput, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || strings.HasSuffix(name, AnalysisSuffix) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if !ingestion.IsSupported(name) && !unreadableExtensions[ext] {
			logger.Debug().Str("file", name).Msg("skipping non-resume file")
			continue
		}

		path := filepath.Join(dir, name)
		candidate := CandidateInput{
			FileName: name,
			Text:     ingestion.ReadDocument(path),
		}

		analysisPath := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name))+AnalysisSuffix)
		if raw, err := os.ReadFile(analysisPath); err == nil {
			analysis, err := fusion.DecodeAnalysis(raw)
			if err != nil {
				logger.Warn().Err(err).Str("file", analysisPath).Msg("ignoring unusable AI analysis")
			} else {
				candidate.Analysis = analysis
			}
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
