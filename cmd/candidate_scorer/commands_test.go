package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-scorer/internal/schemas"
	"github.com/jonathan/candidate-scorer/internal/types"
)

const testJob = `Senior Backend Engineer
We are seeking a Go and Python engineer with 5+ years experience building services on AWS.
Bachelor's degree required.`

const testResume = `JANE DOE
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe
Summary
Backend engineer with 7 years of experience building Go and Python services on AWS.
Skills: Go, Python, AWS, Docker
Bachelor of Science in Computer Science`

type fixture struct {
	dir    string
	job    string
	resume string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		job:    filepath.Join(dir, "job.txt"),
		resume: filepath.Join(dir, "jane_doe.txt"),
	}
	require.NoError(t, os.WriteFile(f.job, []byte(testJob), 0o644))
	require.NoError(t, os.WriteFile(f.resume, []byte(testResume), 0o644))
	return f
}

func TestCommands_Registered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range []string{"extract", "score", "rank", "prompt", "validate"} {
		assert.True(t, names[name], name)
	}
}

func TestCommands_RequiredFlags(t *testing.T) {
	tests := []struct {
		cmd      *cobra.Command
		required []string
	}{
		{extractCmd, []string{"resume"}},
		{scoreCmd, []string{"resume", "job"}},
		{rankCmd, []string{"resumes", "job"}},
		{promptCmd, []string{"resume", "job"}},
		{validateCmd, []string{"schema", "file"}},
	}

	for _, tt := range tests {
		for _, name := range tt.required {
			flag := tt.cmd.Flags().Lookup(name)
			require.NotNil(t, flag, "%s --%s", tt.cmd.Name(), name)
			assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag], "%s --%s", tt.cmd.Name(), name)
		}
	}
}

func TestRunExtract(t *testing.T) {
	f := newFixture(t)
	var out, diag bytes.Buffer

	err := runExtract(context.Background(), extractOptions{ResumePath: f.resume, Verbose: true}, &out, &diag)
	require.NoError(t, err)

	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(out.Bytes(), &profile))
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane_doe.txt", profile.FileName)
	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, diag.String(), "CANDIDATE PROFILE")
}

func TestRunExtract_UnreadableResume(t *testing.T) {
	var out bytes.Buffer

	err := runExtract(context.Background(), extractOptions{ResumePath: filepath.Join(t.TempDir(), "scan.pdf")}, &out, &out)
	require.NoError(t, err)

	var profile types.CandidateProfile
	require.NoError(t, json.Unmarshal(out.Bytes(), &profile))
	assert.True(t, profile.ParsingFailed)
}

func TestRunScore(t *testing.T) {
	f := newFixture(t)
	outPath := filepath.Join(f.dir, "out", "score.json")
	var out, diag bytes.Buffer

	err := runScore(context.Background(), scoreOptions{
		ResumePath: f.resume,
		JobPath:    f.job,
		AIPath:     "../../testdata/valid/ai_analysis.json",
		OutPath:    outPath,
		Verbose:    true,
	}, &out, &diag)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "CANDIDATE SCORE")

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(content, &result))

	assert.Equal(t, "Jane Doe", result.CandidateName)
	assert.Equal(t, types.DefaultStatus, result.Status)
	require.NotNil(t, result.Insights)
	assert.Equal(t, 5.0, result.Insights.Adjustment)
	assert.GreaterOrEqual(t, result.TotalScore, 0.0)
	assert.LessOrEqual(t, result.TotalScore, 100.0)
}

func TestRunScore_UnusableAnalysisIgnored(t *testing.T) {
	f := newFixture(t)
	aiPath := filepath.Join(f.dir, "bad.ai.json")
	require.NoError(t, os.WriteFile(aiPath, []byte("provider timed out"), 0o644))
	var out bytes.Buffer

	err := runScore(context.Background(), scoreOptions{ResumePath: f.resume, JobPath: f.job, AIPath: aiPath}, &out, &out)
	require.NoError(t, err)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Nil(t, result.Insights)
}

func TestRunScore_MissingJob(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	err := runScore(context.Background(), scoreOptions{ResumePath: f.resume, JobPath: filepath.Join(f.dir, "missing.txt")}, &out, &out)
	assert.Error(t, err)
}

func TestRunRank(t *testing.T) {
	f := newFixture(t)
	resumes := filepath.Join(f.dir, "resumes")
	require.NoError(t, os.Mkdir(resumes, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(resumes, "a_john.txt"), []byte("JOHN SMITH\nGraphic designer."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(resumes, "b_jane.txt"), []byte(testResume), 0o644))
	var out, diag bytes.Buffer

	err := runRank(context.Background(), rankOptions{
		ResumesDir: resumes,
		JobPath:    f.job,
		Title:      "Backend Engineer",
		Workers:    2,
		Verbose:    true,
	}, &out, &diag)
	require.NoError(t, err)

	var ranked types.RankedCandidates
	require.NoError(t, json.Unmarshal(out.Bytes(), &ranked))
	assert.Equal(t, "Backend Engineer", ranked.JobTitle)
	require.Len(t, ranked.Ranked, 2)
	assert.Equal(t, "b_jane.txt", ranked.Ranked[0].FileName)
	assert.Equal(t, 1, ranked.Ranked[0].Rank)
	assert.Contains(t, diag.String(), "CANDIDATE RANKING")
	assert.Contains(t, diag.String(), "TOP CANDIDATES")
}

func TestRunPrompt(t *testing.T) {
	f := newFixture(t)
	answersPath := filepath.Join(f.dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`[{"question":"Why this role?","answer":"I love distributed systems."}]`), 0o644))
	var out bytes.Buffer

	err := runPrompt(promptOptions{ResumePath: f.resume, JobPath: f.job, AnswersPath: answersPath}, &out)
	require.NoError(t, err)

	prompt := out.String()
	assert.Contains(t, prompt, "JOB TITLE: Senior Backend Engineer")
	assert.Contains(t, prompt, "-20 and +20")
	assert.Contains(t, prompt, "JANE DOE")
	assert.Contains(t, prompt, "Q: Why this role?")
}

func TestRunPrompt_InvalidAnswers(t *testing.T) {
	f := newFixture(t)
	answersPath := filepath.Join(f.dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`{not json`), 0o644))
	var out bytes.Buffer

	err := runPrompt(promptOptions{ResumePath: f.resume, JobPath: f.job, AnswersPath: answersPath}, &out)
	assert.Error(t, err)
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runValidate("ai_analysis", "../../testdata/valid/ai_analysis.json", &out))
	assert.Contains(t, out.String(), "matches ai_analysis.schema.json")

	out.Reset()
	require.NoError(t, runValidate("score_result.schema.json", "../../testdata/valid/score_result.json", &out))

	err := runValidate("score_result", "../../testdata/invalid/score_out_of_range.json", &out)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)

	err = runValidate("resume", "../../testdata/valid/score_result.json", &out)
	var loadErr *schemas.SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestRunExtract_OutputMatchesSchema(t *testing.T) {
	f := newFixture(t)
	outPath := filepath.Join(f.dir, "profile.json")
	var out bytes.Buffer

	require.NoError(t, runExtract(context.Background(), extractOptions{ResumePath: f.resume, OutPath: outPath}, &out, &out))
	assert.NoError(t, runValidate("candidate_profile", outPath, &out))
}

func TestLoadScorer(t *testing.T) {
	t.Setenv(configEnvVar, "")
	scorer, err := loadScorer("")
	require.NoError(t, err)
	assert.Equal(t, 20.0, scorer.Config().MaxAdjustment)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "scoring.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("max_adjustment: 10\n"), 0o644))

	t.Setenv(configEnvVar, yamlPath)
	scorer, err = loadScorer("")
	require.NoError(t, err)
	assert.Equal(t, 10.0, scorer.Config().MaxAdjustment)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("weights:\n  relevance: 0.9\n"), 0o644))
	_, err = loadScorer(badPath)
	assert.Error(t, err)
}
