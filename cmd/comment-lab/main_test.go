package main

import (
	"bytes"
	"comment-lab/errors"
	"comment-lab/internal"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFile = "../../testdata/comments.csv"

func testConfig() internal.Config {
	return internal.Config{
		LogLevel:           "ERROR",
		Embedder:           "skipgram",
		VectorSize:         8,
		MinCount:           1,
		Window:             5,
		Negative:           5,
		Epochs:             5,
		LearningRate:       0.025,
		ClusterCount:       2,
		Seed:               123,
		MaxIterations:      20,
		Workers:            2,
		RedactionCharacter: "*",
	}
}

func execute(t *testing.T, config internal.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&config)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAnalyze_RendersChartAndTable(t *testing.T) {
	req := require.New(t)

	out, err := execute(t, testConfig(), "analyze", sampleFile, "--colours=false", "--redact", "awful")
	req.NoError(err)
	req.Contains(out, "Good |")
	req.Contains(out, "Bad  |")
	req.Contains(out, "Prediction")
	req.Contains(out, "Comments")
	req.Contains(out, "*****")
	req.NotContains(out, "awful")
}

func TestAnalyze_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		isConfig bool
	}{
		{name: "Missing file", args: []string{"analyze", filepath.Join(t.TempDir(), "missing.csv")}},
		{name: "No file at all", args: []string{"analyze"}, isConfig: true},
		{name: "Non positive cluster count", args: []string{"analyze", sampleFile, "-k", "0"}, isConfig: true},
		{name: "Unknown embedder", args: []string{"analyze", sampleFile, "--embedder", "bert"}, isConfig: true},
		{name: "Unknown log level", args: []string{"analyze", sampleFile, "--log-level", "LOUD"}, isConfig: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			out, err := execute(t, testConfig(), tt.args...)
			req.Error(err)
			req.Empty(out)
			req.Equal(tt.isConfig, errors.Is(err, errConfig))
		})
	}
}

func TestHistory_And_Search(t *testing.T) {
	req := require.New(t)
	config := testConfig()
	config.BadgerFilepath = t.TempDir()
	config.BlugeFilepath = t.TempDir()

	_, err := execute(t, config, "analyze", sampleFile, "--colours=false")
	req.NoError(err)

	out, err := execute(t, config, "history")
	req.NoError(err)
	req.Contains(out, sampleFile)
	req.Contains(out, "VOCABULARY")

	out, err = execute(t, config, "search", "damaged", "-n", "3")
	req.NoError(err)
	req.Contains(out, "damaged")
}

func TestHistory_WithoutArchive(t *testing.T) {
	req := require.New(t)

	_, err := execute(t, testConfig(), "history")
	req.Error(err)
	req.True(errors.Is(err, errors.ErrArchiveDisabled))
}

func TestSearch_RejectsNonPositiveLimit(t *testing.T) {
	req := require.New(t)
	config := testConfig()
	config.BlugeFilepath = t.TempDir()

	out, err := execute(t, config, "search", "damaged", "-n", "0")
	req.Error(err)
	req.Empty(out)
	req.True(errors.Is(err, errConfig))
}
