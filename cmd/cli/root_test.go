package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strategyalign/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T, portfolio, reference string) (string, string) {
	dir := t.TempDir()
	portfolioPath := filepath.Join(dir, "portfolio.csv")
	referencePath := filepath.Join(dir, "reference.csv")
	require.NoError(t, os.WriteFile(portfolioPath, []byte(portfolio), 0o644))
	require.NoError(t, os.WriteFile(referencePath, []byte(reference), 0o644))
	return portfolioPath, referencePath
}

func runCli(t *testing.T, args ...string) (string, error) {
	t.Setenv("ALIGN_ENV", "test")
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAnalyzeCmd(t *testing.T) {
	portfolioPath, referencePath := writeInputs(t,
		"Symbol,Weight\nAAA,10\nBBB,5\n",
		"Symbol,X,Y\nTSX:AAA,YES,NO\n",
	)

	t.Run("json", func(t *testing.T) {
		out, err := runCli(t, "analyze", "--portfolio", portfolioPath, "--reference", referencePath, "--format", "json")
		require.NoError(t, err)

		result := domain.AlignmentResult{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Equal(t, "X", result.Dominant.Strategy)
		require.Equal(t, 66.67, result.Dominant.WeightedPercent)
		require.Equal(t, []domain.Holding{{Symbol: "BBB", Weight: 5}}, result.Unmatched)
	})

	t.Run("csv", func(t *testing.T) {
		out, err := runCli(t, "analyze", "--portfolio", portfolioPath, "--reference", referencePath, "--format", "csv", "--table", "overlap")
		require.NoError(t, err)
		require.Equal(t, "strategies_qualified,holding_count\n0,1\n1,1\n2,0\n", out)
	})

	t.Run("table", func(t *testing.T) {
		out, err := runCli(t, "analyze", "--portfolio", portfolioPath, "--reference", referencePath)
		require.NoError(t, err)
		lines := strings.Split(out, "\n")
		require.True(t, strings.HasPrefix(lines[0], "RANK"))
		require.Contains(t, lines[1], "X")
		require.Contains(t, lines[1], "Gold")
		require.Contains(t, out, "Dominant Style: X (50% of holdings).")
	})

	t.Run("missing required flag", func(t *testing.T) {
		_, err := runCli(t, "analyze", "--portfolio", portfolioPath)
		require.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runCli(t, "analyze", "--portfolio", portfolioPath, "--reference", referencePath, "--format", "xml")
		require.Error(t, err)
	})

	t.Run("typed engine errors surface", func(t *testing.T) {
		badPortfolio, badReference := writeInputs(t, "Name\nAAA\n", "Symbol,X\nAAA,1\n")
		_, err := runCli(t, "analyze", "--portfolio", badPortfolio, "--reference", badReference)
		require.True(t, errors.Is(err, domain.ErrMissingColumn))
	})

	t.Run("config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("engine:\n  scoring_mode: weighted\n"), 0o644))
		out, err := runCli(t, "analyze", "--portfolio", portfolioPath, "--reference", referencePath, "--format", "json", "--config", configPath)
		require.NoError(t, err)

		result := domain.AlignmentResult{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Equal(t, 66.67, result.Dominant.AlignmentScore)
	})
}
