package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/cleaning-estimator/internal/service"
)

const projectFile = `{
  "customer": {"name": "Jordan Reyes", "email": "jordan@reyes.test"},
  "project": {
    "project_name": "Tower B",
    "square_footage": 10000,
    "project_type": "office",
    "cleaning_type": "final"
  }
}`

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(projectFile), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, zerolog.Nop())
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_Table(t *testing.T) {
	out, err := run(t, "calc", "-f", writeProject(t))
	require.NoError(t, err)

	assert.Contains(t, out, "$2,200.00")
	assert.Contains(t, out, "crew of 2")
}

func TestCalc_JSON(t *testing.T) {
	out, err := run(t, "calc", "-f", writeProject(t), "--json")
	require.NoError(t, err)

	var result service.EstimateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2200.0, result.Estimate.TotalPrice)
}

func TestCalc_MinimumChargeFlag(t *testing.T) {
	out, err := run(t, "calc", "-f", writeProject(t), "--minimum-charge", "5000", "--json")
	require.NoError(t, err)

	var result service.EstimateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 5000.0, result.Estimate.TotalPrice)
	assert.True(t, result.Estimate.MinimumApplied)
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, "calc", "-f", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = run(t, "calc", "-f", writeProject(t), "--mode", "wizard")
	assert.Error(t, err)
}

func TestQuoteAndWorkbook_WriteFiles(t *testing.T) {
	dir := t.TempDir()
	project := writeProject(t)

	pdfPath := filepath.Join(dir, "quote.pdf")
	out, err := run(t, "quote", "-f", project, "-o", pdfPath, "--company", "Sparkle")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+pdfPath)

	content, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))

	xlsxPath := filepath.Join(dir, "estimate.xlsx")
	_, err = run(t, "workbook", "-f", project, "-o", xlsxPath)
	require.NoError(t, err)
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
