package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/dosecurve/internal/hash"
	"github.com/stretchr/testify/require"
)

const cirResults = `is_aace,is_log_y,Equation with Coefficients,test_mdape,test_rmse,X_intercept,BMI,CHO,1/TDD,log_TDD
True,False,CIR = 450/TDD,0.41,6.2,,,,450,
False,False,CIR = 2.000 + 400.000*1/TDD,0.2,4.1,2,,,400,
False,True,ln(CIR) = 6.000 - 0.900*ln(TDD+1),0.3,5.3,6,,,,-0.9
False,False,CIR = 1.000 + 0.050*BMI + 0.001*CHO + 380.000*1/TDD,0.25,4.6,1,0.05,0.001,380,
`

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeCIRResults(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test_eval__CIR__2024-09-07.csv")
	require.NoError(t, os.WriteFile(path, []byte(cirResults), 0o644))

	return dir
}

// tableRow returns the whitespace-separated fields of the first output line starting with prefix.
func tableRow(out, prefix string) []string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.Fields(line)
		}
	}

	return nil
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "usage: dosecurve")

	code, _, stderr = runCLI(t, "help")
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "explore")

	code, _, stderr = runCLI(t, "plot")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, `unknown command "plot"`)

	code, _, _ = runCLI(t, "catalog", "--help")
	require.Equal(t, 0, code)
}

func TestCatalog(t *testing.T) {
	code, stdout, _ := runCLI(t, "catalog", "--kinds")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Equal(t, "BMI: 12.0, CHO: 0", lines[0])
	require.Equal(t, "BMI: 45.0, CHO: 500", lines[8])
	require.Contains(t, stdout, "CIR   CIR = 450 / TDD")
}

func TestExplore_Basal(t *testing.T) {
	code, stdout, stderr := runCLI(t, "explore", "--kind", "BASAL", "--beta3", "0.5")
	require.Equal(t, 0, code, stderr)

	require.Contains(t, stdout, "AACE:     BASAL = 0.5 * TDD")
	require.Contains(t, stdout, "New:      BASAL = 0.000 + 0.000*BMI + 0.00*CHO + 0.500*TDD")
	require.Equal(t, []string{"24", "12.00", "12.00", "0.50", "0.50"}, tableRow(stdout, "24 "))
	require.Contains(t, stdout, "half of the Total Daily Dose")
}

func TestExplore_CarbRatio(t *testing.T) {
	code, stdout, stderr := runCLI(t, "explore",
		"--kind", "CIR", "--tdd-term", "1/TDD", "--beta0", "2", "--beta3", "400", "--sweep-max", "100")
	require.Equal(t, 0, code, stderr)

	require.Contains(t, stdout, "New:      CIR = 2.000 + 0.000*BMI + 0.00*CHO + 400.000*1/TDD")
	require.Equal(t, []string{"10", "45.00", "42.00"}, tableRow(stdout, "10 "))
	require.Nil(t, tableRow(stdout, "200 "))
}

func TestExplore_ParamsAndFigure(t *testing.T) {
	dir := t.TempDir()
	params := filepath.Join(dir, "isf.yaml")
	require.NoError(t, os.WriteFile(params, []byte(`
kind: ISF
terms:
  tdd: 1/TDD
coefficients:
  tdd: 1500
fixed:
  bmi: 25
  cho: 250
`), 0o644))

	out := filepath.Join(dir, "isf")
	code, stdout, stderr := runCLI(t, "explore", "--params", params, "--beta3", "1800",
		"--renderer", "json", "--out", out)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "1800.000*1/TDD")
	require.Contains(t, stderr, "wrote figure")

	data, err := os.ReadFile(out + ".json")
	require.NoError(t, err)

	var fig struct {
		Title string `json:"title"`
		YAxis struct {
			Type string `json:"type"`
		} `json:"yaxis"`
		Traces []struct {
			Name string `json:"name"`
		} `json:"traces"`
	}
	require.NoError(t, json.Unmarshal(data, &fig))
	require.Equal(t, "ISF vs Total Daily Dose", fig.Title)
	require.Equal(t, "log", fig.YAxis.Type)
	require.Equal(t, "AACE: ISF = 1700 / TDD", fig.Traces[0].Name)
}

func TestExplore_Errors(t *testing.T) {
	code, _, stderr := runCLI(t, "explore", "--kind", "HBA1C")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid calculation kind")

	code, _, stderr = runCLI(t, "explore", "--bmi", "30")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid fixed input")
	require.Contains(t, stderr, "not a catalog combination")

	code, _, stderr = runCLI(t, "explore", "--kind", "ISF", "--tdd-term", "sqrt")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid term transform")

	code, _, _ = runCLI(t, "explore", "--renderer", "plotly")
	require.Equal(t, 1, code)

	code, _, _ = runCLI(t, "explore", "--no-such-flag")
	require.Equal(t, 1, code)
}

func TestResults(t *testing.T) {
	dir := writeCIRResults(t)

	code, stdout, stderr := runCLI(t, "results", "--results-dir", dir, "--kind", "CIR", "--list",
		"--combo", "BMI: 25.0, CHO: 250")
	require.Equal(t, 0, code, stderr)

	require.Contains(t, stdout, "[1] CIR = 2.000 + 400.000*1/TDD [MdAPE: 0.200,  RMSE: 4.100]")
	require.Contains(t, stdout, "[3] ln(CIR) = 6.000 - 0.900*ln(TDD+1) [MdAPE: 0.300,  RMSE: 5.300]")
	require.Equal(t, []string{"A", "AACE", "CIR", "=", "450/TDD", "0.410", "6.200"}, tableRow(stdout, "A "))
	require.Equal(t, "Selected", tableRow(stdout, "1 ")[1])
	require.Contains(t, stdout, "Inputs: BMI: 25.0, CHO: 250, TDD 1..500")
	// 2 + 400/TDD meets 450/TDD where 50/TDD = 2
	require.Contains(t, stdout, "Crossings: TDD 25.00")

	require.Contains(t, stdout, "1. AACE method: CIR = 450 / TDD\n   This method uses a constant")
	require.Contains(t, stdout, "2. Selected method: CIR = 2.000 + 400.000*1/TDD\n")
	require.Contains(t, stdout, "alternative calculation for CIR based on the Total Daily Dose, BMI, and CHO intake.")
}

func TestResults_SelectByIDAndFigure(t *testing.T) {
	dir := writeCIRResults(t)
	id := fmt.Sprintf("%016x", hash.EquationID("CIR = 1.000 + 0.050*BMI + 0.001*CHO + 380.000*1/TDD"))
	out := filepath.Join(dir, "cir.json")

	code, stdout, stderr := runCLI(t, "results", "--results-dir", dir, "--kind", "cir", "--id", id,
		"--renderer", "json", "--out", out)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "Selected", tableRow(stdout, "2 ")[1])

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "Selected: CIR = 1.000 + 0.050*BMI + 0.001*CHO + 380.000*1/TDD")
}

func TestResults_Errors(t *testing.T) {
	dir := writeCIRResults(t)

	code, _, stderr := runCLI(t, "results", "--results-dir", dir, "--kind", "CIR", "--rank", "9")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "candidate rank out of range")

	code, _, stderr = runCLI(t, "results", "--results-dir", dir, "--kind", "ISF")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "test_eval__ISF__2024-09-07.csv")

	code, _, stderr = runCLI(t, "results", "--results-dir", dir, "--kind", "CIR", "--bmi", "25", "--cho", "100")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "not a catalog combination")

	code, _, stderr = runCLI(t, "results", "--results-dir", dir, "--kind", "CIR", "--id", "zz")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "candidate not found")
}

func TestPack(t *testing.T) {
	dir := writeCIRResults(t)

	code, stdout, stderr := runCLI(t, "pack", "--results-dir", dir, "--codec", "s2")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "test_eval__CIR__2024-09-07.csv.s2")
	require.Contains(t, stdout, "S2:")

	// the packed file is read transparently once the plain file is gone
	require.NoError(t, os.Remove(filepath.Join(dir, "test_eval__CIR__2024-09-07.csv")))
	code, stdout, stderr = runCLI(t, "results", "--results-dir", dir, "--kind", "CIR")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "CIR = 2.000 + 400.000*1/TDD")

	code, _, _ = runCLI(t, "pack", "--results-dir", dir, "--codec", "gzip")
	require.Equal(t, 1, code)
	code, _, _ = runCLI(t, "pack", "--results-dir", dir, "--codec", "none")
	require.Equal(t, 1, code)
	code, _, stderr = runCLI(t, "pack", "--results-dir", t.TempDir())
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "nothing to pack")
}
