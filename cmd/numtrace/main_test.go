package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numtrace/engine"
	"github.com/katalvlaran/numtrace/iterative"
	"github.com/katalvlaran/numtrace/roots"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	a := newApp()
	var out, errOut bytes.Buffer
	a.stdout, a.stderr = &out, &errOut
	cmd := a.root()
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)

	return v
}

func TestBisectJSON(t *testing.T) {
	out, err := execute(t, "bisect", "-o", "json")
	require.NoError(t, err)
	v := decode(t, out)
	assert.Equal(t, "bisection", v["method"])
	assert.Equal(t, "converged", v["status"])
	root := v["root"].(map[string]any)
	assert.InDelta(t, 2.1049, root["root"], 1e-9)
	assert.NotEmpty(t, v["run_id"])
}

func TestTextHeading(t *testing.T) {
	out, err := execute(t, "bisect")
	require.NoError(t, err)
	assert.Contains(t, out, "bisection  status: converged\nLet f(x) = x³ - x² + x - 7\n")

	out, err = execute(t, "rk2", "--equation", "x*y + y**2")
	require.NoError(t, err)
	assert.Contains(t, out, "dy/dx = xy + y²")

	out, err = execute(t, "lu")
	require.NoError(t, err)
	assert.NotContains(t, out, "Let f(x)")
}

func TestLUText(t *testing.T) {
	out, err := execute(t, "lu")
	require.NoError(t, err)
	assert.Contains(t, out, "lu  status: solved")
	assert.Contains(t, out, "U[1][1] = ")
	assert.Contains(t, out, "x = [1.000, 2.000, 3.000]")
}

func TestMatrixFlag(t *testing.T) {
	out, err := execute(t, "gauss", "--matrix", "0,1,1; 1 1 2", "-o", "json")
	require.NoError(t, err)
	x := decode(t, out)["direct"].(map[string]any)["x"].([]any)
	require.Len(t, x, 2)
	assert.InDelta(t, 1, x[0], 1e-9)
	assert.InDelta(t, 1, x[1], 1e-9)

	out, err = execute(t, "lu", "--matrix", "1,2,3;2,4,6")
	require.NoError(t, err)
	assert.Contains(t, out, "status: singular")
	assert.Contains(t, out, "error: ")

	_, err = execute(t, "gauss", "--matrix", "1,a,3;4,5,b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1, column 2")
	assert.Contains(t, err.Error(), "row 2, column 3")
}

func TestIterativeFlags(t *testing.T) {
	out, err := execute(t, "seidel", "--tolerance", "1e-6", "-o", "json")
	require.NoError(t, err)
	v := decode(t, out)
	assert.Equal(t, "gauss-seidel", v["method"])
	it := v["iterative"].(map[string]any)
	assert.Equal(t, true, it["converged"])
	assert.InDelta(t, 2, it["x"].([]any)[1], 1e-5)

	out, err = execute(t, "jacobi", "--max-iterations", "2", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, engine.StatusNotConverged, decode(t, out)["status"])
}

func TestRK2Flags(t *testing.T) {
	out, err := execute(t, "rk2", "--h", "0.1", "--target-x", "0.2", "-o", "json")
	require.NoError(t, err)
	o := decode(t, out)["ode"].(map[string]any)
	assert.InDelta(t, 1.24205, o["final_y"], 1e-9)
	assert.EqualValues(t, 2, o["steps"])

	_, err = execute(t, "rk2", "--h", "-1")
	require.Error(t, err)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("NUMTRACE_DECIMALS", "2")
	t.Setenv("NUMTRACE_OUTPUT", "json")
	out, err := execute(t, "bisect")
	require.NoError(t, err)
	root := decode(t, out)["root"].(map[string]any)["root"].(float64)
	assert.InDelta(t, 2.1, root, 0.011)
	assert.InDelta(t, math.Round(root*100), root*100, 1e-9)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "numtrace.yaml", "output: json\nequation: x**2 - 2\ndecimals: 2\n")

	out, err := execute(t, "bisect", "--config", cfg)
	require.NoError(t, err)
	root := decode(t, out)["root"].(map[string]any)["root"].(float64)
	assert.InDelta(t, 1.41, root, 0.011)

	out, err = execute(t, "bisect", "--config", cfg, "--decimals", "6")
	require.NoError(t, err)
	root = decode(t, out)["root"].(map[string]any)["root"].(float64)
	assert.InDelta(t, math.Sqrt2, root, 1e-5)

	_, err = execute(t, "bisect", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInputFile(t *testing.T) {
	path := writeFile(t, "secant.yaml", "method: secant\nequation: x**2 - 2\nx0: 1\nx1: 2\n")

	out, err := execute(t, "secant", "--input", path, "-o", "json")
	require.NoError(t, err)
	root := decode(t, out)["root"].(map[string]any)
	assert.InDelta(t, 1.4142, root["root"], 1e-9)
	assert.EqualValues(t, 4, root["iterations"])

	_, err = execute(t, "lu", "--input", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "describes a secant problem")
}

func TestRunBatch(t *testing.T) {
	path := writeFile(t, "batch.yaml", `problems:
  - method: bisection
    equation: x**2 - 2
  - method: seidel
    matrix: [[4, 1, 9], [1, 3, 7]]
`)
	out, err := execute(t, "run", path, "-o", "json")
	require.NoError(t, err)
	var responses []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &responses))
	require.Len(t, responses, 2)
	assert.Equal(t, "bisection", responses[0]["method"])
	assert.Equal(t, "gauss-seidel", responses[1]["method"])
	x := responses[1]["iterative"].(map[string]any)["x"].([]any)
	assert.InDelta(t, 20.0/11, x[0], 1e-3)
	assert.InDelta(t, 19.0/11, x[1], 1e-3)

	out, err = execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bisection  status: converged")
	assert.Contains(t, out, "gauss-seidel  status: converged")
}

func TestInputKeysMatchConfigKeys(t *testing.T) {
	for _, doc := range []string{
		"method: rk2\nh: 0.1\ntarget-x: 0.2\n",
		"method: rk2\nh: 0.1\ntarget_x: 0.2\n",
	} {
		path := writeFile(t, "rk2.yaml", doc)
		out, err := execute(t, "rk2", "--input", path, "-o", "json")
		require.NoError(t, err)
		o := decode(t, out)["ode"].(map[string]any)
		assert.InDelta(t, 1.24205, o["final_y"], 1e-9, doc)
		assert.EqualValues(t, 2, o["steps"], doc)
	}

	for _, doc := range []string{
		"method: jacobi\nmax-iterations: 2\n",
		"method: jacobi\nmax_iterations: 2\n",
	} {
		path := writeFile(t, "jacobi.yaml", doc)
		out, err := execute(t, "jacobi", "--input", path, "-o", "json")
		require.NoError(t, err)
		assert.EqualValues(t, 2, decode(t, out)["iterative"].(map[string]any)["iterations"], doc)
	}

	cfg := writeFile(t, "numtrace.yaml", "max-iterations: 2\noutput: json\n")
	out, err := execute(t, "jacobi", "--config", cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 2, decode(t, out)["iterative"].(map[string]any)["iterations"])
}

func TestRunBatchFailures(t *testing.T) {
	path := writeFile(t, "bad.yaml", `problems:
  - method: lu
  - method: newton
`)
	_, err := execute(t, "run", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUnknownMethod)
	assert.Contains(t, err.Error(), "problem 2")

	path = writeFile(t, "partial.yaml", `problems:
  - method: lu
  - method: rk2
    h: 0
`)
	out, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem 2 (rk2)")
	assert.Contains(t, out, "lu  status: solved")
}

func TestParseMatrix(t *testing.T) {
	cases := []struct {
		in   string
		want [][]float64
		err  bool
	}{
		{"1,2,3;4,5,6", [][]float64{{1, 2, 3}, {4, 5, 6}}, false},
		{" 1 2 3 ; 4\t5 6 ;", [][]float64{{1, 2, 3}, {4, 5, 6}}, false},
		{"-1.5e1, .5", [][]float64{{-15, 0.5}}, false},
		{"", nil, true},
		{"1,x", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseMatrix(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, errInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToMatrixFromConfigList(t *testing.T) {
	got, err := toMatrix([]any{[]any{1, 2.5, "3"}, []any{4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2.5, 3}, {4, 5, 6}}, got)

	_, err = toMatrix(42)
	assert.ErrorIs(t, err, errInput)
}

func TestGlobalFlags(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "numtrace dev")

	_, err = execute(t, "bisect", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestHelpDefaults(t *testing.T) {
	root := newApp().root()
	cases := []struct {
		cmd  string
		want int
	}{
		{"secant", roots.DefaultMaxIterations},
		{"jacobi", iterative.DefaultMaxIterations},
		{"seidel", iterative.DefaultMaxIterations},
	}
	for _, tc := range cases {
		cmd, _, err := root.Find([]string{tc.cmd})
		require.NoError(t, err)
		flag := cmd.Flags().Lookup("max-iterations")
		require.NotNil(t, flag, tc.cmd)
		assert.Contains(t, flag.Usage, fmt.Sprintf("(default %d)", tc.want), tc.cmd)
	}
}
