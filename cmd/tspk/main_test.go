// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspk/dataset"
)

const sampleData = "1,2\n2,4\n1000,1000\n"

// run executes the command tree with args and returns the log output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	cmd := newRootCmd(newApp(&logs))
	cmd.SetArgs(args)
	cmd.SetOut(&logs)
	cmd.SetErr(&logs)
	err := cmd.ExecuteContext(context.Background())
	return logs.String(), err
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readTemp(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestEncodeSample(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "in.csv", sampleData)
	cfg := writeTemp(t, dir, "cfg.yaml", "name: sample\n")
	out := filepath.Join(dir, "out.tsp")

	logs, err := run(t, "--config", cfg, "encode", in, out, "1", "3", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, "encoded")

	assert.Equal(t, `NAME: sample
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: UPPER_ROW
EDGE_WEIGHT_SECTION
0 5000 0 
5000 0 
0 
`, readTemp(t, out))
}

func TestDecodeSample(t *testing.T) {
	dir := t.TempDir()
	tour := writeTemp(t, dir, "in.tour", "4\n0 1 3 2\n")
	in := writeTemp(t, dir, "in.csv", sampleData)
	out := filepath.Join(dir, "out.csv")
	bnd := filepath.Join(dir, "out.bnd")
	mapping := filepath.Join(dir, "out.map")
	summary := filepath.Join(dir, "out.tsv")

	_, err := run(t, "decode", "--boundaries", bnd, "--mapping", mapping, "--summary", summary,
		tour, in, out, "1", "3", "2")
	require.NoError(t, err)

	assert.Equal(t, "0,0\n1,2\n2,4\n", readTemp(t, out))
	assert.Equal(t, "2\n", readTemp(t, bnd))
	assert.Equal(t, "1\n2\n0\n", readTemp(t, mapping))
	assert.Equal(t, "0\t3\t0\t2\t1.5\t3\n", readTemp(t, summary))
}

func TestDecodeOneBased(t *testing.T) {
	dir := t.TempDir()
	tour := writeTemp(t, dir, "in.tour", "4 1 2 4 3")
	in := writeTemp(t, dir, "in.csv", sampleData)
	out := filepath.Join(dir, "out.csv")

	_, err := run(t, "decode", "--one-based", tour, in, out, "1", "3", "2")
	require.NoError(t, err)
	assert.Equal(t, "0,0\n1,2\n2,4\n", readTemp(t, out))

	// The same file read as 0-based names node 4, which does not exist.
	_, err = run(t, "decode", tour, in, out, "1", "3", "2")
	require.Error(t, err)
}

// TestEncodeSolveDecode chains the three commands through compressed files.
func TestEncodeSolveDecode(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "in.csv", "1,2,3,4\n4,3,2,1\n2,4,6,8\n8,6,4,2\n")
	inst := filepath.Join(dir, "inst.tsp.zst")
	tour := filepath.Join(dir, "inst.tour.gz")
	out := filepath.Join(dir, "out.csv")
	bnd := filepath.Join(dir, "out.bnd")

	_, err := run(t, "encode", in, inst, "2", "4", "4")
	require.NoError(t, err)
	_, err = run(t, "solve", "--one-based", "--restarts", "3", inst, tour)
	require.NoError(t, err)
	_, err = run(t, "decode", "--one-based", "--boundaries", bnd, tour, in, out, "2", "4", "4")
	require.NoError(t, err)

	assertGroups(t, readTemp(t, out), readTemp(t, bnd))
}

func TestCluster(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "in.csv", "1,2,3,4\n4,3,2,1\n2,4,6,8\n8,6,4,2\n")
	out := filepath.Join(dir, "out.csv")
	bnd := filepath.Join(dir, "out.bnd")
	inst := filepath.Join(dir, "inst.tsp")
	tour := filepath.Join(dir, "inst.tour")

	logs, err := run(t, "--log-format", "json", "cluster",
		"--boundaries", bnd, "--tsp", inst, "--tour", tour, in, out, "2", "4", "4")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"clustered"`)

	assertGroups(t, readTemp(t, out), readTemp(t, bnd))
	assert.True(t, strings.HasPrefix(readTemp(t, inst), "NAME: tspk\n"))
	assert.True(t, strings.HasPrefix(readTemp(t, tour), "6\n"))
}

// assertGroups checks that the two rising rows and the two falling rows end
// up in different clusters.
func assertGroups(t *testing.T, out, bnd string) {
	t.Helper()
	data, err := dataset.Load(strings.NewReader(out), 4, 4)
	require.NoError(t, err)
	lines := strings.Fields(bnd)
	require.Len(t, lines, 2)

	rising := func(i int) bool {
		a, _ := data.Value(i, 0)
		b, _ := data.Value(i, 3)
		return a < b
	}
	var split int
	switch lines[0] {
	case "1":
		split = 2
	case "-1", "3":
		t.Fatalf("groups were not separated: boundaries %v", lines)
	default:
		t.Fatalf("unexpected boundary %q", lines[0])
	}
	assert.Equal(t, rising(0), rising(1))
	assert.Equal(t, rising(split), rising(split+1))
	assert.NotEqual(t, rising(0), rising(split))
}

func TestArgumentErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeTemp(t, dir, "in.csv", sampleData)
	out := filepath.Join(dir, "out")

	tests := []struct {
		name string
		args []string
	}{
		{"missing args", []string{"encode", in, out}},
		{"bad K", []string{"encode", in, out, "zero", "3", "2"}},
		{"zero K", []string{"encode", in, out, "0", "3", "2"}},
		{"wrong n", []string{"encode", in, out, "1", "4", "2"}},
		{"missing input", []string{"encode", filepath.Join(dir, "nope.csv"), out, "1", "3", "2"}},
		{"bad log level", []string{"--log-level", "loud", "encode", in, out, "1", "3", "2"}},
		{"missing config", []string{"--config", filepath.Join(dir, "nope.yaml"), "encode", in, out, "1", "3", "2"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
		})
	}
}
