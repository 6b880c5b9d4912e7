package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipparndt/gobounds/pkg/boxfile"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSTL writes an ASCII STL with one facet per three vertices
func writeSTL(t *testing.T, name string, vertices ...[3]float64) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "solid %s\n", strings.TrimSuffix(name, ".stl"))
	for i := 0; i+2 < len(vertices); i += 3 {
		b.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for _, v := range vertices[i : i+3] {
			fmt.Fprintf(&b, "      vertex %g %g %g\n", v[0], v[1], v[2])
		}
		b.WriteString("    endloop\n  endfacet\n")
	}
	b.WriteString("endsolid\n")

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func firstBox(t *testing.T) string {
	return writeSTL(t, "first.stl", [3]float64{-2, 3, 5}, [3]float64{4, -2, 1}, [3]float64{0, 0, 3})
}

func secondBox(t *testing.T) string {
	return writeSTL(t, "second.stl", [3]float64{3, 1, 3}, [3]float64{8, 2, 7}, [3]float64{5, 1, 5})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--precision", "2", firstBox(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Name: first")
	assert.Contains(t, out, "Lower: (-2.00, -2.00, 1.00)")
	assert.Contains(t, out, "Upper: (4.00, 3.00, 5.00)")
	assert.Contains(t, out, "Center: (1.00, 0.50, 3.00)")
	assert.Contains(t, out, "Diagonal Squared: 77.00")
	assert.Contains(t, out, "Volume: 120.00 cubic units")
}

func TestInfoYAML(t *testing.T) {
	out, err := run(t, "info", "--format", "yaml", firstBox(t))
	require.NoError(t, err)

	doc, err := boxfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	box, err := doc.Lookup("first")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(-2, -2, 1), box.LowerCorner)
}

func TestInfoErrors(t *testing.T) {
	_, err := run(t, "info", filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)

	empty := writeSTL(t, "empty.stl")
	_, err = run(t, "info", empty)
	assert.ErrorContains(t, err, "no triangles")

	_, err = run(t, "info", "--format", "xml", firstBox(t))
	assert.ErrorContains(t, err, "unknown format")
}

func TestBoundsMergeAndPad(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "boxes.yaml")

	out, err := run(t, "bounds", "--precision", "1", "--pad", "1", "-o", saved, firstBox(t), secondBox(t))
	require.NoError(t, err)

	assert.Contains(t, out, "merged:\n  Lower: (-3.0, -3.0, 0.0)\n  Upper: (9.0, 4.0, 8.0)")

	f, err := os.Open(saved)
	require.NoError(t, err)
	defer f.Close()
	doc, err := boxfile.Decode(f)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 3)

	// box documents are accepted as input too
	out, err = run(t, "bounds", "--precision", "1", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "Upper: (9.0, 4.0, 8.0)")
}

func TestBoundsPaddingFromEnv(t *testing.T) {
	t.Setenv("GOBOUNDS_PADDING", "3")
	t.Setenv("GOBOUNDS_PRECISION", "0")

	out, err := run(t, "bounds", firstBox(t))
	require.NoError(t, err)
	assert.Contains(t, out, "merged:\n  Lower: (-5, -5, -2)\n  Upper: (7, 6, 8)")
}

func TestOverlap(t *testing.T) {
	out, err := run(t, "overlap", "--precision", "0", firstBox(t), secondBox(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Overlap: yes")
	assert.Contains(t, out, "Union:\n  Lower: (-2, -2, 1)\n  Upper: (8, 3, 7)")

	apart := writeSTL(t, "apart.stl", [3]float64{5, 1, 3}, [3]float64{8, 2, 4}, [3]float64{6, 1, 3})
	out, err = run(t, "overlap", firstBox(t), apart)
	require.NoError(t, err)
	assert.Contains(t, out, "Overlap: no")

	out, err = run(t, "overlap", "--pad", "0.5", firstBox(t), apart)
	require.NoError(t, err)
	assert.Contains(t, out, "Overlap: yes")
}

func TestContains(t *testing.T) {
	path := firstBox(t)

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"--x", "2", "--y", "0", "--z", "4"}, "inside"},
		{[]string{"--x", "4", "--y", "3", "--z", "5"}, "inside"},
		{[]string{"--x", "-3", "--y", "0", "--z", "4"}, "outside"},
		{[]string{"--x", "-3", "--y", "0", "--z", "4", "--pad", "1"}, "inside"},
	}

	for _, tc := range tests {
		out, err := run(t, append([]string{"contains", path}, tc.args...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "is "+tc.expected, "args %v", tc.args)
	}

	_, err := run(t, "contains", path, "--x", "1")
	assert.Error(t, err)
}

func TestPrimitive(t *testing.T) {
	out, err := run(t, "primitive", "box", "10", "20", "30", "--precision", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Lower: (-5.0, -10.0, -15.0)")
	assert.Contains(t, out, "Upper: (5.0, 10.0, 15.0)")

	out, err = run(t, "primitive", "cylinder", "50", "10", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: cylinder")

	_, err = run(t, "primitive", "sphere", "big")
	assert.ErrorContains(t, err, "invalid number")
}

// syncBuffer is a bytes.Buffer safe for the watcher's callback goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchFile(t *testing.T) {
	path := firstBox(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	done := make(chan error, 1)
	go func() { done <- watchFile(ctx, &out, path, 50*time.Millisecond, 0) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Upper: (4, 3, 5)")
	}, 5*time.Second, 10*time.Millisecond)

	grown := writeSTL(t, "grown.stl", [3]float64{-2, 3, 5}, [3]float64{4, -2, 1}, [3]float64{10, 0, 3})
	data, err := os.ReadFile(grown)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Upper: (10, 3, 5)")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}

	// writes after return are dropped
	final := out.String()
	require.NoError(t, os.WriteFile(path, data, 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, final, out.String())
}

func TestWatchFileStopsReportingAfterCancel(t *testing.T) {
	path := firstBox(t)

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	done := make(chan error, 1)
	go func() { done <- watchFile(ctx, &out, path, time.Millisecond, 0) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Upper: (4, 3, 5)")
	}, 5*time.Second, 10*time.Millisecond)

	// cancel while rewrites keep scheduling reports
	stop := make(chan struct{})
	go func() {
		data, _ := os.ReadFile(path)
		for {
			select {
			case <-stop:
				return
			default:
				_ = os.WriteFile(path, data, 0o644)
				time.Sleep(time.Millisecond)
			}
		}
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	final := out.String()
	time.Sleep(100 * time.Millisecond)
	close(stop)
	assert.Equal(t, final, out.String())
}

func TestBoundsOutputWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	_, err := run(t, "bounds", "-o", "/dev/full", firstBox(t))
	assert.Error(t, err)

	_, err = run(t, "bounds", "-o", t.TempDir(), firstBox(t))
	assert.ErrorContains(t, err, "failed to create")
}

func TestPaddingKeepsEmptyBoxEmpty(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(doc, []byte("boxes:\n  - name: nothing\n    empty: true\n"), 0o644))

	out, err := run(t, "contains", doc, "--x", "0", "--y", "0", "--z", "0", "--pad", "1e308")
	require.NoError(t, err)
	assert.Contains(t, out, "is outside")
	assert.Contains(t, out, "(empty)")

	out, err = run(t, "overlap", "--pad", "1e308", doc, firstBox(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Overlap: no")
	assert.Contains(t, out, "(empty)")

	out, err = run(t, "bounds", "--pad", "1e308", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "merged:\n  (empty)")
}
