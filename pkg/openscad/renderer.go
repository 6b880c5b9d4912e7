package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/stl"
)

// ErrNotInstalled is returned when the openscad binary is not in PATH
var ErrNotInstalled = errors.New("openscad not found in PATH")

// matches use <file.scad> and include <file.scad>
var dependencyRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer turns OpenSCAD files into STL models
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a renderer resolving relative paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

func (r *Renderer) abs(scadFile string) string {
	if filepath.IsAbs(scadFile) {
		return scadFile
	}
	return filepath.Join(r.workDir, scadFile)
}

// RenderToSTL renders an OpenSCAD file to outputFile
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("failed to render %s: %w: %s", scadFile, err, msg)
		}
		return fmt.Errorf("failed to render %s: %w", scadFile, err)
	}

	return nil
}

// Bounds renders scadFile into a temporary STL and returns its bounding box
func (r *Renderer) Bounds(ctx context.Context, scadFile string) (geometry.BoundingBox3D, error) {
	tmp, err := os.MkdirTemp("", "gobounds-scad-")
	if err != nil {
		return geometry.BoundingBox3D{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	out := filepath.Join(tmp, "model.stl")
	if err := r.RenderToSTL(ctx, scadFile, out); err != nil {
		return geometry.BoundingBox3D{}, err
	}

	model, err := stl.Parse(out)
	if err != nil {
		return geometry.BoundingBox3D{}, err
	}
	if model.TriangleCount() == 0 {
		return geometry.BoundingBox3D{}, fmt.Errorf("%s: %w", scadFile, stl.ErrNoTriangles)
	}
	return model.Bounds(), nil
}

// ResolveDependencies returns scadFile followed by every file it pulls in
// through use or include, transitively, as absolute paths.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	if err := r.resolve(r.abs(scadFile), visited, &deps); err != nil {
		return nil, err
	}

	return deps, nil
}

func (r *Renderer) resolve(scadFile string, visited map[string]bool, deps *[]string) error {
	if visited[scadFile] {
		return nil
	}
	visited[scadFile] = true
	*deps = append(*deps, scadFile)

	fileDeps, err := r.parseDependencies(scadFile)
	if err != nil {
		return err
	}

	for _, dep := range fileDeps {
		if err := r.resolve(dep, visited, deps); err != nil {
			return err
		}
	}

	return nil
}

// parseDependencies lists the use/include targets of a single file
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := dependencyRegex.FindStringSubmatch(line); m != nil {
			deps = append(deps, r.resolveDepPath(m[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}

	return deps, nil
}

// resolveDepPath looks for depPath next to the including file first, then
// in the work directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	local := filepath.Join(currentDir, depPath)
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(local)
	}
	if _, err := os.Stat(local); err == nil {
		return filepath.Clean(local)
	}
	return filepath.Clean(filepath.Join(r.workDir, depPath))
}
