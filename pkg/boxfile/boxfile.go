// Package boxfile reads and writes named bounding boxes as YAML documents.
//
//	boxes:
//	  - name: part
//	    lower: [-2, -2, 1]
//	    upper: [4, 3, 5]
//	  - name: nothing
//	    empty: true
//
// Empty boxes are written with the empty flag instead of their sentinel
// corners and are read back as the sentinel.
package boxfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/philipparndt/gobounds/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// ErrUnknownBox is returned by Lookup when no box has the requested name
var ErrUnknownBox = errors.New("unknown box")

// Entry is a named box in a document
type Entry struct {
	Name string
	Box  geometry.BoundingBox3D
}

// Document is an ordered list of named boxes
type Document struct {
	Entries []Entry
}

type rawEntry struct {
	Name  string      `yaml:"name"`
	Empty bool        `yaml:"empty,omitempty"`
	Lower *[3]float64 `yaml:"lower,omitempty,flow"`
	Upper *[3]float64 `yaml:"upper,omitempty,flow"`
}

type rawDocument struct {
	Boxes []rawEntry `yaml:"boxes"`
}

// Add appends a box, replacing any existing entry with the same name
func (d *Document) Add(name string, box geometry.BoundingBox3D) {
	for i := range d.Entries {
		if d.Entries[i].Name == name {
			d.Entries[i].Box = box
			return
		}
	}
	d.Entries = append(d.Entries, Entry{Name: name, Box: box})
}

// Lookup returns the box stored under name
func (d *Document) Lookup(name string) (geometry.BoundingBox3D, error) {
	for _, e := range d.Entries {
		if e.Name == name {
			return e.Box, nil
		}
	}
	return geometry.BoundingBox3D{}, fmt.Errorf("%w: %q", ErrUnknownBox, name)
}

func corners(v geometry.Vector3D) *[3]float64 {
	return &[3]float64{v.X, v.Y, v.Z}
}

func vector(c *[3]float64) geometry.Vector3D {
	return geometry.NewVector3(c[0], c[1], c[2])
}

// MarshalYAML implements yaml.Marshaler
func (d Document) MarshalYAML() (interface{}, error) {
	raw := rawDocument{Boxes: make([]rawEntry, 0, len(d.Entries))}
	for _, e := range d.Entries {
		r := rawEntry{Name: e.Name}
		if e.Box.IsEmpty() {
			r.Empty = true
		} else {
			r.Lower = corners(e.Box.LowerCorner)
			r.Upper = corners(e.Box.UpperCorner)
		}
		raw.Boxes = append(raw.Boxes, r)
	}
	return raw, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	var raw rawDocument
	if err := node.Decode(&raw); err != nil {
		return err
	}

	entries := make([]Entry, 0, len(raw.Boxes))
	for i, r := range raw.Boxes {
		if r.Name == "" {
			return fmt.Errorf("box %d: missing name", i)
		}
		switch {
		case r.Empty:
			entries = append(entries, Entry{Name: r.Name, Box: geometry.NewBoundingBox3[float64]()})
		case r.Lower == nil || r.Upper == nil:
			return fmt.Errorf("box %q: lower and upper corners are required", r.Name)
		default:
			box := geometry.NewBoundingBox3FromCorners(vector(r.Lower), vector(r.Upper))
			entries = append(entries, Entry{Name: r.Name, Box: box})
		}
	}
	d.Entries = entries
	return nil
}

// Encode writes doc to w as YAML
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode boxes: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML document from r
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode boxes: %w", err)
	}
	return doc, nil
}
