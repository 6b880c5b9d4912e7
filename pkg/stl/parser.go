package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gobounds/pkg/geometry"
)

// binaryFacet is the 50 byte record of a binary STL file
type binaryFacet struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return model, nil
}

// ParseReader reads STL data from r. Input starting with "solid" is read as
// ASCII unless its length matches the triangle count of a binary file, since
// some exporters put "solid" at the start of binary headers too.
func ParseReader(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}

	if !bytes.HasPrefix(data, []byte("solid")) || isBinarySize(data) {
		return parseBinary(bytes.NewReader(data))
	}

	model, err := parseASCII(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if model.TriangleCount() == 0 && len(data) >= binaryHeaderSize {
		// no facets: the header may still belong to a binary file
		if binModel, err := parseBinary(bytes.NewReader(data)); err == nil && binModel.TriangleCount() > 0 {
			return binModel, nil
		}
	}
	return model, nil
}

const (
	binaryHeaderSize = 84
	binaryFacetSize  = 50
)

// isBinarySize reports whether data is exactly as long as the binary layout
// announced by its triangle count
func isBinarySize(data []byte) bool {
	if len(data) < binaryHeaderSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[80:binaryHeaderSize])
	return uint64(binaryHeaderSize)+uint64(binaryFacetSize)*uint64(count) == uint64(len(data))
}

// parseVertex reads three coordinates from fields
func parseVertex(fields []string) (geometry.Vector3D, error) {
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3D{}, fmt.Errorf("invalid coordinate %q: %w", fields[i], err)
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3D
	var vertices []geometry.Vector3D
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseVertex(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				currentNormal = n
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func toVector(v [3]float32) geometry.Vector3D {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = string(bytes.TrimRight(header, "\x00 "))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			toVector(facet.Normal),
			toVector(facet.V1),
			toVector(facet.V2),
			toVector(facet.V3),
		))
	}

	return model, nil
}
