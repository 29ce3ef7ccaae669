// Package stl reads binary STL files into meshes.
package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"GPU_render_sandbox/model"
	"GPU_render_sandbox/vector_math"
)

const (
	headerSize   = 80
	preambleSize = headerSize + 4
	// normal, three corners, attribute byte count
	triangleStride = 12 + 3*12 + 2
)

var (
	ErrTruncated = errors.New("stl: file shorter than its triangle count")
	ErrASCII     = errors.New("stl: ascii stl is not supported")
)

func ReadStlFile(path string) (*model.Mesh, error) {
	log.Printf("Reading stl file %s", path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stl file '%s': %w", path, err)
	}
	m, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stl file '%s': %w", path, err)
	}
	m.Name = path
	return m, nil
}

// Parse decodes a binary STL. Every triangle gets three unshared vertices whose
// Color carries the facet normal; facets stored without a normal get one computed
// from their winding.
func Parse(b []byte) (*model.Mesh, error) {
	if len(b) < preambleSize {
		if bytes.HasPrefix(b, []byte("solid")) {
			return nil, ErrASCII
		}
		return nil, ErrTruncated
	}
	header := bytes.TrimRight(b[:headerSize], "\x00 ")
	tCnt := binary.LittleEndian.Uint32(b[headerSize:preambleSize])
	body := b[preambleSize:]
	if uint64(len(body)) < uint64(tCnt)*triangleStride {
		if bytes.HasPrefix(header, []byte("solid")) {
			return nil, ErrASCII
		}
		return nil, fmt.Errorf("%w: %d triangles need %d Byte, have %d", ErrTruncated, tCnt, uint64(tCnt)*triangleStride, len(body))
	}
	log.Printf("Successfully read stl, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB", header, tCnt, len(body)/1024)
	return toMesh(body, tCnt), nil
}

func toMesh(b []byte, triangleCnt uint32) *model.Mesh {
	v := make([]model.Vertex, 0, triangleCnt*3)
	id := make([]uint32, 0, triangleCnt*3)

	for t := uint32(0); t < triangleCnt; t++ {
		i := int(t) * triangleStride
		normal := toVec3(b[i : i+12])
		corners := [3]vector_math.Vec3{
			toVec3(b[i+12 : i+24]),
			toVec3(b[i+24 : i+36]),
			toVec3(b[i+36 : i+48]),
		}
		if normal.Len() == 0 {
			normal = vector_math.TriangleNormal(corners[0], corners[1], corners[2])
		}
		for _, c := range corners {
			id = append(id, uint32(len(v)))
			v = append(v, model.Vertex{Pos: c, Color: normal})
		}
	}

	return model.NewMesh("stl", v, id)
}

func toVec3(b []byte) vector_math.Vec3 {
	return vector_math.Vec3{
		X: toFloat32(b[:4]),
		Y: toFloat32(b[4:8]),
		Z: toFloat32(b[8:12]),
	}
}

func toFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
