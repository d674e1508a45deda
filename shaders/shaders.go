// Package shaders provides the water GLSL sources, embedded at build time and
// optionally overridden from a directory that is watched for edits.
package shaders

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// File names looked up in an override directory.
const (
	VertexFile   = "water.vs"
	FragmentFile = "water.fs"
)

//go:embed water.vs
var waterVertex string

//go:embed water.fs
var waterFragment string

// Sources is a vertex/fragment shader pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Embedded returns the built-in water shaders.
func Embedded() Sources {
	return Sources{Vertex: waterVertex, Fragment: waterFragment}
}

// Load returns the embedded sources when dir is empty. Otherwise each file
// present in dir replaces its embedded counterpart.
func Load(dir string) (Sources, error) {
	src := Embedded()
	if dir == "" {
		return src, nil
	}

	vs, err := readOptional(filepath.Join(dir, VertexFile))
	if err != nil {
		return Sources{}, err
	}
	if vs != "" {
		src.Vertex = vs
	}

	fs, err := readOptional(filepath.Join(dir, FragmentFile))
	if err != nil {
		return Sources{}, err
	}
	if fs != "" {
		src.Fragment = fs
	}

	return src, nil
}

func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading shader %s: %w", path, err)
	}
	return string(data), nil
}
