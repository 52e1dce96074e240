package schema

import (
	"path/filepath"
)

// SourceKind tells whether a schema document was read from disk or from an
// fs.FS bundle.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// Source records where a schema document came from. Its location prefixes
// every parse and merge error.
type Source struct {
	kind     SourceKind
	location string
}

// SourceFromFile identifies a schema file on disk. The path is cleaned.
func SourceFromFile(path string) Source {
	return Source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS identifies a schema entry by its slash-separated fs.FS name.
func SourceFromFS(name string) Source {
	return Source{kind: SourceKindFS, location: name}
}

func (s Source) Kind() SourceKind {
	return s.kind
}

func (s Source) Location() string {
	return s.location
}

func (s Source) String() string {
	if s.location == "" {
		return string(s.kind)
	}
	return string(s.kind) + ":" + s.location
}
