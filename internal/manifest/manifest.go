// Package manifest reads a build manifest describing the chunks a compiler
// produced: their output paths, main entry modules and chunk group
// memberships. The manifest stands in for the module graph builder, which
// lives outside this tool, and provides the concrete chunks the runtime
// generator operates on.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chunk-team/chunkforge/internal/chunk"
)

type manifestSpec struct {
	Chunks []chunkSpec `yaml:"chunks"`
	Groups []groupSpec `yaml:"groups"`
}

type chunkSpec struct {
	Path        string      `yaml:"path"`
	MainEntries []entrySpec `yaml:"main_entries"`
}

type entrySpec struct {
	Module string `yaml:"module"`
	ID     idSpec `yaml:"id"`
}

type groupSpec struct {
	Entry  string   `yaml:"entry"`
	Chunks []string `yaml:"chunks"`
}

// idSpec accepts a module id as either a YAML string or integer.
type idSpec struct {
	id chunk.ModuleID
}

func (s *idSpec) UnmarshalYAML(value *yaml.Node) error {
	var n uint32
	if err := value.Decode(&n); err == nil {
		s.id = chunk.NumberID(n)
		return nil
	}
	var str string
	if err := value.Decode(&str); err != nil {
		return fmt.Errorf("module id must be a string or number: %w", err)
	}
	s.id = chunk.StringID(str)
	return nil
}

// Entry is a main entry module declared in the manifest.
type Entry struct {
	ident chunk.Ident
	id    chunk.ModuleID
}

func (e *Entry) Ident() chunk.Ident {
	return e.ident
}

// ModuleID returns the id the manifest assigned. The compiler that wrote
// the manifest already scoped ids to the chunking context.
func (e *Entry) ModuleID(chunk.Context) (chunk.ModuleID, error) {
	return e.id, nil
}

// Chunk is a chunk declared in the manifest.
type Chunk struct {
	path    string
	entries []chunk.Placeable
	group   *chunk.Group
}

func (c *Chunk) Path() string {
	return c.path
}

func (c *Chunk) Ident() chunk.Ident {
	return chunk.NewIdent(c.path)
}

func (c *Chunk) MainEntries() []chunk.Placeable {
	return c.entries
}

func (c *Chunk) Group() *chunk.Group {
	return c.group
}

// Manifest is a parsed build manifest.
type Manifest struct {
	chunks []*Chunk
	byPath map[string]*Chunk
}

// Load reads and resolves a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse resolves manifest bytes. Chunk and group order in the file is the
// deterministic iteration order used everywhere downstream.
func Parse(data []byte) (*Manifest, error) {
	var spec manifestSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	m := &Manifest{byPath: make(map[string]*Chunk, len(spec.Chunks))}
	for _, cs := range spec.Chunks {
		if cs.Path == "" {
			return nil, fmt.Errorf("manifest chunk without a path")
		}
		if _, exists := m.byPath[cs.Path]; exists {
			return nil, fmt.Errorf("duplicate chunk path %s in manifest", cs.Path)
		}

		c := &Chunk{path: cs.Path}
		for _, es := range cs.MainEntries {
			c.entries = append(c.entries, &Entry{
				ident: chunk.NewIdent(es.Module),
				id:    es.ID.id,
			})
		}
		m.chunks = append(m.chunks, c)
		m.byPath[cs.Path] = c
	}

	for _, gs := range spec.Groups {
		entry, ok := m.byPath[gs.Entry]
		if !ok {
			return nil, fmt.Errorf("group entry %s is not a declared chunk", gs.Entry)
		}
		members := make([]chunk.Chunk, 0, len(gs.Chunks))
		for _, p := range gs.Chunks {
			member, ok := m.byPath[p]
			if !ok {
				return nil, fmt.Errorf("group member %s is not a declared chunk", p)
			}
			members = append(members, member)
		}
		entry.group = chunk.NewGroup(members...)
	}

	return m, nil
}

// Chunks returns every declared chunk in manifest order.
func (m *Manifest) Chunks() []*Chunk {
	return m.chunks
}

// EntryChunks returns the chunks that declare main entries, in manifest
// order. These are the chunks that receive a runtime.
func (m *Manifest) EntryChunks() []*Chunk {
	var entries []*Chunk
	for _, c := range m.chunks {
		if len(c.entries) > 0 {
			entries = append(entries, c)
		}
	}
	return entries
}
