package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/gridgraph"
)

// DefaultWeight is the weight of an edge declared without one.
const DefaultWeight int64 = 1

var (
	// ErrEmptyLabel is returned for an edge or vertex with an empty label.
	ErrEmptyLabel = errors.New("source: empty vertex label")

	// ErrUnknownFormat is returned by LoadFile for an unsupported extension.
	ErrUnknownFormat = errors.New("source: unknown file format")
)

// EdgeSpec is one undirected edge as written in a document.
type EdgeSpec struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight *int64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// W returns the declared weight or DefaultWeight.
func (e EdgeSpec) W() int64 {
	if e.Weight == nil {
		return DefaultWeight
	}

	return *e.Weight
}

// Document is the format-neutral description of a graph.
// Vertices lists labels that must exist even without edges;
// edge endpoints are added implicitly.
type Document struct {
	Vertices []string   `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges" json:"edges"`
}

// Graph builds a fresh graph from d. Vertices are inserted first, in order,
// then edges in order, so the graph's vertex order follows the document.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph[string], error) {
	g := core.NewGraph[string](opts...)
	for i, v := range d.Vertices {
		if v == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "vertices[%d]", i)
		}
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "edges[%d]", i)
		}
		if err := g.AddEdge(e.From, e.To, e.W()); err != nil {
			return nil, errors.Wrapf(err, "edges[%d] %s-%s", i, e.From, e.To)
		}
	}

	return g, nil
}

// ParseYAML decodes a YAML or JSON document. Unknown keys are rejected.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "source: decoding document")
	}

	return &doc, nil
}

// FromGraph describes g as a Document: every vertex in insertion order, then
// every edge once with its weight. Document.Graph rebuilds an identical graph.
func FromGraph(g *core.Graph[string]) *Document {
	doc := &Document{Vertices: g.Vertices()}
	edges := g.Edges()
	doc.Edges = make([]EdgeSpec, len(edges))
	for i, e := range edges {
		w := e.Weight
		doc.Edges[i] = EdgeSpec{From: e.From, To: e.To, Weight: &w}
	}

	return doc
}

// ParseGrid reads a gridgraph text grid and describes its land cells as a
// Document with "x,y" labels and unit weights.
func ParseGrid(data []byte, opts gridgraph.GridOptions) (*Document, error) {
	rows, err := gridgraph.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "source: parsing grid")
	}
	gg, err := gridgraph.NewGridGraph(rows, opts)
	if err != nil {
		return nil, errors.Wrap(err, "source: parsing grid")
	}

	return FromGraph(gg.Graph()), nil
}

// LoadFile reads path and dispatches on its extension:
// .yaml, .yml and .json go to ParseYAML, .hcl to ParseHCL with vars,
// .grid to ParseGrid with default grid options.
func LoadFile(path string, vars map[string]cty.Value) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source: reading %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		doc, err := ParseYAML(data)
		return doc, errors.Wrapf(err, "file %s", path)
	case ".hcl":
		return ParseHCL(data, path, vars)
	case ".grid":
		doc, err := ParseGrid(data, gridgraph.DefaultGridOptions())
		return doc, errors.Wrapf(err, "file %s", path)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}
