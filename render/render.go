// Package render writes a connected-components result in one of several
// output formats: a plain text summary, a Mermaid flowchart with one
// subgraph per component, or a JSON / YAML report.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvconn/core"
	"github.com/katalvlaran/lvconn/partition"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects an output writer.
type Format string

const (
	Text    Format = "text"
	Mermaid Format = "mermaid"
	JSON    Format = "json"
	YAML    Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{Text, Mermaid, JSON, YAML} }

// ParseFormat maps a case-insensitive name to a Format; empty means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, Mermaid, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (want one of %v)", s, Formats())
	}
}

// Report is the serializable summary of one run.
type Report struct {
	Strategy   string     `json:"strategy" yaml:"strategy"`
	Vertices   int        `json:"vertices" yaml:"vertices"`
	Edges      int        `json:"edges" yaml:"edges"`
	Count      int        `json:"count" yaml:"count"`
	Components [][]string `json:"components" yaml:"components"`
}

// NewReport summarizes p for g. Component member order is preserved.
func NewReport(strategy string, g *core.Graph[string], p partition.Partition[string]) *Report {
	r := &Report{
		Strategy:   strategy,
		Vertices:   g.Size(),
		Edges:      g.EdgeCount(),
		Count:      p.Len(),
		Components: make([][]string, len(p)),
	}
	for i, c := range p {
		r.Components[i] = append([]string(nil), c...)
	}

	return r
}

// Write renders p for g to w in format f.
func Write(w io.Writer, f Format, strategy string, g *core.Graph[string], p partition.Partition[string]) error {
	switch f {
	case Text, "":
		return WriteText(w, NewReport(strategy, g, p))
	case Mermaid:
		return WriteMermaid(w, g, p)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(NewReport(strategy, g, p)), "render: encoding JSON")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(strategy, g, p)); err != nil {
			return errors.Wrap(err, "render: encoding YAML")
		}
		return errors.Wrap(enc.Close(), "render: encoding YAML")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// WriteText writes a human-readable summary of r to w.
func WriteText(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "Strategy: %s\n", r.Strategy)
	fmt.Fprintf(w, "Vertices: %d\n", r.Vertices)
	fmt.Fprintf(w, "Edges: %d\n", r.Edges)
	fmt.Fprintf(w, "Connected Components: %d\n", r.Count)

	for i, comp := range r.Components {
		fmt.Fprintf(w, "\n=== Component %d (%d vertices) ===\n", i+1, len(comp))
		if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(comp, " ")); err != nil {
			return err
		}
	}

	return nil
}

// WriteMermaid writes g as a Mermaid flowchart with one subgraph per
// component. Every vertex is declared once as n<k>["label"], k being its
// position across the partition, so distinct labels never share a node.
// Each undirected edge is then drawn once, labelled by its weight.
func WriteMermaid(w io.Writer, g *core.Graph[string], p partition.Partition[string]) error {
	idx := p.Index()
	ids := make(map[string]string, len(idx))
	byComp := make([][]core.Edge[string], len(p))
	for _, e := range g.Edges() {
		if i, ok := idx[e.From]; ok {
			byComp[i] = append(byComp[i], e)
		}
	}

	fmt.Fprintln(w, "graph LR")
	for i, comp := range p {
		fmt.Fprintf(w, "    subgraph component_%d\n", i+1)
		for _, v := range comp {
			ids[v] = "n" + strconv.Itoa(len(ids))
			fmt.Fprintf(w, "        %s[%s]\n", ids[v], mermaidLabel(v))
		}
		for _, e := range byComp[i] {
			fmt.Fprintf(w, "        %s ---|%d| %s\n", ids[e.From], e.Weight, ids[e.To])
		}
		fmt.Fprintln(w, "    end")
		if i < len(p)-1 {
			fmt.Fprintln(w)
		}
	}

	return nil
}

// mermaidLabel quotes v for a node label. Double quotes become #quot;,
// the entity Mermaid accepts inside quoted text.
func mermaidLabel(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, "#quot;") + `"`
}
