package source

import (
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// hclRoot is the top-level schema of an HCL graph file:
//
//	vertices = ["X"]
//
//	edge "A" "B" {
//	  weight = var.ab
//	}
type hclRoot struct {
	Vertices []string  `hcl:"vertices,optional"`
	Edges    []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From   string `hcl:"from,label"`
	To     string `hcl:"to,label"`
	Weight *int64 `hcl:"weight,optional"`
}

// ParseHCL decodes an HCL graph file. vars is exposed to expressions as the
// object var, so `weight = var.heavy` reads vars["heavy"]. A nil map is an
// empty object.
func ParseHCL(src []byte, filename string, vars map[string]cty.Value) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "source: parsing HCL file %s", filename)
	}

	var root hclRoot
	if diags = gohcl.DecodeBody(file.Body, EvalContext(vars), &root); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "source: decoding HCL file %s", filename)
	}

	doc := &Document{Vertices: root.Vertices, Edges: make([]EdgeSpec, 0, len(root.Edges))}
	for _, e := range root.Edges {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc, nil
}

// EvalContext returns the HCL evaluation context exposing vars as var.*.
func EvalContext(vars map[string]cty.Value) *hcl.EvalContext {
	obj := cty.EmptyObjectVal
	if len(vars) > 0 {
		obj = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": obj},
	}
}

// ParseVars turns "name=value" pairs into cty values. Values that parse as
// integers become numbers; everything else is a string.
func ParseVars(pairs []string) (map[string]cty.Value, error) {
	vars := make(map[string]cty.Value, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("source: malformed variable %q (want name=value)", p)
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			vars[name] = cty.NumberIntVal(n)
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return vars, nil
}
