// Package source loads graph descriptions into a core.Graph[string].
//
// Four inputs are supported, all producing the same Document:
//
//   - YAML or JSON files with a vertices list and an edges list
//     (gopkg.in/yaml.v3, which reads JSON as a YAML subset);
//   - HCL files with one labelled edge block per edge, evaluated against
//     caller-supplied variables exposed as var.<name>;
//   - a Postgres table holding one edge per row (pgx/v5);
//   - text grids (.grid) whose land cells become "x,y" vertices (gridgraph).
//
// An omitted weight defaults to 1. Labels must be non-empty.
package source
