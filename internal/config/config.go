// Package config holds the lvconn CLI configuration: a YAML file whose empty
// fields fall back to environment variables, then to built-in defaults.
// Command-line flags are applied on top by the caller.
package config

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvconn/connectivity"
	"github.com/katalvlaran/lvconn/render"
	"github.com/katalvlaran/lvconn/source"
)

// Config represents the top-level YAML configuration.
type Config struct {
	Strategy string            `yaml:"strategy"`
	Format   string            `yaml:"format"`
	Vars     map[string]string `yaml:"vars"`
	Postgres Postgres          `yaml:"postgres"`
}

// Postgres locates the edge table read by `lvconn pg`.
// An explicit empty weight_column selects unit weights; omitting the key
// selects the default "weight" column.
type Postgres struct {
	DSN          string `yaml:"dsn"`
	Table        string `yaml:"table"`
	FromColumn   string `yaml:"from_column"`
	ToColumn     string `yaml:"to_column"`
	WeightColumn string `yaml:"weight_column"`

	weightSet bool
}

// UnmarshalYAML decodes the section and records whether weight_column was given.
func (p *Postgres) UnmarshalYAML(n *yaml.Node) error {
	type plain Postgres
	if err := n.Decode((*plain)(p)); err != nil {
		return err
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "weight_column" {
			p.weightSet = n.Content[i+1].ShortTag() != "!!null"
		}
	}

	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg
}

// Load reads and parses a YAML config file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// applyEnv fills in empty fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	if c.Strategy == "" {
		c.Strategy = envOr("LVCONN_STRATEGY")
	}
	if c.Format == "" {
		c.Format = envOr("LVCONN_FORMAT")
	}
	if c.Postgres.DSN == "" {
		c.Postgres.DSN = envOr("DATABASE_URL", "PGDSN")
	}
}

func (c *Config) applyDefaults() {
	if c.Strategy == "" {
		c.Strategy = string(connectivity.BFS)
	}
	if c.Format == "" {
		c.Format = string(render.Text)
	}
	def := source.DefaultTableSpec()
	p := &c.Postgres
	if p.Table == "" {
		p.Table = def.Table
	}
	if p.FromColumn == "" {
		p.FromColumn = def.FromColumn
	}
	if p.ToColumn == "" {
		p.ToColumn = def.ToColumn
	}
	if p.WeightColumn == "" && !p.weightSet {
		p.WeightColumn = def.WeightColumn
	}
}

// envOr returns the first non-empty value from the given env var names.
func envOr(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}

	return ""
}

// Validate checks that strategy and format name known values.
func (c *Config) Validate() error {
	if _, err := connectivity.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}

// ValidateForPostgres checks the fields `lvconn pg` needs.
func (c *Config) ValidateForPostgres() error {
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required (or set DATABASE_URL)")
	}
	if _, err := c.TableSpec().Query(); err != nil {
		return err
	}

	return nil
}

// TableSpec converts the postgres section for source.LoadPostgres.
func (c *Config) TableSpec() source.TableSpec {
	return source.TableSpec{
		Table:        c.Postgres.Table,
		FromColumn:   c.Postgres.FromColumn,
		ToColumn:     c.Postgres.ToColumn,
		WeightColumn: c.Postgres.WeightColumn,
	}
}

// VarPairs renders Vars as sorted "name=value" pairs for source.ParseVars.
func (c *Config) VarPairs() []string {
	out := make([]string, 0, len(c.Vars))
	for k, v := range c.Vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)

	return out
}
