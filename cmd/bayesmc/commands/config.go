package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayesmc/model"
	"github.com/katalvlaran/bayesmc/sampler"
)

// Config is the YAML run configuration. Zero fields fall back to the
// sampler's documented defaults (and the demo data generator).
type Config struct {
	Seed uint64 `yaml:"seed"`

	Sampler struct {
		BurnIn           int  `yaml:"burn_in"`
		TotalAccepted    int  `yaml:"total_accepted"`
		MaxInnerIter     int  `yaml:"max_inner_iter"`
		ThinningInterval int  `yaml:"thinning_interval"`
		InitialGridSize  *int `yaml:"initial_grid_size"` // pointer: 0 is meaningful (no grid search)
		MaxSeedAttempts  int  `yaml:"max_seed_attempts"`
	} `yaml:"sampler"`

	Data struct {
		File     string `yaml:"file"` // one observation per line
		Generate struct {
			N    int     `yaml:"n"`
			Mean float64 `yaml:"mean"`
			Std  float64 `yaml:"std"`
		} `yaml:"generate"`
	} `yaml:"data"`

	Priors struct {
		MeanMin *float64 `yaml:"mean_min"`
		MeanMax *float64 `yaml:"mean_max"`
		VarMin  *float64 `yaml:"var_min"`
		VarMax  *float64 `yaml:"var_max"`
	} `yaml:"priors"`

	Output struct {
		SampleCSV string `yaml:"sample_csv"`
	} `yaml:"output"`
}

// LoadConfig reads and parses the YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Options maps the configuration onto sampler options, keeping the
// documented defaults for unset fields.
func (c *Config) Options() sampler.Options {
	o := sampler.DefaultOptions()
	o.Seed = c.Seed
	if c.Sampler.BurnIn > 0 {
		o.BurnIn = c.Sampler.BurnIn
	}
	if c.Sampler.TotalAccepted > 0 {
		o.TotalAccepted = c.Sampler.TotalAccepted
	}
	if c.Sampler.MaxInnerIter > 0 {
		o.MaxInnerIter = c.Sampler.MaxInnerIter
	}
	if c.Sampler.ThinningInterval > 0 {
		o.ThinningInterval = c.Sampler.ThinningInterval
	}
	if c.Sampler.InitialGridSize != nil {
		o.InitialGridSize = *c.Sampler.InitialGridSize
	}
	if c.Sampler.MaxSeedAttempts > 0 {
		o.MaxSeedAttempts = c.Sampler.MaxSeedAttempts
	}
	return o
}

// Bounds maps the configuration onto the Normal model's prior supports.
func (c *Config) Bounds() model.NormalBounds {
	b := model.DefaultNormalBounds()
	if c.Priors.MeanMin != nil {
		b.MeanMin = *c.Priors.MeanMin
	}
	if c.Priors.MeanMax != nil {
		b.MeanMax = *c.Priors.MeanMax
	}
	if c.Priors.VarMin != nil {
		b.VarMin = *c.Priors.VarMin
	}
	if c.Priors.VarMax != nil {
		b.VarMax = *c.Priors.VarMax
	}
	return b
}

// Observations loads the data file when configured, otherwise generates the
// synthetic demo data set.
func (c *Config) Observations() ([]float64, error) {
	if c.Data.File != "" {
		return readObservations(c.Data.File)
	}
	g := c.Data.Generate
	n, mean, std := g.N, g.Mean, g.Std
	if n == 0 {
		n, mean, std = 100, 3, 4
	}
	return model.GenerateNormal(n, mean, std, c.Seed)
}

// readObservations parses a file with one float per line; blank lines and
// lines starting with '#' are skipped.
func readObservations(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parse data %q: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
