package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunEstimation_EndToEnd runs the whole command on a small generated data
// set: the summary table lands on the command's writer and the thinned sample
// CSV lands at the configured path.
func TestRunEstimation_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sample.csv")
	cfgPath := filepath.Join(dir, "run.yaml")

	cfg := fmt.Sprintf(`seed: 9
sampler:
  burn_in: 200
  total_accepted: 1200
  thinning_interval: 10
  initial_grid_size: 50
data:
  generate:
    n: 50
    mean: 3
    std: 4
output:
  sample_csv: %s
`, csvPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	old := runConfigPath
	runConfigPath = cfgPath
	defer func() { runConfigPath = old }()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runEstimation(cmd, nil))

	rendered := strings.ToUpper(out.String())
	assert.Contains(t, rendered, "PARAMETER")
	assert.Contains(t, rendered, "LPML")

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "LogPosterior,Mean,Variance", lines[0])
	assert.Len(t, lines, 1+100, "header + (1200-200-1)/10+1 thinned samples")
}

// TestConfig_Mapping pins the YAML→options/bounds translation, including the
// pointer semantics that make an explicit 0 grid size meaningful.
func TestConfig_Mapping(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	cfg := `seed: 4
sampler:
  burn_in: 300
  initial_grid_size: 0
priors:
  mean_min: -5
  var_max: 16
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	c, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	o := c.Options()
	assert.Equal(t, uint64(4), o.Seed)
	assert.Equal(t, 300, o.BurnIn)
	assert.Equal(t, 0, o.InitialGridSize, "explicit 0 disables the grid search")
	assert.Equal(t, 510000, o.TotalAccepted, "unset fields keep the defaults")

	b := c.Bounds()
	assert.Equal(t, -5.0, b.MeanMin)
	assert.Equal(t, 10.0, b.MeanMax)
	assert.Equal(t, 16.0, b.VarMax)

	obs, err := c.Observations()
	require.NoError(t, err)
	assert.Len(t, obs, 100, "unset generator falls back to the demo data set")
}
