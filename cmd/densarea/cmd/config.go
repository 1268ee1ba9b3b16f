package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

// RunConfig is the YAML-serialisable description of one regionalisation
// run: where the zone graph comes from, how it should be loaded, and the
// scalars that drive the algorithm.
type RunConfig struct {
	ZonesPath     string  `yaml:"zones_path"`
	PairsPath     string  `yaml:"pairs_path"`
	AllowExterior bool    `yaml:"allow_exterior"`
	OutputPath    string  `yaml:"output_path"`

	ThresholdDensity float64 `yaml:"threshold_density"`
	MinPopulation    float64 `yaml:"min_population"`
	MergeEnclaves    bool    `yaml:"merge_enclaves"`
}

// defaultRunConfig is written out by `densarea config` and documents every
// field with a usable starting value.
func defaultRunConfig() RunConfig {
	return RunConfig{
		ZonesPath:        "zones.csv",
		PairsPath:        "pairs.csv",
		AllowExterior:    true,
		OutputPath:       "regions.csv",
		ThresholdDensity: 1_000_000,
		MinPopulation:    0,
		MergeEnclaves:    true,
	}
}

func loadRunConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("densarea: read config: %w", err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("densarea: parse config: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a run config file",
	Long: `Create a run config file in YAML format, prefilled with default
values. If FILE is not provided, 'densarea.yml' is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "densarea.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if fileExists(path) {
			return fmt.Errorf("densarea: %s already exists", path)
		}

		buf, err := yaml.Marshal(defaultRunConfig())
		if err != nil {
			return fmt.Errorf("densarea: marshal default config: %w", err)
		}
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return fmt.Errorf("densarea: write config: %w", err)
		}
		fmt.Printf("run config written to %q\n", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
