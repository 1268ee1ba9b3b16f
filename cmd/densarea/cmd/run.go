package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/density-regions/densarea/graph"
	"github.com/density-regions/densarea/loader"
	"github.com/density-regions/densarea/regionalize"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run regionalisation over a zone graph",
	Long: `Load a zone graph from the paths named in the run config, delimit
density areals over it, and write the resulting zone-to-region
assignments to the configured output path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig(configPath)
		if err != nil {
			return err
		}
		return runRegionalize(cfg)
	},
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "densarea.yml", "run config file")
	RootCmd.AddCommand(runCmd)
}

func runRegionalize(cfg RunConfig) error {
	g, err := loader.LoadCSV(cfg.ZonesPath, cfg.PairsPath, cfg.AllowExterior)
	if err != nil {
		return fmt.Errorf("densarea: %w", err)
	}

	logger := regionalize.NewStdLogger()
	result, err := regionalize.Run(g, regionalize.Options{
		ThresholdDensity: cfg.ThresholdDensity,
		MinPopulation:    cfg.MinPopulation,
		MergeEnclaves:    cfg.MergeEnclaves,
	}, logger)
	if err != nil {
		return fmt.Errorf("densarea: %w", err)
	}

	return writeResultCSV(cfg.OutputPath, result)
}

func writeResultCSV(path string, result regionalize.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("densarea: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"zone_id", "region_id", "assigned"}); err != nil {
		return fmt.Errorf("densarea: write header: %w", err)
	}

	ids := make([]graph.ZoneID, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		a := result[id]
		row := []string{
			strconv.FormatInt(int64(id), 10),
			strconv.FormatInt(int64(a.Region), 10),
			strconv.FormatBool(a.Assigned),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("densarea: write row: %w", err)
		}
	}
	return w.Error()
}
