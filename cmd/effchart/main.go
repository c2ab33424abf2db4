// effchart renders the four-panel growth efficiency figure from the simulation table.
//
// Run without arguments it reads efficiency_data.csv and writes
// comprehensive_efficiency_chart.png in the working directory. The table comes from the
// Java generator (GenerateEfficiencyData); this command never produces data itself.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/CropEfficiencyChart/src/analysis"
	"github.com/iafilius/CropEfficiencyChart/src/logging"
)

var opts options

var rootCmd = &cobra.Command{
	Use:   "effchart",
	Short: "Render the CuisineFarming growth efficiency chart",
	Long: `Reads the simulation table (CSV, or XLSX by extension) and renders four panels:
  A: total efficiency vs fertilizer concentration per resistance gene
  B: waterfall of every stacked bonus
  C: growth gene sweep
  D: base vs total efficiency with gain and penalty regions

Configuration layers: defaults < YAML file (--config or EFFCHART_CONFIG) < EFFCHART_* env < flags.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags(), opts)
		if err != nil {
			return err
		}
		out, err := run(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Chart saved to %s\n", out)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	f.StringVarP(&opts.input, "input", "i", "", "Simulation table (.csv or .xlsx)")
	f.StringVarP(&opts.output, "output", "o", "", "PNG file to write")
	f.StringVar(&opts.font, "font", "", "TrueType font for all labels (needed for --locale zh)")
	f.StringVar(&opts.locale, "locale", "", "Label language: en or zh")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
}

func main() {
	os.Exit(exitCode(rootCmd.Execute(), os.Stdout, os.Stderr))
}

// exitCode prints err the way the user expects and maps it to a process status.
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var mie *analysis.MissingInputError
	if errors.As(err, &mie) {
		fmt.Fprintln(stdout, mie.Hint())
		return 1
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}
