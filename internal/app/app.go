// Package app wires the extraction pipeline to the command line.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/setanarut/swatch"
	"github.com/setanarut/swatch/internal/config"
	"github.com/setanarut/swatch/output"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Basenames the CLI always writes into its output directory.
const (
	iniName  = "out.ini"
	rasiName = "out.rasi"
)

// New builds the root command.
func New() *cobra.Command {
	var (
		outputDir string
		method    string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "swatch <image>",
		Short: "Generate a color palette from an image",
		Long: `Swatch extracts the dominant colors of an image and writes them as a
polybar-style INI fragment (out.ini) and a rofi theme snippet (out.rasi).`,
		Example: `  swatch wallpaper.png
  swatch -o ~/.config/polybar wallpaper.jpg
  swatch --method dominant --verbose wallpaper.webp`,
		Args:    cobra.ExactArgs(1),
		Version: Version,
		// Execute reports the error once already; repeating the usage
		// text underneath would bury it.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if !fl.Changed("output-dir") {
				outputDir = cfg.OutputDir
			}
			if !fl.Changed("method") {
				method = cfg.Method
			}
			if !fl.Changed("verbose") {
				verbose = cfg.Verbose
			}
			return run(cmd, args[0], outputDir, method, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for the generated files")
	cmd.Flags().StringVar(&method, "method", swatch.MethodKMeans.String(), "extraction method: kmeans or dominant")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print extraction diagnostics to stderr")
	return cmd
}

// Run executes the CLI with explicit argument and stream wiring and returns
// the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		// cobra treats nil args as "use os.Args".
		argv = []string{}
	}
	cmd := New()
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, imagePath, outputDir, methodName string, verbose bool) error {
	// Check the input before creating anything: a bad path must leave the
	// filesystem untouched.
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("Image file '%s' not found", imagePath)
	}
	method, err := swatch.ParseMethod(methodName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	img, err := swatch.LoadImage(imagePath)
	if err != nil {
		return err
	}
	res, err := swatch.ExtractImage(img, swatch.Options{Method: method})
	if err != nil {
		return err
	}
	if verbose {
		report(cmd.ErrOrStderr(), res)
	}

	iniPath := filepath.Join(outputDir, iniName)
	if err := output.SaveINI(iniPath, res.Palette); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Palette saved to %s\n", iniPath)

	rasiPath := filepath.Join(outputDir, rasiName)
	if err := output.SaveRASI(rasiPath, res.Palette); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "RASI palette saved to %s\n", rasiPath)
	return nil
}

// report prints one line per centroid plus summary statistics over the
// centroid luminances.
func report(w io.Writer, res *swatch.Result) {
	lums := make([]float64, len(res.Centroids))
	for i, c := range res.Centroids {
		lums[i] = swatch.ColorLuminance(c)
	}
	fmt.Fprintf(w, "method: %s  samples: %d  clusters: %d\n", res.Method, res.Samples, len(res.Centroids))
	for i, c := range res.Centroids {
		fmt.Fprintf(w, "  %s  share %5.1f%%  luminance %6.1f\n", c.Clamped().Hex(), res.Shares[i]*100, lums[i])
	}
	fmt.Fprintf(w, "luminance mean %.1f  stddev %.1f  spread %.1f\n",
		stat.Mean(lums, nil), stat.StdDev(lums, nil), floats.Max(lums)-floats.Min(lums))
}
