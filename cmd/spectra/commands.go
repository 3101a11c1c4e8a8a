package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TFMV/spectra"
	"github.com/TFMV/spectra/internal/prompt"
	"github.com/TFMV/spectra/pkg/distance"
	"github.com/TFMV/spectra/pkg/imageio"
	"github.com/TFMV/spectra/pkg/metrics"
	"github.com/TFMV/spectra/pkg/registry"
	"github.com/TFMV/spectra/pkg/transform"
)

var (
	metricName    string
	transformName string
	inPath        string
	outPath       string
	useGray       bool
)

func init() {
	distanceCmd.Flags().StringVarP(&metricName, "metric", "m", "", "Metric name (default from config)")
	pointsCmd.Flags().StringVarP(&metricName, "metric", "m", "", "Metric name (default from config)")

	transformCmd.Flags().StringVarP(&transformName, "name", "n", "", "Transform name (default from config)")
	transformCmd.Flags().StringVar(&inPath, "in", "", "Input image (prompted for when omitted)")
	transformCmd.Flags().StringVar(&outPath, "out", "", "Output image (default <input>_<transform>.png)")
	transformCmd.Flags().BoolVar(&useGray, "gray", false, "Transform the grayscale image instead of RGB (when unset: RGB for negative, grayscale otherwise)")

	// Coordinates and vector components may be negative.
	distanceCmd.Flags().SetInterspersed(false)
	pointsCmd.Flags().SetInterspersed(false)
}

var distanceCmd = &cobra.Command{
	Use:   "distance A B",
	Short: "Distance between two comma-separated vectors",
	Example: `  spectra distance --metric cosine 1,2,3 4,5,6
  spectra distance --metric minkowski --order 4 1,2,3 4,5,6
  spectra distance --metric manhattan -- -1,2,3 4,-5,6`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseVector(args[0])
		if err != nil {
			return err
		}
		b, err := parseVector(args[1])
		if err != nil {
			return err
		}

		engine := newEngine(nil)
		d, err := engine.Distance(a, b, metricName)
		if err != nil {
			return err
		}

		return render(cmd, resultRow{Metric: resolvedName(metricName, engine.Config().DefaultMetric), Value: d})
	},
}

var pointsCmd = &cobra.Command{
	Use:   "points X Y S T",
	Short: "Integer distance between points (X, Y) and (S, T)",
	Example: `  spectra points --metric chessboard 1 2 4 6
  spectra points --metric manhattan 1 -2 4 6
  spectra points --metric euclidean -- -1 -2 4 6`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords := make([]int, len(args))
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid coordinate %q: %w", arg, err)
			}
			coords[i] = v
		}

		engine := newEngine(nil)
		d, err := engine.PointDistance(coords[0], coords[1], coords[2], coords[3], metricName)
		if err != nil {
			return err
		}

		return render(cmd, resultRow{Metric: resolvedName(metricName, engine.Config().DefaultMetric), Value: float64(d)})
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply an image transform to a file",
	Example: `  spectra transform --name negative --in lena.png --gray=false
  spectra transform --name power_law --gamma 0.5 --in lena.png --out bright.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine(nil)
		cfg := engine.Config()

		path := inPath
		if path == "" {
			var err error
			path, err = prompt.Ask(cmd.InOrStdin(), cmd.OutOrStdout(), "Enter the image path: ", cfg.PromptDefault)
			if err != nil {
				return err
			}
			if path == "" {
				return fmt.Errorf("no input image given")
			}
		}

		loaded, err := imageio.Load(path)
		if err != nil {
			return err
		}
		name := resolvedName(transformName, cfg.DefaultTransform)
		src := loaded.RGB
		if grayscaleInput(name, cmd.Flags().Changed("gray"), useGray) {
			src = loaded.Gray
		}

		out, err := engine.ApplyTransform(src, name)
		if err != nil {
			return err
		}

		dest := outPath
		if dest == "" {
			dest = defaultOutputPath(path, name)
		}
		if err := imageio.Save(out, dest); err != nil {
			return err
		}
		logger.Info("Saved transformed image",
			zap.String("transform", name),
			zap.String("input", path),
			zap.String("output", dest))

		return render(cmd, transformResult{
			Transform: name,
			Input:     path,
			Output:    dest,
			Width:     out.Width,
			Height:    out.Height,
			Channels:  out.Channels,
			MeanIn:    src.Mean(),
			MeanOut:   out.Mean(),
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered metrics and transforms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine(nil)

		var rows []operatorRow
		for _, name := range engine.Metrics().Names() {
			defaults, _ := engine.Metrics().Defaults(name)
			row := operatorRow{Family: distance.Family, Name: name}
			if defaults.Order != 0 {
				row.Defaults = fmt.Sprintf("order=%d", defaults.Order)
			}
			rows = append(rows, row)
		}
		for _, name := range engine.Transforms().Names() {
			defaults, _ := engine.Transforms().Defaults(name)
			row := operatorRow{Family: transform.Family, Name: name}
			if defaults.Gamma != 0 {
				row.Defaults = fmt.Sprintf("gamma=%g", defaults.Gamma)
			}
			rows = append(rows, row)
		}

		return render(cmd, rows)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every metric over the sample vectors and points",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := runDemo(newEngine(nil))
		if err != nil {
			return err
		}
		return render(cmd, rows)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a JSON configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := args[0]
		logger.Debug("Validating configuration file", zap.String("file", configFile))

		data, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		config := spectra.DefaultConfig()
		if err := sonic.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}

		issues := spectra.ValidateConfig(config)
		if output == "json" {
			if err := writeJSON(cmd, issues); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), spectra.FormatValidationIssues(issues))
		}

		if spectra.HasErrors(issues) {
			return fmt.Errorf("%s has configuration errors", configFile)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run the demo through an instrumented engine and show call metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		collector := metrics.NewCollector(true)
		engine := newEngine(collector)

		if _, err := runDemo(engine); err != nil {
			return err
		}
		// One failing lookup so the error series is visible.
		_, _ = engine.Distance(demoVectorA, demoVectorB, "jaccard")

		counts, err := collector.CallCounts()
		if err != nil {
			return err
		}
		recent := collector.GetRecentMetrics()

		if output == "json" {
			return writeJSON(cmd, statsReport{
				Calls:        recent.Calls,
				Errors:       recent.Errors,
				AvgLatencyMs: recent.AvgLatencyMs,
				Series:       counts,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Operator Statistics (%d calls, %d errors, avg %.4f ms):\n",
			recent.Calls, recent.Errors, recent.AvgLatencyMs)
		return render(cmd, counts)
	},
}

var (
	demoVectorA = []float64{1, 2, 3}
	demoVectorB = []float64{4, 5, 6}
)

// runDemo evaluates every registered metric on the sample vectors and on
// points (1, 2) and (4, 6).
func runDemo(engine *spectra.Engine) ([]demoRow, error) {
	var rows []demoRow
	for _, name := range engine.Metrics().Names() {
		vd, err := engine.Distance(demoVectorA, demoVectorB, name)
		if err != nil {
			return nil, err
		}
		pd, err := engine.PointDistance(1, 2, 4, 6, name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, demoRow{Metric: name, Vector: vd, Point: pd})
	}
	return rows, nil
}

// parseVector parses "1,2.5,-3" into a vector.
func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	vec := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vector component %q: %w", f, err)
		}
		vec = append(vec, v)
	}
	return vec, nil
}

// grayscaleInput reports whether a transform runs on the grayscale image.
// An explicit --gray wins; otherwise negative runs on RGB and every other
// transform on grayscale.
func grayscaleInput(name string, explicit, gray bool) bool {
	if explicit {
		return gray
	}
	return transform.Kind(registry.Normalize(name)) != transform.Negative
}

func resolvedName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// defaultOutputPath derives "photo_negative.png" from "photo.jpg".
func defaultOutputPath(input, transformName string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return fmt.Sprintf("%s_%s.png", base, strings.ToLower(transformName))
}
