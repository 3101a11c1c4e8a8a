package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/TFMV/spectra"
	"github.com/TFMV/spectra/internal/logging"
	"github.com/TFMV/spectra/pkg/metrics"
)

var (
	logger  *zap.Logger
	cfgFile string
	envFile string
	output  string
	verbose bool
)

func init() {
	cobra.OnInitialize(initConfig)

	// Root command flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./spectra.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (json, console)")
	rootCmd.PersistentFlags().Int("order", 0, "Minkowski order (default 3)")
	rootCmd.PersistentFlags().Float64("gamma", 0, "Power-law gamma (default 2.2)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("minkowski_order", rootCmd.PersistentFlags().Lookup("order"))
	_ = viper.BindPFlag("gamma", rootCmd.PersistentFlags().Lookup("gamma"))

	// Add commands
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Spectra applies name-selected distance metrics and image transforms",
	Long: `Spectra resolves distance metrics (euclidean, manhattan, chessboard,
minkowski, cosine, hamming) and image transforms (negative, log,
exponential, power_law, fourier) by name and applies them to vectors,
points or image files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if output != "table" && output != "json" {
			return fmt.Errorf("unknown output format %q", output)
		}

		cfg := loadConfig()
		if verbose {
			cfg.LogLevel = "debug"
		}
		l, err := logging.NewLogger(logging.Config{Format: cfg.LogFormat, Level: cfg.LogLevel})
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func initConfig() {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", envFile, err)
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("spectra")
		viper.AddConfigPath(".")
	}

	defaults := spectra.DefaultConfig()
	viper.SetDefault("minkowski_order", defaults.MinkowskiOrder)
	viper.SetDefault("gamma", defaults.Gamma)
	viper.SetDefault("default_metric", defaults.DefaultMetric)
	viper.SetDefault("default_transform", defaults.DefaultTransform)
	viper.SetDefault("enable_metrics", defaults.EnableMetrics)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("log_format", defaults.LogFormat)
	viper.SetDefault("prompt_default", defaults.PromptDefault)

	viper.SetEnvPrefix("SPECTRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		}
	}
}

// loadConfig reads the merged flag, environment, file and default settings.
func loadConfig() spectra.Config {
	cfg := spectra.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode config: %v\n", err)
	}
	return cfg
}

// newEngine builds an engine from the current configuration. A non-nil
// collector is attached to it.
func newEngine(collector *metrics.Collector) *spectra.Engine {
	cfg := loadConfig()
	if collector == nil && cfg.EnableMetrics {
		collector = metrics.NewCollector(true)
	}

	opts := []spectra.Option{
		spectra.WithConfig(cfg),
		spectra.WithLogger(logger),
	}
	if collector != nil {
		opts = append(opts, spectra.WithCollector(collector))
	}
	return spectra.NewEngine(opts...)
}

func main() {
	logger = zap.NewNop()
	defer func() {
		// Sync is best-effort; stderr cannot be synced on some platforms
		if err := logger.Sync(); err != nil {
			if !strings.Contains(err.Error(), "invalid argument") && !strings.Contains(err.Error(), "inappropriate ioctl") {
				fmt.Fprintf(os.Stderr, "Failed to sync logger: %v\n", err)
			}
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
