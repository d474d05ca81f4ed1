package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rota-carreira/rota/internal/careers"
	"github.com/rota-carreira/rota/internal/logger"
	"github.com/rota-carreira/rota/internal/progress"
	"github.com/rota-carreira/rota/internal/recommend"
)

const (
	app = "rota"
)

type Config struct {
	CatalogFile string            `mapstructure:"catalog-file"`
	ProfileFile string            `mapstructure:"profile-file"`
	Recommend   *RecommendConfig  `mapstructure:"recommend"`
	Processing  *ProcessingConfig `mapstructure:"processing"`
}

type RecommendConfig struct {
	MinimumScore int `mapstructure:"minimum-score"`
	Limit        int `mapstructure:"limit"`
}

type ProcessingConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Delay   time.Duration `mapstructure:"delay"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "rota is a career requalification questionnaire that recommends career paths",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("profile-file", "ROTA_PROFILE_FILE"); err != nil {
		log.Fatalf("binding ROTA_PROFILE_FILE environment variable: %v", err)
	}

	viper.SetDefault("recommend.minimum-score", recommend.DefaultMinimumScore)
	viper.SetDefault("recommend.limit", recommend.DefaultLimit)
	viper.SetDefault("processing.enabled", true)
	viper.SetDefault("processing.delay", progress.DefaultDelay)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is rota.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog-file", "", "JSON file with career profiles (default is the built-in catalog)")
	rootCmd.PersistentFlags().String("profile-file", "", "file where the last submitted profile is remembered")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("profile-file", rootCmd.PersistentFlags().Lookup("profile-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Without a config file the defaults are used. An explicit or unparsable one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Recommend == nil {
		config.Recommend = &RecommendConfig{
			MinimumScore: recommend.DefaultMinimumScore,
			Limit:        recommend.DefaultLimit,
		}
	}

	if config.Processing == nil {
		config.Processing = &ProcessingConfig{Enabled: true, Delay: progress.DefaultDelay}
	}

	return config, nil
}

// setup builds the logger and reads the config, exiting on failure.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	return logger, config
}

func newEngine(config *Config, logger *zap.Logger) (*recommend.Engine, error) {
	catalog, err := careers.Load(config.CatalogFile)
	if err != nil {
		return nil, err
	}

	logger.Debug("catalog loaded",
		zap.String("path", config.CatalogFile),
		zap.Int("profiles", catalog.Len()),
	)

	opts := recommend.Options{
		MinimumScore: config.Recommend.MinimumScore,
		Limit:        config.Recommend.Limit,
	}

	return recommend.New(catalog, opts, logger), nil
}
