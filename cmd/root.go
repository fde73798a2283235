package cmd

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/uniseed/internal/config"
	"github.com/Lumos-Labs-HQ/uniseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "uniseed",
	Short: "Generate SQL seed data for a university course-enrollment schema",
	Long: `
uniseed writes a script of INSERT statements that fills an empty
course-enrollment database with plausible test data:

- Students and Instructors (fake names, derived emails)
- Courses and CourseOfferings
- Grades (fixed A..F scale)
- Enrollments and Prerequisites

The script goes to stdout unless --out is given; progress goes to stderr.

Examples:
  uniseed > seed.sql
  uniseed --seed 42 --out seed.sql
  uniseed config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "uniseed version %s\n", Version)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return runGenerate(cmd, cfg)
	},
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	s, err := seeder.NewSeeder(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if cfg.Runtime.Output == "" {
		return s.Seed(cmd.OutOrStdout())
	}

	f, err := os.Create(cfg.Runtime.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := s.Seed(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if !cfg.Runtime.Quiet {
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "💾 Script written to %s\n", cfg.Runtime.Output)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./uniseed.config.json)")
	rootCmd.PersistentFlags().StringP("out", "o", "", "Write the script to a file instead of stdout")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for reproducible output (0 uses the clock)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("uniseed.config")
	}

	viper.SetEnvPrefix("uniseed")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			color.New(color.FgYellow).Fprintf(os.Stderr, "⚠️  Could not read config file %s: %v\n", viper.ConfigFileUsed(), err)
		}
	}
}
