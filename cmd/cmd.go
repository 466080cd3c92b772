// Package cmd defines the command-line interface for gitlens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(evolutionCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(frequencyCmd)
	rootCmd.AddCommand(hotspotsCmd)
	rootCmd.AddCommand(ownershipCmd)
	rootCmd.AddCommand(knowledgeCmd)
	rootCmd.AddCommand(contributionsCmd)
	rootCmd.AddCommand(divergenceCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of commits to scan and results to display")
	rootCmd.PersistentFlags().Int("skip", 0, "Number of commits to skip before scanning")
	rootCmd.PersistentFlags().String("merges", "", "Include merge commits (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("author", "a", "", "Only include commits by authors matching this pattern")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Only include commits touching this path")
	rootCmd.PersistentFlags().String("since", "", "Lower time bound as unix seconds or RFC3339")
	rootCmd.PersistentFlags().String("until", "", "Upper time bound as unix seconds or RFC3339")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("parquet-file", "", "Optional path to export results as Parquet")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.NoneBackend), "Analysis tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored values in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of timelineCmd to Viper
	timelineCmd.Flags().StringP("period", "p", string(schema.DayPeriod), "Bucketing period: hour, day, week, month or year")
	if err := viper.BindPFlags(timelineCmd.Flags()); err != nil {
		contract.LogFatal("Error binding timeline flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}
