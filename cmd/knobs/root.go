package main

import (
	"fmt"
	"os"

	"github.com/aretw0/knobs/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "knobs",
	Short: "Knobs is a typed parameter registry",
	Long: `Knobs validates name=value assignments against declared boolean, numeric and
enumerated string parameters, and can persist, serve and inspect their values.

Parameters are declared in a definitions file (knobs.yaml, knobs.yml or knobs.json
in the current directory, or the file given with --defs).

Set KNOBS_ENCRYPTION_KEY to a base64 encoded 32 byte key to encrypt stored snapshots.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("defs", "", "Parameter definitions file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringP("output", "o", cli.FormatAuto, "Output format: auto, text, markdown, json or yaml")
	rootCmd.PersistentFlags().String("store", cli.StoreFile, "Snapshot store: file, memory or redis")
	rootCmd.PersistentFlags().String("store-dir", "", "Directory for the file store (default .knobs/snapshots)")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis URL for the redis store, e.g. redis://localhost:6379/0")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Name patterns (regexp) of parameters never written to snapshots")
}

// options collects the persistent flags.
func options(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	defs, _ := flags.GetString("defs")
	level, _ := flags.GetString("log-level")
	output, _ := flags.GetString("output")
	store, _ := flags.GetString("store")
	storeDir, _ := flags.GetString("store-dir")
	redisURL, _ := flags.GetString("redis-url")
	exclude, _ := flags.GetStringSlice("exclude")

	// Keys stay out of flags so they do not end up in shell history.
	encryptionKey := os.Getenv("KNOBS_ENCRYPTION_KEY")

	return cli.Options{
		DefsPath:      defs,
		LogLevel:      level,
		Store:         store,
		StoreDir:      storeDir,
		RedisURL:      redisURL,
		Output:        output,
		EncryptionKey: encryptionKey,
		Exclude:       exclude,
	}
}
