// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the folio-extract CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/folio-extract/internal/extract"
	"github.com/pdiddy/folio-extract/internal/report"
	"github.com/pdiddy/folio-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the CLI with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "folio-extract <document.json>",
		Short: "Extract folio facts from a recognized registry certificate",
		Long: `folio-extract reads the block output of a document recognition service
(a JSON object with a "Blocks" list) for one registry certificate and prints
the registration number, print date, department, municipality, vereda and
folio status.`,
		Args:    cobra.ExactArgs(1),
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return run(cmd.OutOrStdout(), log, args[0], cfg)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./folio-extract.yaml or ~/.config/folio-extract/folio-extract.yaml)")
	rootCmd.Flags().StringP("output", "o", "text", "output format: text, json, or yaml")
	rootCmd.Flags().BoolP("verbose", "v", false, "log scan decisions to stderr")

	_ = v.BindPFlag("output", rootCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetDefault("output", string(types.OutputText))
	v.SetDefault("log_level", zerolog.InfoLevel.String())

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("folio-extract")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "folio-extract"))
		}
	}

	v.SetEnvPrefix("FOLIO_EXTRACT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v.Set("log_level", zerolog.DebugLevel.String())
	}
	return nil
}

func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	format, err := report.ParseFormat(string(cfg.Output))
	if err != nil {
		return cfg, err
	}
	cfg.Output = format
	return cfg, nil
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}

// run loads one document, extracts the record and writes the report.
func run(w io.Writer, log zerolog.Logger, path string, cfg types.Config) error {
	doc, err := extract.LoadDocument(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("blocks", len(doc.Blocks)).Msg("document loaded")

	res, err := extract.New(log).Extract(doc)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", path, err)
	}
	return report.Write(w, res, cfg.Output)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
