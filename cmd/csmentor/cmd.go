package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/getzep/csmentor/config"
	"github.com/getzep/csmentor/internal"
	"github.com/getzep/csmentor/pkg/intents"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool
)

var cmd = &cobra.Command{
	Use:   "csmentor",
	Short: "csmentor answers Computer Science questions from a curated intent corpus and an extractive QA model",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var askCmd = &cobra.Command{
	Use:     "ask <question>",
	Short:   "Resolve a single question and print the result as JSON",
	Example: `csmentor ask "What are algorithms?"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error configuring csmentor: %w", err)
		}

		appState := NewAppState(cfg)
		if appState.Resolver == nil {
			return appState.CorpusErr
		}

		result, err := appState.Resolver.GetAnswer(context.Background(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Load an intents file and report whether it is well formed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultIntentsPath
		if len(args) == 1 {
			path = args[0]
		} else if cfg, err := config.LoadConfig(cfgFile); err == nil {
			path = cfg.Intents.Path
		}

		corpus, err := intents.LoadFile(path)
		if err != nil {
			return err
		}

		fmt.Fprintf(
			cmd.OutOrStdout(),
			"%s: %d intents, %d patterns\n",
			path,
			corpus.Len(),
			corpus.PatternCount(),
		)
		return nil
	},
}

var dumpJSONSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for csmentor's configuration file",
	Example: "csmentor json-schema > csmentor_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(askCmd)
	cmd.AddCommand(validateCmd)
	cmd.AddCommand(dumpJSONSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
