package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/elm-emoji-gen/internal/config"
	"github.com/haytac/elm-emoji-gen/internal/logging"
)

var (
	cfgFile string
	AppCfg  *config.AppConfig // populated in PersistentPreRunE
	logSink *logging.Sink
)

var RootCmd = &cobra.Command{
	Use:   "elm-emoji-gen",
	Short: "Generate Elm emoji tables from emoji-data JSON and CLDR annotations.",
	Long: `elm-emoji-gen reads the emoji-data JSON array (and optionally a CLDR annotations
XML file) and prints Elm source for the emoji lookup table or the category bindings.
Output is written to stdout only after the whole input has been processed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg

		sink, err := logging.Setup(AppCfg.Log)
		if err != nil {
			return fmt.Errorf("error setting up logging: %w", err)
		}
		logSink = sink
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := RootCmd.Execute()
	if closeErr := logSink.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("closing log file: %w", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.elm-emoji-gen/config.yaml)")

	RootCmd.AddCommand(NewTableCmd())
	RootCmd.AddCommand(NewCategoriesCmd())
	RootCmd.AddCommand(NewAuditCmd())
}
