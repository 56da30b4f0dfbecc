package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/elm-emoji-gen/internal/app"
)

// NewTableCmd creates the 'table' command, which prints the emojiDict module.
func NewTableCmd() *cobra.Command {
	var (
		flags       inputFlags
		annotations string
		sortByOrder bool
		module      string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the Elm emoji lookup table",
		Long: `Print an Elm module mapping every short name to its name, glyph, sort order,
skin-tone variations and CLDR keywords.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd, &flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("annotations") {
				cfg.Annotations = annotations
			}
			if cmd.Flags().Changed("sort") {
				cfg.SortByOrder = sortByOrder
			}
			if cmd.Flags().Changed("module") {
				cfg.ModuleName = module
			}

			return runArtifact(cmd, cfg, func(g *app.Generator, in *os.File) ([]byte, error) {
				ann, err := g.LoadAnnotations()
				if err != nil {
					return nil, err
				}
				return g.Table(cmd.Context(), in, ann)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&annotations, "annotations", "a", "", "CLDR annotations XML providing keywords")
	cmd.Flags().BoolVar(&sortByOrder, "sort", false, "order entries by sort_order instead of input order")
	cmd.Flags().StringVar(&module, "module", "Emojis", "Elm module name to declare")
	return cmd
}
