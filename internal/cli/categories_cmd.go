package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/elm-emoji-gen/internal/app"
)

// NewCategoriesCmd creates the 'categories' command.
func NewCategoriesCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"symbols"},
		Short:   "Print one Elm binding per canonical emoji category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return runArtifact(cmd, cfg, func(g *app.Generator, in *os.File) ([]byte, error) {
				return g.Categories(cmd.Context(), in)
			})
		},
	}

	flags.register(cmd)
	return cmd
}
