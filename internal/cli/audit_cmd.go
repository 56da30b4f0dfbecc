package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/elm-emoji-gen/internal/app"
)

// NewAuditCmd creates the 'audit' command, which compares short names with the
// shortcode table of the emoji library.
func NewAuditCmd() *cobra.Command {
	var (
		flags   inputFlags
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report short names whose glyph differs from the common shortcode table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return runArtifact(cmd, cfg, func(g *app.Generator, in *os.File) ([]byte, error) {
				report, err := g.Audit(cmd.Context(), in)
				if err != nil {
					return nil, err
				}

				var buf bytes.Buffer
				fmt.Fprintf(&buf, "checked: %d\nmatched: %d\nmismatched: %d\nunknown: %d\n",
					report.Checked, report.Matched, len(report.Mismatched), len(report.Unknown))
				for _, m := range report.Mismatched {
					fmt.Fprintf(&buf, "mismatch %s: data %s, shortcode %s\n", m.ShortName, m.Native, m.Library)
				}
				if verbose {
					for _, name := range report.Unknown {
						fmt.Fprintf(&buf, "unknown %s\n", name)
					}
				}
				return buf.Bytes(), nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list short names missing from the shortcode table")
	return cmd
}
