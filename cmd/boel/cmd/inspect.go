package cmd

import (
	"fmt"

	"github.com/boel-dev/boel/internal/config"
	"github.com/boel-dev/boel/internal/rawfile"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show size, element count and checksum of a raw file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := a.cfg.Width()
			if err != nil {
				return err
			}
			st, err := rawfile.Inspect(args[0], width)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:      %s\n", st.Path)
			fmt.Fprintf(out, "Size:      %d bytes\n", st.Size)
			fmt.Fprintf(out, "Elements:  %d x %s\n", st.Elements, st.Width)
			if st.Remainder != 0 {
				fmt.Fprintf(out, "Remainder: %d bytes (not aligned to %s)\n", st.Remainder, st.Width)
			}
			fmt.Fprintf(out, "SHA-256:   %s\n", st.Checksum)
			return nil
		},
	}

	inspectCmd.Flags().StringP(config.KeyType, "t", "f64", "Element type: f32 or f64")
	return inspectCmd
}
