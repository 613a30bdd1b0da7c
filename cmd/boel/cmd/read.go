package cmd

import (
	"github.com/boel-dev/boel/internal/config"
	"github.com/boel-dev/boel/rawarray"
	"github.com/spf13/cobra"
)

func newReadCmd(a *app) *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read FILE",
		Short: "Decode a raw binary file and print it",
		Long: `Decode a raw binary file of f32 or f64 values and print the result.

With --chunk or --window the flat values are printed piece by piece instead
of as one array.

Example:
  boel read data.bin --type f64 --endian big --shape 2,5
  boel read data.bin --type f32 --window 4 --stride 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := a.cfg.Read(args[0])
			if err != nil {
				return err
			}
			a.logger.Info().
				Str("file", rc.Path).
				Str("nbytes", rc.Policy.String()).
				Str("endian", rc.Endianness.String()).
				Str("type", rc.Width.String()).
				Msg("reading")

			arr, err := rawarray.ReadFile(rc.Path, rawarray.ReadOptions{
				Policy:     rc.Policy,
				Endianness: rc.Endianness,
				Width:      rc.Width,
				Shape:      rc.Shape,
				UseMmap:    rc.UseMmap,
				Logger:     &a.logger,
			})
			if err != nil {
				return err
			}
			a.logger.Info().Int("elements", arr.NumElements()).Str("shape", arr.Shape().String()).Msg("decoded")

			return writeArray(cmd.OutOrStdout(), arr, rc)
		},
	}

	flags := readCmd.Flags()
	flags.Int64P(config.KeyNBytes, "b", 0, "Number of bytes to read from the start of the file (default whole file)")
	flags.StringP(config.KeyEndian, "e", "native", "Byte order of the file: native, little or big")
	flags.StringP(config.KeyType, "t", "f64", "Element type: f32 or f64")
	flags.StringP(config.KeyShape, "s", "", "Shape as D1 or D1,D2 (default 1D over all values)")
	flags.Bool(config.KeyMmap, false, "Decode from a memory mapping instead of a read")
	flags.StringP(config.KeyFormat, "f", config.FormatText, "Output format: text, json or yaml")
	flags.Int(config.KeyChunk, 0, "Print consecutive chunks of N values")
	flags.Int(config.KeyWindow, 0, "Print sliding windows of N values")
	flags.Int(config.KeyStride, 1, "Advance of each window")
	return readCmd
}
