package cmd

import (
	"fmt"

	"github.com/boel-dev/boel/internal/config"
	"github.com/boel-dev/boel/rawarray"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:     "generate FILE",
		Aliases: []string{"rand"},
		Short:   "Write a file of random values",
		Long: `Write a raw binary file of random values drawn from a normal or
uniform distribution. Existing content is replaced.

Example:
  boel generate data.bin --shape 3,4 --distribution uniform --type f32 --endian little`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc, err := a.cfg.Generate(args[0])
			if err != nil {
				return err
			}
			a.logger.Info().
				Int("elements", gc.Shape.NumElements()).
				Str("shape", gc.Shape.String()).
				Str("type", gc.Width.String()).
				Str("distribution", gc.Distribution.String()).
				Str("endian", gc.Endianness.String()).
				Msg("generating")

			res, err := rawarray.GenerateFile(gc.Path, rawarray.GenerateOptions{
				Distribution: gc.Distribution,
				Shape:        gc.Shape,
				Width:        gc.Width,
				Endianness:   gc.Endianness,
				Seed:         gc.Seed,
				Seeded:       gc.Seeded,
			})
			if err != nil {
				return err
			}
			a.logger.Info().
				Str("file", res.Path).
				Int("bytes", res.Bytes).
				Str("sha256", res.Checksum.String()).
				Msg("written")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", res.Bytes, res.Path)
			return err
		},
	}

	flags := generateCmd.Flags()
	flags.StringP(config.KeyDistribution, "d", "normal", "Distribution: normal or uniform")
	flags.Float64(config.KeyMean, 10, "Mean of the normal distribution")
	flags.Float64(config.KeyStd, 1, "Standard deviation of the normal distribution")
	flags.Float64(config.KeyMinimum, 0, "Minimum of the uniform interval (inclusive)")
	flags.Float64(config.KeyMaximum, 1, "Maximum of the uniform interval (exclusive)")
	flags.StringP(config.KeyShape, "s", "", "Shape as D1,D2 (required)")
	flags.StringP(config.KeyType, "t", "f64", "Element type: f32 or f64")
	flags.StringP(config.KeyEndian, "e", "native", "Byte order of the file: native, little or big")
	flags.Uint64(config.KeySeed, 0, "Seed for reproducible output (default random)")
	return generateCmd
}
