package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-raman/raman"
)

// NewShiftCommand builds the shift subcommand.
func NewShiftCommand() *cobra.Command {
	var excitationNM float64

	cmd := &cobra.Command{
		Use:   "shift <wavelength-nm>...",
		Short: "Convert emission wavelengths (nm) to Raman shift (cm⁻¹)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emission := make([]float64, len(args))

			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid wavelength %q: %w", arg, err)
				}
				emission[i] = v
			}

			shifts, err := raman.Shift(emission, excitationNM)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WAVELENGTH (nm)\tSHIFT (cm⁻¹)")

			for i := range emission {
				fmt.Fprintf(tw, "%.4g\t%.2f\n", emission[i], shifts[i])
			}

			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&excitationNM, "excitation-nm", raman.DefaultExcitationWavelengthNM, "excitation laser wavelength in nm")

	return cmd
}
