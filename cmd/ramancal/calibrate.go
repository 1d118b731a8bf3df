package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-raman/calibrate"
	"github.com/cwbudde/algo-raman/dsp/peaks"
	"github.com/cwbudde/algo-raman/raman"
	"github.com/cwbudde/algo-raman/reader"
)

// NewCalibrateCommand builds the calibrate subcommand.
func NewCalibrateCommand() *cobra.Command {
	var (
		neonPath       string
		acetoPath      string
		samplePath     string
		outputPath     string
		excitationNM   float64
		kernelSize     int
		roughThreshold float64
		fineThreshold  float64
		refineMethod   string
		refineWindow   int
	)

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Derive a calibrated wavenumber axis from reference traces",
		Long: "Derive a calibrated wavenumber axis from a neon-lamp trace and an " +
			"acetonitrile trace, optionally pairing it with a sample trace.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := calibrate.Config{
				ExcitationWavelengthNM: excitationNM,
				KernelSize:             kernelSize,
				RoughThreshold:         roughThreshold,
				FineThreshold:          fineThreshold,
				RefineWindow:           refineWindow,
			}

			if refineMethod != "" && refineMethod != "none" {
				method, err := peaks.ParseMethod(refineMethod)
				if err != nil {
					return err
				}
				cfg.Refinement = method
			}

			return runCalibrate(cmd, cfg, neonPath, acetoPath, samplePath, outputPath)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&neonPath, "neon", "", "neon lamp trace CSV (excitation calibration)")
	flags.StringVar(&acetoPath, "acetonitrile", "", "acetonitrile trace CSV (emission calibration)")
	flags.StringVar(&samplePath, "sample", "", "sample trace CSV to pair with the calibrated axis")
	flags.StringVar(&outputPath, "output", "", "write the calibrated sample spectrum to this CSV file")
	flags.Float64Var(&excitationNM, "excitation-nm", raman.DefaultExcitationWavelengthNM, "excitation laser wavelength in nm")
	flags.IntVar(&kernelSize, "kernel-size", 5, "median filter kernel for the calibration traces (odd, 1 disables)")
	flags.Float64Var(&roughThreshold, "rough-threshold", 1.0, "maximum residual sum of squares for the rough fit")
	flags.Float64Var(&fineThreshold, "fine-threshold", 100.0, "maximum residual sum of squares for the fine fit")
	flags.StringVar(&refineMethod, "refine", "none", "sub-pixel peak refinement (none, parabolic, gaussian)")
	flags.IntVar(&refineWindow, "refine-window", 7, "gaussian refinement window in samples (odd)")

	_ = cmd.MarkFlagRequired("neon")
	_ = cmd.MarkFlagRequired("acetonitrile")

	return cmd
}

func runCalibrate(cmd *cobra.Command, cfg calibrate.Config, neonPath, acetoPath, samplePath, outputPath string) error {
	cal, err := calibrate.New(cfg)
	if err != nil {
		return err
	}

	logrus.Debugf("loading excitation trace from %s", neonPath)
	excitation, err := reader.OpenRamanCSVFile(neonPath)
	if err != nil {
		return err
	}

	logrus.Debugf("loading emission trace from %s", acetoPath)
	emission, err := reader.OpenRamanCSVFile(acetoPath)
	if err != nil {
		return err
	}

	var sample []float64
	if samplePath != "" {
		logrus.Debugf("loading sample trace from %s", samplePath)
		sample, err = reader.OpenRamanCSVFile(samplePath)
		if err != nil {
			return err
		}
	}

	res, err := cal.Calibrate(excitation, emission)

	for _, w := range res.Warnings {
		logrus.Warnf("%s stage: %s", w.Stage, w.Message)
	}

	if err != nil {
		printStages(cmd, res)
		return err
	}

	printStages(cmd, res)

	axis := res.Wavenumbers
	cmd.Printf("calibrated axis: %d points, %.1f to %.1f cm⁻¹\n",
		len(axis), axis[0], axis[len(axis)-1])

	if sample == nil {
		return nil
	}

	spec, err := raman.New(axis, sample)
	if err != nil {
		return err
	}

	printSampleInfo(cmd, spec)

	if outputPath != "" {
		if err := writeSpectrumCSV(outputPath, spec); err != nil {
			return err
		}
		logrus.Infof("wrote calibrated spectrum to %s", outputPath)
	}

	return nil
}

func printStages(cmd *cobra.Command, res calibrate.Result) {
	bold := func(format string, a ...interface{}) string {
		return color.New(color.Bold).Sprintf(format, a...)
	}

	cmd.Printf("%s %s\n", bold("state:"), stateString(res.State))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tPEAKS\tFITNESS")

	for _, row := range []struct {
		stage calibrate.Stage
		data  calibrate.StageResult
	}{
		{calibrate.StageRough, res.Rough},
		{calibrate.StageFine, res.Fine},
	} {
		if row.data.Peaks == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3g\n", row.stage, intsString(row.data.Peaks), row.data.Fitness)
	}

	tw.Flush()
}

func stateString(s calibrate.State) string {
	switch s {
	case calibrate.StateFineCalibrated:
		return color.New(color.Bold, color.FgGreen).Sprint(s.String())
	case calibrate.StateFailed:
		return color.New(color.Bold, color.FgRed).Sprint(s.String())
	default:
		return s.String()
	}
}

func printSampleInfo(cmd *cobra.Command, spec raman.Spectrum) {
	snr, err := spec.SNR()
	if err != nil {
		logrus.Debugf("skipping SNR: %v", err)
		return
	}

	cmd.Printf("sample SNR: %.1f dB\n", snr)
}

func writeSpectrumCSV(path string, spec raman.Spectrum) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	wn := spec.Wavenumbers()
	in := spec.Intensities()

	if _, err := fmt.Fprintln(f, "Wavenumber (cm-1),Intensity (a.u.)"); err != nil {
		f.Close()
		return err
	}

	for i := range wn {
		if _, err := fmt.Fprintf(f, "%g,%g\n", wn[i], in[i]); err != nil {
			f.Close()
			return err
		}
	}

	return f.Close()
}

func intsString(ints []int) string {
	parts := make([]string, len(ints))
	for i, v := range ints {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, ",")
}
