package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChristopherRabotin/otp"
	"github.com/ChristopherRabotin/otp/figures"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// This command plots the Δv trade-offs of a scenario and reports where the figures were written.

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		scenarioPath string
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "tradeoffs",
		Short: "Plot Δv trade-offs of orbit transfers",
		Long: `tradeoffs sweeps the target altitude of a Hohmann transfer and the inclination change of a
plane change on a low and a high circular orbit, then writes the figures.

Without --scenario, the conf.toml in $` + configEnv + ` is used if set, otherwise the defaults
(200 km to 200-20000 km, and 0-30 deg on 200 km vs 2000 km orbits around the Earth).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadScenario(viper.New(), scenarioPath)
			if err != nil {
				return err
			}
			logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(cmd.ErrOrStderr()))
			logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
			return run(conf, logger, verbose, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario TOML file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also log the configuration and series statistics")
	return cmd
}

func run(conf scenario, logger kitlog.Logger, verbose bool, out io.Writer) error {
	astro := kitlog.With(logger, "subsys", "astro")
	if verbose {
		astro.Log("level", "debug", "scenario", conf)
	}

	plan, err := otp.PlanSimple(conf.transfer)
	if err != nil {
		return err
	}
	hohmann, err := otp.Hohmann(conf.transfer.GM(), conf.transfer.R1, conf.transfer.R2)
	if err != nil {
		return err
	}
	astro.Log("level", "info", "dv_hohmann(m/s)", plan.Hohmann, "dv_plane_low(m/s)", plan.PlaneLow, "dv_combined_at_high(m/s)", plan.CombinedAtHigh, "tof", hohmann.TimeOfFlight)
	if verbose {
		// Same approximation as the planner: circular speed of the final orbit on both sides of the burn.
		vHigh, err := otp.CircularVelocity(conf.transfer.GM(), conf.transfer.R2)
		if err != nil {
			return err
		}
		vnc := otp.CombinedBurnVNC(vHigh, vHigh, conf.transfer.IncChange*otp.DegToRad)
		astro.Log("level", "debug", "burn", "combined_at_high", "dv_v(m/s)", vnc.At(0, 0), "dv_n(m/s)", vnc.At(1, 0), "dv_c(m/s)", vnc.At(2, 0))
	}

	body := conf.body
	altFig, err := otp.AltitudeSweep(body, body.AltitudeToRadius(conf.altitude.alt1*1e3), conf.altitude.min*1e3, conf.altitude.max*1e3, conf.altitude.samples)
	if err != nil {
		return err
	}
	incFig, err := otp.InclinationSweep(body, body.AltitudeToRadius(conf.inclination.low*1e3), body.AltitudeToRadius(conf.inclination.high*1e3), conf.inclination.min, conf.inclination.max, conf.inclination.samples)
	if err != nil {
		return err
	}

	sink, err := figures.FromFormats(conf.outputDir, conf.formats)
	if err != nil {
		return err
	}
	paths, err := otp.RenderAll(figures.NewLogged(sink, logger, verbose), altFig, incFig)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Transfer %s: %s\n", body.Name, plan)
	fmt.Fprintf(out, "Saved figures to %s:\n", conf.outputDir)
	for _, path := range paths {
		fmt.Fprintf(out, " - %s\n", filepath.Base(path))
	}
	return nil
}
