package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ChristopherRabotin/otp"
	"github.com/spf13/viper"
)

const configEnv = "OTP_CONFIG"

// altitudeSweep is the Hohmann Δv vs target altitude sweep. Altitudes are in km.
type altitudeSweep struct {
	alt1     float64
	min, max float64
	samples  int
}

// inclinationSweep compares plane changes on two circular orbits. Altitudes are in km, inclinations in degrees.
type inclinationSweep struct {
	low, high float64
	min, max  float64
	samples   int
}

type scenario struct {
	outputDir   string
	formats     []string
	body        otp.CelestialObject
	transfer    otp.TransferCase
	altitude    altitudeSweep
	inclination inclinationSweep
}

func (s scenario) String() string {
	return fmt.Sprintf("%s -> %s (%s) | transfer %.0f km -> %.0f km Δi=%.2f deg", s.body, s.outputDir, strings.Join(s.formats, ","), (s.transfer.R1-s.body.Radius)/1e3, (s.transfer.R2-s.body.Radius)/1e3, s.transfer.IncChange)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.output_path", "figures")
	v.SetDefault("general.formats", []string{"png"})
	v.SetDefault("general.body", "Earth")
	v.SetDefault("transfer.alt1_km", 200.)
	v.SetDefault("transfer.alt2_km", 2000.)
	v.SetDefault("transfer.inc_deg", 0.)
	v.SetDefault("altitude.alt1_km", 200.)
	v.SetDefault("altitude.min_km", 200.)
	v.SetDefault("altitude.max_km", 20000.)
	v.SetDefault("altitude.samples", 50)
	v.SetDefault("inclination.low_km", 200.)
	v.SetDefault("inclination.high_km", 2000.)
	v.SetDefault("inclination.min_deg", 0.)
	v.SetDefault("inclination.max_deg", 30.)
	v.SetDefault("inclination.samples", 31)
}

// loadScenario reads the scenario file if one is provided. Otherwise, the `conf` file in the directory
// named by OTP_CONFIG is used if that variable is set, and the defaults if it isn't.
func loadScenario(v *viper.Viper, path string) (scenario, error) {
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
		}
	} else if confPath := os.Getenv(configEnv); confPath != "" {
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err != nil {
			return scenario{}, fmt.Errorf("%s/conf.toml not found: %w", confPath, err)
		}
	}

	body, err := otp.CelestialObjectFromString(v.GetString("general.body"))
	if err != nil {
		return scenario{}, err
	}
	conf := scenario{
		outputDir: v.GetString("general.output_path"),
		formats:   v.GetStringSlice("general.formats"),
		body:      body,
		transfer: otp.TransferCase{
			R1:        body.AltitudeToRadius(v.GetFloat64("transfer.alt1_km") * 1e3),
			R2:        body.AltitudeToRadius(v.GetFloat64("transfer.alt2_km") * 1e3),
			IncChange: v.GetFloat64("transfer.inc_deg"),
			Mu:        body.GM(),
		},
		altitude: altitudeSweep{
			alt1:    v.GetFloat64("altitude.alt1_km"),
			min:     v.GetFloat64("altitude.min_km"),
			max:     v.GetFloat64("altitude.max_km"),
			samples: v.GetInt("altitude.samples"),
		},
		inclination: inclinationSweep{
			low:     v.GetFloat64("inclination.low_km"),
			high:    v.GetFloat64("inclination.high_km"),
			min:     v.GetFloat64("inclination.min_deg"),
			max:     v.GetFloat64("inclination.max_deg"),
			samples: v.GetInt("inclination.samples"),
		},
	}
	if conf.altitude.samples < 1 || conf.inclination.samples < 1 {
		return scenario{}, fmt.Errorf("sweeps need at least one sample (altitude: %d, inclination: %d)", conf.altitude.samples, conf.inclination.samples)
	}
	return conf, nil
}
