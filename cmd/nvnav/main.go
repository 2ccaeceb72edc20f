package main

import (
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/ChristopherRabotin/nvector"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// nvnav reads a navigation scenario and reports positions, legs, closest points of approach and
// loop properties on the configured model.

const defaultScenario = "~~unset~~"

var (
	scenario string
	numCPUs  int
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "navigation scenario TOML file")
	flag.IntVar(&numCPUs, "cpus", -1, "number of CPUs used to solve closest points of approach (set to 0 for max CPUs)")
	flag.String("model", "", "model identifier, e.g. WGS84 or EARTH (overrides model.id)")
	flag.Int("precision", 7, "decimal places of angles in the report (overrides output.precision)")
	flag.String("log-level", "info", "debug, info, warn or error (overrides log.level)")
}

func newLogger(w io.Writer, lvl string) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	logger = level.NewFilter(logger, opt)
	return kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
}

// bindFlags makes the command line flags and the NVNAV_ environment variables override the scenario.
func bindFlags(v *viper.Viper, fs *flag.FlagSet) error {
	for key, name := range map[string]string{"model.id": "model", "output.precision": "precision", "log.level": "log-level"} {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	v.SetEnvPrefix("nvnav")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	v := viper.New()
	v.SetConfigFile(scenario)
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("%s: %s", scenario, err)
	}
	if err := bindFlags(v, flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	cfg, err := nvector.LoadConfig(v)
	if err != nil {
		log.Fatalf("%s: %s", scenario, err)
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)
	sc, err := readScenario(v)
	if err != nil {
		level.Error(logger).Log("scenario", scenario, "err", err)
		os.Exit(1)
	}
	availableCPUs := runtime.NumCPU()
	if numCPUs <= 0 || numCPUs > availableCPUs {
		numCPUs = availableCPUs
	}
	level.Info(logger).Log("scenario", scenario, "model", cfg.Model.ID, "positions", len(sc.Places), "legs", len(sc.Legs), "encounters", len(sc.Encounters), "cpus", numCPUs)

	r := newReporter(os.Stdout, cfg, logger)
	r.places(sc.Places)
	r.legs(sc.Legs)
	r.encounters(sc.Encounters, sc.Horizon, numCPUs)
	r.loop(sc.Loop, sc.Probes)
	r.sample(sc.Samples, sc.Seed)
	if r.err != nil {
		level.Error(logger).Log("err", r.err)
		os.Exit(1)
	}
	level.Debug(logger).Log("status", "done")
}
