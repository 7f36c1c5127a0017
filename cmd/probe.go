package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
	"github.com/ADS-laboratory/chrono-probe/pkg/config"
	"github.com/ADS-laboratory/chrono-probe/pkg/distribution"
	"github.com/ADS-laboratory/chrono-probe/pkg/export"
	"github.com/ADS-laboratory/chrono-probe/pkg/input"
	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
	"github.com/ADS-laboratory/chrono-probe/pkg/plotter"
	"github.com/ADS-laboratory/chrono-probe/pkg/workload/search"
	"github.com/ADS-laboratory/chrono-probe/pkg/workload/sorting"
	"github.com/ADS-laboratory/chrono-probe/pkg/workload/text"
)

var (
	configPath = flag.String("config", "cmd/config_period.json", "Path to experiment configuration file")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg, err := config.ReadExperimentFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	dist, err := cfg.BuildDistribution()
	if err != nil {
		log.Fatal(err)
	}

	logClockDiagnostics()
	log.Infof("Running %s workload over %s, N=%d, repetitions=%d, relative error %g",
		cfg.Workload, dist, cfg.N, cfg.Repetitions, cfg.RelativeError)

	var ms *measurement.Measurements
	switch cfg.Workload {
	case config.WorkloadPeriod:
		ms, err = runPeriod(cfg, dist)
	case config.WorkloadSorting:
		ms, err = runSorting(cfg, dist)
	case config.WorkloadSearch:
		ms, err = runSearch(cfg, dist)
	}
	if err != nil {
		log.Fatal(err)
	}

	reportRegressions(ms)
	persist(cfg, dist, ms)
}

func logClockDiagnostics() {
	measured := measurement.Resolution()
	log.Infof("Measured clock resolution: %s", measured)

	if kernel, err := measurement.KernelClockResolution(); err == nil {
		log.Infof("Kernel reported clock resolution: %s", kernel)
	} else {
		log.Debugf("Kernel clock resolution unavailable: %v", err)
	}
}

func measureOptions(cfg config.Experiment) []measurement.Option {
	opts := []measurement.Option{
		measurement.WithProgress(common.LogProgress("measuring")),
	}
	if cfg.TimeLimitSeconds > 0 {
		opts = append(opts, measurement.WithTimeLimit(time.Duration(cfg.TimeLimitSeconds)*time.Second))
	}

	return opts
}

func textMethod(name string) (text.Method, error) {
	switch name {
	case "", "uniform":
		return text.MethodUniform, nil
	case "prefix-periodic":
		return text.MethodPrefixPeriodic, nil
	case "cyclic":
		return text.MethodCyclic, nil
	default:
		return 0, fmt.Errorf("%w: unknown text method %q", common.ErrInvalidArgument, name)
	}
}

func searchStrategy(name string) (search.Strategy, error) {
	switch name {
	case "", "bucket":
		return search.StrategyBucket, nil
	case "sorted-uniform":
		return search.StrategySortedUniform, nil
	default:
		return 0, fmt.Errorf("%w: unknown search strategy %q", common.ErrInvalidArgument, name)
	}
}

func runPeriod(cfg config.Experiment, dist distribution.Distribution) (*measurement.Measurements, error) {
	charset, err := text.NewCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}
	method, err := textMethod(cfg.TextMethod)
	if err != nil {
		return nil, err
	}

	builder := input.NewBuilder[text.Text](dist, text.NewGenerator(charset, method, cfg.Seed))
	set, err := builder.BuildWithRepetitions(cfg.N, cfg.Repetitions, input.WithProgress(common.LogProgress("generating inputs")))
	if err != nil {
		return nil, err
	}

	return measurement.Measure(set, text.Algorithms(), cfg.RelativeError, measureOptions(cfg)...)
}

func runSorting(cfg config.Experiment, dist distribution.Distribution) (*measurement.Measurements, error) {
	builder := input.NewBuilder[sorting.Sequence](dist, sorting.NewGenerator(cfg.Seed))
	set, err := builder.BuildWithRepetitions(cfg.N, cfg.Repetitions, input.WithProgress(common.LogProgress("generating inputs")))
	if err != nil {
		return nil, err
	}

	return measurement.MeasureMut(set, sorting.Algorithms(), cfg.RelativeError, measureOptions(cfg)...)
}

func runSearch(cfg config.Experiment, dist distribution.Distribution) (*measurement.Measurements, error) {
	strategy, err := searchStrategy(cfg.SearchStrategy)
	if err != nil {
		return nil, err
	}

	builder := input.NewBuilder[search.Instance](dist, search.NewGenerator(strategy, cfg.Seed))
	set, err := builder.BuildWithRepetitions(cfg.N, cfg.Repetitions, input.WithProgress(common.LogProgress("generating inputs")))
	if err != nil {
		return nil, err
	}

	return measurement.Measure(set, search.Algorithms(), cfg.RelativeError, measureOptions(cfg)...)
}

// reportRegressions logs the slope of each series on a log-log scale, an
// estimate of the exponent of the algorithm's running-time power law.
func reportRegressions(ms *measurement.Measurements) {
	for _, series := range ms.Series {
		slope, intercept := series.LogLogScale().LinearRegression()
		log.Infof("%s: log-log regression %.3f * x + %.3f", series.AlgorithmName, slope, intercept)
	}
}

func persist(cfg config.Experiment, dist distribution.Distribution, ms *measurement.Measurements) {
	run := export.NewRun(cfg.Workload, dist.String(), ms)
	base := fmt.Sprintf("%s_%s", cfg.OutputPathPrefix, run.ID)

	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatal(err)
		}
	}

	if err := export.WriteJSON(base+".json", run); err != nil {
		log.Fatal(err)
	}
	if err := export.WriteCSV(base+".csv", ms); err != nil {
		log.Fatal(err)
	}
	log.Infof("Results written to %s.{json,csv}", base)

	plotCfg := plotter.DefaultConfig().WithTitle(cfg.Workload)
	if cfg.PlotScale == config.PlotScaleLogLog {
		plotCfg = plotCfg.WithScale(plotter.LogLog).WithLabels("log2(size)", "log2(time [us])")
	}

	for _, format := range cfg.PlotFormats {
		path := base + "." + format

		switch format {
		case config.PlotFormatHTML:
			err := plotter.RenderHTML(path, ms, plotCfg)
			if err != nil {
				log.Fatal(err)
			}
		default:
			if err := plotter.TimePlot(path, ms, plotCfg); err != nil {
				log.Fatal(err)
			}
		}

		log.Infof("Plot written to %s", path)
	}
}
