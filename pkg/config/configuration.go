package config

import (
	"fmt"
	"math/rand"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
	"github.com/ADS-laboratory/chrono-probe/pkg/distribution"
)

// Workloads.
const (
	WorkloadPeriod  = "period"
	WorkloadSorting = "sorting"
	WorkloadSearch  = "search"
)

// Size distributions.
const (
	DistributionUniform     = "uniform"
	DistributionExponential = "exponential"
	DistributionReciprocal  = "reciprocal"
	DistributionConstant    = "constant"
)

// Generation modes.
const (
	GenerationFixed  = "fixed"
	GenerationRandom = "random"
)

// Plot scales and formats.
const (
	PlotScaleLinear = "linear"
	PlotScaleLogLog = "loglog"

	PlotFormatPNG  = "png"
	PlotFormatSVG  = "svg"
	PlotFormatHTML = "html"
)

// Experiment is the JSON configuration of one measurement run.
type Experiment struct {
	Seed int64 `json:"Seed"`

	Workload       string `json:"Workload"`
	Charset        string `json:"Charset"`
	TextMethod     string `json:"TextMethod"`
	SearchStrategy string `json:"SearchStrategy"`

	Distribution string `json:"Distribution"`
	Generation   string `json:"Generation"`
	MinSize      int    `json:"MinSize"`
	MaxSize      int    `json:"MaxSize"`

	N             int     `json:"N"`
	Repetitions   int     `json:"Repetitions"`
	RelativeError float64 `json:"RelativeError"`

	TimeLimitSeconds int `json:"TimeLimitSeconds"`

	OutputPathPrefix string   `json:"OutputPathPrefix"`
	PlotScale        string   `json:"PlotScale"`
	PlotFormats      []string `json:"PlotFormats"`
}

// Validate fails fast on any configuration the engine would reject, before
// any input generation or timing.
func (e Experiment) Validate() error {
	if !isOneOf(e.Workload, WorkloadPeriod, WorkloadSorting, WorkloadSearch) {
		return fmt.Errorf("%w: unknown workload %q", common.ErrInvalidArgument, e.Workload)
	}
	if !isOneOf(e.Distribution, DistributionUniform, DistributionExponential, DistributionReciprocal, DistributionConstant) {
		return fmt.Errorf("%w: unknown distribution %q", common.ErrInvalidArgument, e.Distribution)
	}
	if !isOneOf(e.Generation, GenerationFixed, GenerationRandom) {
		return fmt.Errorf("%w: unknown generation mode %q", common.ErrInvalidArgument, e.Generation)
	}
	if !isOneOf(e.PlotScale, PlotScaleLinear, PlotScaleLogLog) {
		return fmt.Errorf("%w: unknown plot scale %q", common.ErrInvalidArgument, e.PlotScale)
	}
	for _, format := range e.PlotFormats {
		if !isOneOf(format, PlotFormatPNG, PlotFormatSVG, PlotFormatHTML) {
			return fmt.Errorf("%w: unknown plot format %q", common.ErrInvalidArgument, format)
		}
	}

	if e.MinSize < 1 || e.MaxSize < e.MinSize {
		return fmt.Errorf("%w: size range [%d, %d]", common.ErrInvalidArgument, e.MinSize, e.MaxSize)
	}
	if e.N < 1 {
		return fmt.Errorf("%w: N must be positive, got %d", common.ErrInvalidArgument, e.N)
	}
	if e.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be positive, got %d", common.ErrInvalidArgument, e.Repetitions)
	}
	if e.RelativeError <= 0 {
		return fmt.Errorf("%w: relative error must be positive, got %g", common.ErrInvalidArgument, e.RelativeError)
	}
	if e.TimeLimitSeconds < 0 {
		return fmt.Errorf("%w: time limit must not be negative, got %d", common.ErrInvalidArgument, e.TimeLimitSeconds)
	}

	return nil
}

// BuildDistribution constructs the configured size distribution, seeded for
// reproducible random generation.
func (e Experiment) BuildDistribution() (distribution.Distribution, error) {
	genType := distribution.FixedIntervals
	if e.Generation == GenerationRandom {
		genType = distribution.Random
	}
	rng := rand.New(rand.NewSource(e.Seed))

	switch e.Distribution {
	case DistributionUniform:
		uniform, err := distribution.NewUniform(e.MinSize, e.MaxSize)
		if err != nil {
			return nil, err
		}
		return uniform.WithGenerationType(genType).WithRand(rng), nil
	case DistributionExponential:
		exponential, err := distribution.NewExponential(e.MinSize, e.MaxSize)
		if err != nil {
			return nil, err
		}
		return exponential.WithGenerationType(genType).WithRand(rng), nil
	case DistributionReciprocal:
		reciprocal, err := distribution.NewReciprocal(e.MinSize, e.MaxSize)
		if err != nil {
			return nil, err
		}
		return reciprocal.WithGenerationType(genType).WithRand(rng), nil
	case DistributionConstant:
		return distribution.NewConstant(e.MaxSize)
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q", common.ErrInvalidArgument, e.Distribution)
	}
}

func isOneOf(value string, allowed ...string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}

	return false
}
