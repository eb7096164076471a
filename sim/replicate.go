package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
)

// ReplicationSummary aggregates one scalar output over independent replications.
type ReplicationSummary struct {
	Runs   int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
}

// Replicate runs fn once per replication, each on its own stream derived from
// rng (SubsystemReplication(i)), and summarizes the returned values. The first
// error aborts the run.
func Replicate(runs int, rng *PartitionedRNG, fn func(r *rand.Rand) (float64, error)) (ReplicationSummary, []float64, error) {
	if runs <= 0 {
		return ReplicationSummary{}, nil, fmt.Errorf("runs must be positive, got %d", runs)
	}
	samples := make([]float64, runs)
	for i := range samples {
		v, err := fn(rng.ForSubsystem(SubsystemReplication(i)))
		if err != nil {
			return ReplicationSummary{}, nil, fmt.Errorf("replication %d: %w", i, err)
		}
		samples[i] = v
	}
	summary, err := Summarize(samples)
	if err != nil {
		return ReplicationSummary{}, nil, err
	}
	return summary, samples, nil
}

// Summarize computes replication statistics over samples.
// StdDev is the population standard deviation; P95 uses the nearest-rank method.
func Summarize(samples []float64) (ReplicationSummary, error) {
	s := ReplicationSummary{Runs: len(samples)}
	for _, stat := range []struct {
		dst *float64
		fn  func(stats.Float64Data) (float64, error)
	}{
		{&s.Mean, stats.Mean},
		{&s.StdDev, stats.StandardDeviation},
		{&s.Min, stats.Min},
		{&s.Max, stats.Max},
		{&s.P50, stats.Median},
		{&s.P95, func(d stats.Float64Data) (float64, error) { return stats.PercentileNearestRank(d, 95) }},
	} {
		v, err := stat.fn(samples)
		if err != nil {
			return ReplicationSummary{}, fmt.Errorf("summarizing replications: %w", err)
		}
		*stat.dst = v
	}
	return s, nil
}
