// Package sim provides the stochastic and deterministic logistics simulations.
//
// # Reading Guide
//
//   - throughput.go: effective throughput and the mission risk flag (closed form)
//   - cargo.go: discrete-event cargo flow over a simulation window
//   - rover.go: simplified agent-based rover task completion
//   - power.go: two-state (operational/repair) Markov power availability
//   - replicate.go: independent seeded replications and their summary statistics
//
// # Randomness
//
// No routine touches a global generator. Every stochastic routine takes an
// explicit *rand.Rand; PartitionedRNG derives isolated, reproducible streams
// per subsystem from one master seed. Variates are drawn with gonum's distuv
// distributions using the caller's generator as the source.
//
// # Errors
//
// Parameters violating their domain (non-positive rates, speeds, horizons,
// probabilities outside [0, 1]) fail fast with an error wrapping
// model.ErrInvalidInput, before any loop runs.
package sim
