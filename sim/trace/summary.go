package trace

// StateOperational and StateRepair are the recorded state names.
const (
	StateOperational = "operational"
	StateRepair      = "repair"
)

// PowerSummary aggregates statistics from a PowerTrace.
type PowerSummary struct {
	Failures          int
	Repairs           int
	MeanUptime        float64 // mean length of completed operational sojourns
	MeanRepairTime    float64 // mean length of completed repair sojourns
	LongestRepairTime float64
}

// Summarize computes aggregate statistics from a PowerTrace.
// Safe for nil or empty traces (returns zero-value fields).
// Sojourns still in progress at the horizon are not counted.
func Summarize(pt *PowerTrace) *PowerSummary {
	summary := &PowerSummary{}
	if pt == nil {
		return summary
	}

	var uptime, repairTime float64
	last := 0.0
	for _, tr := range pt.Transitions {
		sojourn := tr.Time - last
		switch tr.From {
		case StateOperational:
			summary.Failures++
			uptime += sojourn
		case StateRepair:
			summary.Repairs++
			repairTime += sojourn
			if sojourn > summary.LongestRepairTime {
				summary.LongestRepairTime = sojourn
			}
		}
		last = tr.Time
	}
	if summary.Failures > 0 {
		summary.MeanUptime = uptime / float64(summary.Failures)
	}
	if summary.Repairs > 0 {
		summary.MeanRepairTime = repairTime / float64(summary.Repairs)
	}
	return summary
}
