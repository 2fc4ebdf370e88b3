package domain

const (
	StatCap            = 40
	SkillCap           = 50
	DefaultResourceCap = 50
)

// ResourceCaps lists the bespoke ceilings; resources not present here fall
// back to DefaultResourceCap.
var ResourceCaps = map[string]int{
	"Max Health":       300,
	"Max Stamina":      300,
	"Max Mana":         600,
	"Max Spirit":       3,
	"Health Recovery":  50,
	"Mana Recovery":    50,
	"Spirit Recovery":  3,
	"Stamina Recovery": 50,
}

type CapStatus string

const (
	StatusCapped  CapStatus = "capped"
	StatusWarning CapStatus = "warning"
	StatusNormal  CapStatus = "normal"
)

// TargetAnalysis is one classified entry of the totals map.
type TargetAnalysis struct {
	Target     string    `json:"target"`
	Value      int       `json:"value"`
	Cap        int       `json:"cap"`
	Status     CapStatus `json:"status"`
	Percentage float64   `json:"percentage"`
	Needed     int       `json:"needed"`
}

// CapSummary partitions the classified targets by status.
type CapSummary struct {
	FullyCapped int `json:"fully_capped"`
	NearCap     int `json:"near_cap"`
	UnderCap    int `json:"under_cap"`
}

// CapFor returns the ceiling for a target name. Stats share one cap, resources
// use their bespoke entry, everything else is treated as a skill.
func CapFor(target string) int {
	if IsStat(target) {
		return StatCap
	}
	if IsResource(target) {
		if cap, ok := ResourceCaps[target]; ok {
			return cap
		}
		return DefaultResourceCap
	}
	return SkillCap
}

// ClassifyTarget rates a single total against its cap. Values at or above the
// cap are capped, 80% and up is a warning, the rest is normal. The percentage
// is clamped at 100 even when the raw value overcaps.
func ClassifyTarget(target string, value int) TargetAnalysis {
	cap := CapFor(target)

	status := StatusNormal
	switch {
	case value >= cap:
		status = StatusCapped
	case float64(value) >= float64(cap)*0.8:
		status = StatusWarning
	}

	percentage := float64(value) / float64(cap) * 100
	if percentage > 100 {
		percentage = 100
	}

	needed := cap - value
	if needed < 0 {
		needed = 0
	}

	return TargetAnalysis{
		Target:     target,
		Value:      value,
		Cap:        cap,
		Status:     status,
		Percentage: percentage,
		Needed:     needed,
	}
}

// Classify rates every entry of a totals map.
func Classify(totals map[string]int) map[string]TargetAnalysis {
	out := make(map[string]TargetAnalysis, len(totals))
	for target, value := range totals {
		out[target] = ClassifyTarget(target, value)
	}
	return out
}

// Summarize counts classified targets per status bucket.
func Summarize(classified map[string]TargetAnalysis) CapSummary {
	var summary CapSummary
	for _, entry := range classified {
		switch entry.Status {
		case StatusCapped:
			summary.FullyCapped++
		case StatusWarning:
			summary.NearCap++
		default:
			summary.UnderCap++
		}
	}
	return summary
}
