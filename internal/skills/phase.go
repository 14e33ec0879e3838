package skills

import "fmt"

// Phase numbers the two analysis passes a skill can run in.
type Phase int

const (
	// PhaseEngineering covers the structural skills that read source code
	// directly.
	PhaseEngineering Phase = 1
	// PhaseCognitive covers the interpretive skills that build on the
	// engineering output.
	PhaseCognitive Phase = 2
)

// The engineering partition is fixed. Every skill outside it interprets
// rather than inspects, so it belongs to the cognitive pass.
var engineeringSkills = map[string]bool{
	"data-substrate-analysis":   true,
	"execution-engine-analysis": true,
	"component-model-analysis":  true,
	"resilience-analysis":       true,
}

// PhaseFor reports which analysis phase the named skill runs in.
func PhaseFor(name string) Phase {
	if engineeringSkills[name] {
		return PhaseEngineering
	}
	return PhaseCognitive
}

func (p Phase) String() string {
	switch p {
	case PhaseEngineering:
		return "engineering"
	case PhaseCognitive:
		return "cognitive"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ReferenceFile names the phase's reference document, relative to the
// coordinator skill's references directory.
func (p Phase) ReferenceFile() string {
	return fmt.Sprintf("phase%d-%s.md", int(p), p)
}
