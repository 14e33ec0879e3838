package brief

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"trowel/internal/manifest"
	"trowel/internal/skills"
	"trowel/internal/workspace"
)

// Reference documents an agent brief opens with. They live in the
// coordinator skill's references directory and define each agent's role.
const (
	orchestratorReference = "orchestrator-agent.md"
	frameworkReference    = "framework-agent.md"
	skillReference        = "skill-agent.md"
	synthesisReference    = "synthesis-agent.md"
)

// ErrSynthesisNotReady reports that too few frameworks are available for a
// cross-framework synthesis.
var ErrSynthesisNotReady = errors.New("synthesis needs at least two frameworks")

// Builder assembles the instruction briefs handed to external agents. A
// brief is the agent's reference document followed by a concrete
// assignment; the builder owns the assembly, not the content of the
// reference material.
type Builder struct {
	ws *workspace.Workspace
}

// NewBuilder returns a Builder over the given workspace layout.
func NewBuilder(ws *workspace.Workspace) *Builder {
	return &Builder{ws: ws}
}

// Orchestrator builds the top-level coordination brief. batchLimit seeds the
// selection step with the project's configured batch size.
func (b *Builder) Orchestrator(batchLimit int) (string, error) {
	ref, err := b.reference(orchestratorReference)
	if err != nil {
		return "", err
	}
	assignment, err := render(orchestratorTemplate, orchestratorData{
		ReposDir:            b.ws.ReposDir(),
		BatchLimit:          batchLimit,
		FrameworkReportsDir: b.ws.FrameworkReportsDir(),
		SynthesisDir:        b.ws.SynthesisDir(),
	})
	if err != nil {
		return "", err
	}
	return ref + assignment, nil
}

// Framework builds the brief for analyzing one framework. The framework
// comes from the manifest so the source path reflects what discovery
// recorded, not a caller's guess.
func (b *Builder) Framework(fw manifest.Framework) (string, error) {
	outputDir, err := b.ws.FrameworkOutputDir(fw.Name)
	if err != nil {
		return "", err
	}
	reportPath, err := b.ws.FrameworkReportPath(fw.Name)
	if err != nil {
		return "", err
	}

	ref, err := b.reference(frameworkReference)
	if err != nil {
		return "", err
	}
	assignment, err := render(frameworkTemplate, frameworkData{
		Name:       fw.Name,
		SourcePath: fw.Path,
		OutputDir:  outputDir,
		ReportPath: reportPath,
	})
	if err != nil {
		return "", err
	}
	return ref + assignment, nil
}

// Skill builds the brief for one skill pass over one framework. A missing
// skill document degrades to a placeholder and a missing phase reference to
// an omitted section; only the agent reference itself is required.
func (b *Builder) Skill(skillName, frameworkName string) (string, error) {
	codebaseMap, err := b.ws.CodebaseMapPath(frameworkName)
	if err != nil {
		return "", err
	}
	outputPath, err := b.ws.SkillOutputPath(frameworkName, skillName)
	if err != nil {
		return "", err
	}

	ref, err := b.reference(skillReference)
	if err != nil {
		return "", err
	}

	docPath := skills.DocPath(b.ws.SkillsDir(), skillName)
	definition := fmt.Sprintf("[skill document not found: %s]", docPath)
	if raw, err := os.ReadFile(docPath); err == nil {
		definition = strings.TrimSpace(string(skills.DocBody(raw)))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("skill document %s: %w", docPath, err)
	}

	phase := skills.PhaseFor(skillName)
	phaseReference := ""
	phasePath := filepath.Join(b.ws.ReferencesDir(), phase.ReferenceFile())
	if raw, err := os.ReadFile(phasePath); err == nil {
		phaseReference = strings.TrimSpace(string(raw))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("phase reference %s: %w", phasePath, err)
	}

	assignment, err := render(skillTemplate, skillData{
		Skill:          skillName,
		Framework:      frameworkName,
		CodebaseMap:    codebaseMap,
		OutputPath:     outputPath,
		Definition:     definition,
		PhaseReference: phaseReference,
	})
	if err != nil {
		return "", err
	}
	return ref + assignment, nil
}

// Synthesis builds the cross-framework comparison brief. Fewer than two
// frameworks cannot be compared, so the builder refuses rather than hand an
// agent a degenerate assignment.
func (b *Builder) Synthesis(frameworks []string) (string, error) {
	if len(frameworks) < 2 {
		return "", fmt.Errorf("%w, have %d", ErrSynthesisNotReady, len(frameworks))
	}

	ref, err := b.reference(synthesisReference)
	if err != nil {
		return "", err
	}
	assignment, err := render(synthesisTemplate, synthesisData{
		Frameworks:      frameworks,
		SummariesDir:    b.ws.FrameworkReportsDir(),
		SkillOutputRoot: b.ws.FrameworkOutputRoot(),
		SynthesisDir:    b.ws.SynthesisDir(),
	})
	if err != nil {
		return "", err
	}
	return ref + assignment, nil
}

// reference reads a required agent context document. Briefs are unusable
// without their role definition, so a missing document fails the build.
func (b *Builder) reference(name string) (string, error) {
	path := filepath.Join(b.ws.ReferencesDir(), name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("agent reference %s: %w", path, err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}
