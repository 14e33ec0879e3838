package brief

import (
	"bytes"
	"fmt"
	"text/template"
)

const fence = "```"

type orchestratorData struct {
	ReposDir            string
	BatchLimit          int
	FrameworkReportsDir string
	SynthesisDir        string
}

type frameworkData struct {
	Name       string
	SourcePath string
	OutputDir  string
	ReportPath string
}

type skillData struct {
	Skill          string
	Framework      string
	CodebaseMap    string
	OutputPath     string
	Definition     string
	PhaseReference string
}

type synthesisData struct {
	Frameworks      []string
	SummariesDir    string
	SkillOutputRoot string
	SynthesisDir    string
}

var orchestratorTemplate = template.Must(template.New("orchestrator").Parse(`

---

## Execute Now

### Step 1: Initialize

Register every framework checkout under {{.ReposDir}}:

` + fence + `bash
trowel init
` + fence + `

A missing source root is fatal; fix the checkout layout before continuing.
If a previous run was interrupted, clear its leftovers first:

` + fence + `bash
trowel reset-running
` + fence + `

### Step 2: Select a batch

` + fence + `bash
trowel next --limit {{.BatchLimit}}
` + fence + `

An empty line means nothing is pending; skip to step 5.

### Step 3: Dispatch framework agents

For each selected framework, claim it and build its agent prompt:

` + fence + `bash
trowel mark <framework> in_progress
trowel brief framework <framework>
` + fence + `

Dispatch each prompt to an agent running in the background.

### Step 4: Record outcomes

As each agent finishes:

` + fence + `bash
trowel mark <framework> completed   # or failed
` + fence + `

Repeat from step 2 until nothing is pending.

### Step 5: Synthesize

Once two or more frameworks are completed:

` + fence + `bash
trowel brief synthesis
` + fence + `

Dispatch the prompt to the synthesis agent.

### Step 6: Report

Run trowel status and report the final table. Framework summaries live in
{{.FrameworkReportsDir}}, synthesis documents in {{.SynthesisDir}}.
`))

var frameworkTemplate = template.Must(template.New("framework").Parse(`

---

## Your Assignment

**Framework**: {{.Name}}
**Source Path**: {{.SourcePath}}
**Output Directory**: {{.OutputDir}}

Execute the workflow described above. Remember:
- Build the codebase map first
- Dispatch skill passes for all analysis instead of reading source yourself
- Write your summary to {{.ReportPath}}
- Report the outcome so the coordinator can record it
`))

var skillTemplate = template.Must(template.New("skill").Parse(`

---

## Your Assignment

**Skill**: {{.Skill}}
**Framework**: {{.Framework}}
**Codebase Map**: {{.CodebaseMap}}
**Output Path**: {{.OutputPath}}

---

## Skill Definition

{{.Definition}}
{{- if .PhaseReference}}

---

## Phase Reference Material

{{.PhaseReference}}
{{- end}}

---

## Execute Now

1. Read the codebase map at {{.CodebaseMap}}
2. Identify and read the relevant source files
3. Apply the skill methodology
4. Write your analysis to {{.OutputPath}}
5. Exit immediately after writing
`))

var synthesisTemplate = template.Must(template.New("synthesis").Parse(`

---

## Your Assignment

**Frameworks to synthesize**:
{{- range .Frameworks}}
- {{.}}
{{- end}}

**Framework summaries location**: {{.SummariesDir}}
**Skill outputs location**: {{.SkillOutputRoot}}
**Output location**: {{.SynthesisDir}}

---

## Execute Now

1. Read all framework summaries under {{.SummariesDir}}
2. Generate comparison-matrix.md
3. Generate antipatterns.md
4. Generate reference-architecture.md
5. Generate executive-summary.md

Write each document into {{.SynthesisDir}}, following the output structures
defined in your context above.
`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s assignment: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
