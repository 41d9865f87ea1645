package main

import (
	"io"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/ticksim/sim"
)

type Report struct {
	Config   Config
	Ticks    uint64
	Elapsed  time.Duration
	Timing   sim.TickStats
	Summary  sim.SimulationStats
	Entities []sim.EntityState
}

func newReport(cfg Config, s *sim.Simulation, ticks uint64, elapsed time.Duration) *Report {
	return &Report{
		Config:   cfg,
		Ticks:    ticks,
		Elapsed:  elapsed,
		Timing:   s.Stats(),
		Summary:  s.CollectStats(),
		Entities: slices.Collect(s.Entities()),
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

## Configuration
- **Entities:** {{.Config.Entities}}
- **Tick Budget:** {{if .Config.Ticks}}{{.Config.Ticks}}{{else}}none{{end}}
- **Time Limit:** {{if .Config.Duration}}{{.Config.Duration}}{{else}}none{{end}}
- **Interval:** {{if .Config.Interval}}{{.Config.Interval}}{{else}}unpaced{{end}}

## Results
- **Ticks Run:** {{.Ticks}}
- **Elapsed:** {{.Elapsed}}
- **Score:** {{.Summary.Score}}
- **Live Entities:** {{.Summary.EntityCount}} ({{.Summary.ActiveCount}} active)
- **Tick Time:**
  - **Avg:** {{.Timing.AvgDuration}}
  - **Min:** {{.Timing.MinDuration}}
  - **Max:** {{.Timing.MaxDuration}}

## Entities
{{range .Entities}}- {{.Name}} (#{{.Id}}): ({{.Position.X}},{{.Position.Y}}){{if not .Active}} inactive{{end}}
{{else}}- none
{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
