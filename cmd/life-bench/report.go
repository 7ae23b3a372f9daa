package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/logrusorgru/aurora"
)

type Report struct {
	Config Config

	Workers       []WorkerResult
	TotalTime     time.Duration
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// TotalGenerations sums generations over all workers.
func (r *Report) TotalGenerations() uint64 {
	var n uint64
	for _, w := range r.Workers {
		n += w.Generations
	}
	return n
}

// GenerationsPerSecond is the combined throughput of all workers.
func (r *Report) GenerationsPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalGenerations()) / r.TotalTime.Seconds()
}

const reportTemplate = `{{bold "Life Benchmark Report"}}

{{header "Configuration"}}
- Workers:     {{.Config.Workers}}
- Limit:       {{if .Config.Generations}}{{.Config.Generations}} generations{{else}}{{.Config.Duration}}{{end}}
- Start:       {{if .Config.Pattern}}{{.Config.Pattern}}{{else if .Config.Soup}}{{.Config.Soup}}x{{.Config.Soup}} soup, seed {{.Config.Seed}}{{else}}glider{{end}}
- Visuals:     {{.Config.Visuals}}

{{header "Workers"}}
{{range .Workers}}- worker {{.ID}}: {{good .Generations}} generations, population {{.InitialPopulation}} -> {{.Population}}, born {{good .Born}}, died {{bad .Died}}
  update avg {{.UpdateTime.Avg}}  min {{.UpdateTime.Min}}  p99 {{.UpdateTime.P99}}  max {{.UpdateTime.Max}}
{{end}}
{{header "Throughput"}}
- Total generations: {{.TotalGenerations}}
- Wall time:         {{.TotalTime}}
- Generations/sec:   {{good (printf "%.1f" .GenerationsPerSecond)}}

{{header "Memory"}}
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} MB -> {{mb .MemStatsEnd.HeapAlloc}} MB
- Total Alloc: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB during run
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}, paused {{ns (bsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
`

func (r *Report) Generate(w io.Writer) error {
	au := aurora.NewAurora(!r.Config.NoColor)

	fm := template.FuncMap{
		"bold": func(v any) string {
			return au.Bold(v).String()
		},
		"header": func(v any) string {
			return au.Cyan(fmt.Sprintf("## %v", v)).String()
		},
		"good": func(v any) string {
			return au.Green(v).String()
		},
		"bad": func(v any) string {
			return au.Red(v).String()
		},
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) uint64 {
			if a < b {
				return 0
			}
			return a - b
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
