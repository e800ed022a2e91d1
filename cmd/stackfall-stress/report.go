package main

import (
	"io"
	"runtime"
	"strconv"
	"text/template"
	"time"

	"github.com/plus3/stackfall/tetris"
	"github.com/plus3/stackfall/tetris/drawbuf"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	FrameTime time.Duration
	Seed      uint64
	Mode      string

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          int
	Pieces         int
	Lines          int
	Tetrises       int
	BestScore      uint
	MaxLevel       uint
	Systems        []tetris.SystemStats
	Store          tetris.StoreStats
	Buffer         drawbuf.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Observe tallies game events
func (r *Report) Observe(ev tetris.Event) {
	switch ev.Kind {
	case tetris.EventPieceLocked:
		r.Pieces++
	case tetris.EventLinesCleared:
		r.Lines += ev.Lines
		if ev.Lines == 4 {
			r.Tetrises++
		}
	case tetris.EventLevelUp:
		r.MaxLevel = max(r.MaxLevel, ev.Level)
	case tetris.EventGameOver:
		r.Games++
		r.BestScore = max(r.BestScore, ev.Score)
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Stackfall Stress Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Frame Time:** {{.FrameTime}}
- **Seed:** {{.Seed}}
- **Clear Mode:** {{.Mode}}

## Gameplay
- **Games Finished:** {{.Games}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}} ({{.Tetrises}} tetrises)
- **Best Score:** {{.BestScore}}
- **Highest Level:** {{.MaxLevel}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Piece Store (final game)
- Pieces: {{.Store.PieceCount}}, Cells: {{.Store.CellCount}}
- Slots: {{.Store.SlotCount}}, Free: {{.Store.FreeSlots}}, Blocks: {{.Store.BlockCount}}
- Last Piece ID: {{.Store.LastPieceID}}

## Drawable Buffer
- Full Writes: {{.Buffer.FullWrites}}
- Partial Writes: {{.Buffer.PartialWrites}}
- Bytes Written: {{.Buffer.BytesWritten | mb}} MiB

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

var reportFuncs = template.FuncMap{
	"mb": func(v int) string {
		return strconv.FormatFloat(float64(v)/1024/1024, 'f', 2, 64)
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
