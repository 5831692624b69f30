package report

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/mem/trace"
	"github.com/sarchlab/csim/sim/hooking"
	"github.com/sarchlab/csim/sim/replay"
)

// VerbosePrinter is a replayer hook that prints every record followed by the
// outcome of each of its accesses, for example
//
//	M 20,1 miss eviction hit
type VerbosePrinter struct {
	w io.Writer

	hit      *color.Color
	miss     *color.Color
	eviction *color.Color

	err error
}

// NewVerbosePrinter creates a VerbosePrinter that writes to w. Colors follow
// color.NoColor unless disabled explicitly.
func NewVerbosePrinter(w io.Writer, useColor bool) *VerbosePrinter {
	p := &VerbosePrinter{
		w:        w,
		hit:      color.New(color.FgGreen),
		miss:     color.New(color.FgYellow),
		eviction: color.New(color.FgRed),
	}

	if !useColor {
		p.hit.DisableColor()
		p.miss.DisableColor()
		p.eviction.DisableColor()
	}

	return p
}

// Func prints replayed records.
func (p *VerbosePrinter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != replay.HookPosRecordReplayed || p.err != nil {
		return
	}

	rec := ctx.Item.(trace.Record)
	detail := ctx.Detail.(replay.RecordDetail)

	var sb strings.Builder
	sb.WriteString(rec.String())

	for _, o := range detail.Outcomes {
		sb.WriteByte(' ')
		p.writeOutcome(&sb, o)
	}

	sb.WriteByte('\n')

	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		p.err = err
	}
}

// Err returns the first write error. Nothing is printed after it.
func (p *VerbosePrinter) Err() error {
	return p.err
}

func (p *VerbosePrinter) writeOutcome(sb *strings.Builder, o cache.Outcome) {
	switch o {
	case cache.Hit:
		sb.WriteString(p.hit.Sprint("hit"))
	case cache.MissNoEvict:
		sb.WriteString(p.miss.Sprint("miss"))
	case cache.MissWithEvict:
		sb.WriteString(p.miss.Sprint("miss"))
		sb.WriteByte(' ')
		sb.WriteString(p.eviction.Sprint("eviction"))
	}
}
