package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/brogergvhs/langtally/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// PageProgress records per-page stats and, when enabled, renders a bar of
// pages fetched against the page budget.
type PageProgress struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	stats *Stats
}

func NewPageProgress(out io.Writer, budget int, stats *Stats, enabled bool) *PageProgress {
	pp := &PageProgress{stats: stats}
	if !enabled || budget <= 0 {
		return pp
	}

	pp.p = mpb.New(
		mpb.WithWidth(40),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	pp.bar = pp.p.New(
		int64(budget),
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name("pages  "),
			decor.CountersNoUnit("%d/%d", decor.WCSyncWidth),
		),

		mpb.AppendDecorators(
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %d titles", stats.Titles.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + util.Human(stats.Bytes.Load())
			}),
			decor.Name(" | "),
			decor.Elapsed(decor.ET_STYLE_GO),
		),
	)

	return pp
}

func (pp *PageProgress) PageFetched(n int, _ string, titles, size int) {
	pp.stats.Pages.Add(1)
	pp.stats.Titles.Add(int64(titles))
	pp.stats.Bytes.Add(int64(size))

	if pp.bar != nil {
		pp.bar.SetCurrent(int64(n))
	}
}

// Done completes the bar at the number of pages actually fetched, which is
// below the budget when pagination ended early.
func (pp *PageProgress) Done(pages int) {
	if pp.bar == nil {
		return
	}

	pp.bar.SetTotal(int64(pages), true)
}

// Close waits for the final render. A bar left open by a failed run is
// aborted so Wait cannot block.
func (pp *PageProgress) Close() {
	if pp.p == nil {
		return
	}

	if !pp.bar.Completed() {
		pp.bar.Abort(false)
	}
	pp.p.Wait()
}
