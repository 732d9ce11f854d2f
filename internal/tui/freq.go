package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/kalama/transcriber/internal/analysis"
)

const (
	freqHeight = 8
	freqBars   = 10
)

// renderFrequencies draws a bar chart of the most frequent words of the
// current best-source pane.
func (a *App) renderFrequencies() string {
	src := a.eng.BestSource()
	if src == nil {
		return overlayStyle.Render("no source pane")
	}
	counts := analysis.Top(analysis.Frequencies(src.Text), freqBars)
	if len(counts) == 0 {
		return overlayStyle.Render("no words yet")
	}

	w := a.width - 4
	if w < 20 {
		w = 20
	}
	bc := barchart.New(w, freqHeight)
	for _, c := range counts {
		bc.Push(barchart.BarData{
			Label: c.Word,
			Values: []barchart.BarValue{
				{Name: c.Word, Value: float64(c.Count), Style: barStyle},
			},
		})
	}
	bc.Draw()
	return overlayStyle.Render(bc.View())
}
