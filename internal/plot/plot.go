// Package plot wraps notargets/avs/chart2d for an optional live view of a
// 1-D slice through the solution, gated behind the CLI's --graph flag.
// Adapted from Euler1D.Plot/AddAnalyticSod's lazy chart-construction shape.
package plot

import (
	"sync"

	"github.com/notargets/avs/chart2d"
	avsutils "github.com/notargets/avs/utils"

	"github.com/fluxmhd/gomhd/MHD"
)

// Slice is a live 1-D chart following a fixed (j,k) line through the grid
// as the I direction sweeps, one series per tracked primitive channel.
type Slice struct {
	chart    *chart2d.Chart2D
	colorMap *avsutils.ColorMap
	once     sync.Once

	Channels []int
	Names    []string
	J, K     int
}

func NewSlice(channels []int, names []string) *Slice {
	return &Slice{Channels: channels, Names: names}
}

// Draw redraws every tracked channel's active-range slice. Safe to call
// every step; the underlying window is created once on first use.
func (s *Slice) Draw(db *MHD.DataBlock, ymin, ymax float32) {
	g := db.Grid
	ax := g.Axes[MHD.DirI]
	s.once.Do(func() {
		s.chart = chart2d.NewChart2D(1280, 720, float32(ax.X[ax.Beg]), float32(ax.X[ax.End-1]), ymin, ymax)
		s.colorMap = avsutils.NewColorMap(-1, 1, 1)
		go s.chart.Plot()
	})

	beg, end := g.ActiveRange(MHD.DirI)
	xs := make([]float32, 0, end-beg)
	for i := beg; i < end; i++ {
		xs = append(xs, float32(ax.X[i]))
	}
	for n, ch := range s.Channels {
		ys := make([]float32, 0, end-beg)
		for i := beg; i < end; i++ {
			ys = append(ys, float32(db.Vc.At(ch, s.K, s.J, i)))
		}
		color := -1.0 + 2.0*float32(n)/float32(len(s.Channels)+1)
		name := s.Names[n]
		if err := s.chart.AddSeries(name, xs, ys, chart2d.NoGlyph, chart2d.Solid, s.colorMap.GetRGB(color)); err != nil {
			panic("plot: unable to add series " + name)
		}
	}
}
