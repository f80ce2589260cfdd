package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one temperature profile over depth.
type Series struct {
	Name string
	Z, T []float64
}

func (s Series) xys() (pts plotter.XYs, err error) {
	if len(s.Z) != len(s.T) {
		return nil, fmt.Errorf("series [%s]: %d depths vs %d temperatures", s.Name, len(s.Z), len(s.T))
	}
	pts = make(plotter.XYs, len(s.Z))
	for i := range pts {
		// Temperature runs along X, depth down the inverted Y
		pts[i].X = s.T[i]
		pts[i].Y = s.Z[i]
	}
	return
}

// ComparisonFigure writes a well-log style figure, temperature against
// depth with depth increasing downward, one line per scenario over the
// dashed background gradient.
func ComparisonFigure(file, title string, background Series, series ...Series) (err error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Temperature (degC)"
	p.Y.Label.Text = "Depth (m)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Legend.Top = true
	p.Legend.Left = true

	var pts plotter.XYs
	if pts, err = background.xys(); err != nil {
		return
	}
	bg, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	bg.LineStyle.Color = color.Gray{Y: 96}
	bg.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(bg)
	p.Legend.Add(background.Name, bg)

	for i, s := range series {
		if pts, err = s.xys(); err != nil {
			return
		}
		var l *plotter.Line
		if l, err = plotter.NewLine(pts); err != nil {
			return
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	return p.Save(6*vg.Inch, 8*vg.Inch, file)
}
