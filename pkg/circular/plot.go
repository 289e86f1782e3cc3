package circular

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var ErrNoProfile = errors.New("no profile to plot")

// Track is one named line of a scan plot
type Track struct {
	Name    string
	Profile Profile
}

func (p Profile) XYs() plotter.XYs {
	var xys = make(plotter.XYs, len(p))
	for i, v := range p {
		xys[i].X = float64(i)
		xys[i].Y = float64(v)
	}
	return xys
}

// PlotProfiles draw circle length against scan offset, one line per track.
// Image format follow the extension of path.
func PlotProfiles(path string, tracks ...Track) error {
	var p = plot.New()
	p.Title.Text = "circular scan"
	p.X.Label.Text = "offset"
	p.Y.Label.Text = "circle length"
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, t := range tracks {
		if len(t.Profile) == 0 {
			continue
		}
		lines = append(lines, t.Name, t.Profile.XYs())
	}
	if len(lines) == 0 {
		return ErrNoProfile
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return errors.Wrap(err, "add lines")
	}
	return errors.Wrapf(p.Save(8*vg.Inch, 4*vg.Inch, path), "save %s", path)
}
