// Package chart renders temperature records as a PNG line chart.
package chart

import (
	"fmt"
	"image/color"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/advaithhl/TemperatureMonitor/datearg"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

// ReferenceTemp is the normal body temperature guide line, in Fahrenheit.
const ReferenceTemp = 98.6

// SaveName returns the chart filename for |now|'s calendar date,
// eg "temperature_2024-01-02.png".
func SaveName(now time.Time) string {
	return fmt.Sprintf("temperature_%s.png", now.Format(datearg.Layout))
}

// Render plots the morning and evening series of |records| against
// date and writes the chart to |path| as a PNG. Records are expected
// in ascending date order. Nil observations leave gaps in their series.
func Render(records []recorddb.Record, path string) error {
	var p = plot.New()

	p.Title.Text = "Body temperature"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Temperature"
	p.X.Tick.Marker = plot.TimeTicks{Format: "Mon 02"}

	var grid = plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	morning, err := newSeries(records, func(r recorddb.Record) *float64 { return r.Morning })
	if err != nil {
		return err
	}
	morning.LineStyle.Color = color.RGBA{B: 255, A: 255}
	morning.LineStyle.Width = vg.Points(1.5)

	evening, err := newSeries(records, func(r recorddb.Record) *float64 { return r.Evening })
	if err != nil {
		return err
	}
	evening.LineStyle.Color = color.RGBA{R: 230, G: 120, A: 255}
	evening.LineStyle.Width = vg.Points(1.5)

	var reference = plotter.NewFunction(func(float64) float64 { return ReferenceTemp })
	reference.LineStyle.Color = color.RGBA{R: 255, A: 255}
	reference.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(morning, evening, reference)
	p.Legend.Add("Morning", morning)
	p.Legend.Add("Evening", evening)
	p.Legend.Top = true

	if len(morning.XYs) == 0 && len(evening.XYs) == 0 {
		// Nothing to plot; pin the axes so rendering stays finite.
		var now = float64(time.Now().Unix())
		p.X.Min, p.X.Max = now-86400, now
		p.Y.Min, p.Y.Max = ReferenceTemp-2, ReferenceTemp+2
	}

	if err = p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.WithMessagef(err, "saving chart %q", path)
	}
	return nil
}

func newSeries(records []recorddb.Record, value func(recorddb.Record) *float64) (*plotter.Line, error) {
	var pts plotter.XYs
	for _, rec := range records {
		if v := value(rec); v != nil {
			pts = append(pts, plotter.XY{X: float64(rec.Date.Unix()), Y: *v})
		}
	}

	var line, err = plotter.NewLine(pts)
	return line, errors.WithMessage(err, "building series")
}
