package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/thermsim/internal/sim"
)

const (
	pngWidth  = 10 * vg.Inch
	pngHeight = 8 * vg.Inch
	pngDPI    = 96
)

func toXYs(s *sim.Series) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i, p := range s.Points {
		pts[i].X = p.T
		pts[i].Y = p.V
	}
	return pts
}

func temperaturePlot(r *sim.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Temperature (%s)", r.Gains)
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "temperature"

	lines := []interface{}{"setpoint", toXYs(r.Setpoint)}
	for _, pair := range r.Pairs {
		lines = append(lines, pair.Kind.String(), toXYs(pair.Temperature))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	return p, nil
}

func termsPlot(r *sim.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Standard PID terms"
	p.X.Label.Text = "time (s)"

	lines := []interface{}{"zero", toXYs(r.Baseline)}
	for _, s := range r.Terms.All() {
		lines = append(lines, s.Name, toXYs(s))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	return p, nil
}

// WritePNG renders the temperature and PID term panels stacked vertically.
func WritePNG(w io.Writer, r *sim.Result) error {
	temps, err := temperaturePlot(r)
	if err != nil {
		return fmt.Errorf("temperature panel: %w", err)
	}
	terms, err := termsPlot(r)
	if err != nil {
		return fmt.Errorf("terms panel: %w", err)
	}

	plots := [][]*plot.Plot{{temps}, {terms}}
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: 4 * vg.Millimeter,
	}

	img := vgimg.NewWith(vgimg.UseWH(pngWidth, pngHeight), vgimg.UseDPI(pngDPI))
	dc := draw.New(img)
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	bw := bufio.NewWriter(w)
	pngc := vgimg.PngCanvas{Canvas: img}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return bw.Flush()
}

func SavePNG(path string, r *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WritePNG(f, r); err != nil {
		return err
	}
	return f.Close()
}
