package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/thermsim/internal/sim"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// columns flattens a result into named series in CSV column order.
func columns(r *sim.Result) ([]string, []*sim.Series) {
	names := []string{"setpoint"}
	series := []*sim.Series{r.Setpoint}

	for _, p := range r.Pairs {
		names = append(names, p.Kind.String())
		series = append(series, p.Temperature)
	}
	for _, p := range r.Pairs {
		names = append(names, p.Kind.String()+"_effort")
		series = append(series, p.Effort)
	}
	for _, s := range r.Terms.All() {
		names = append(names, "pid_"+s.Name)
		series = append(series, s)
	}
	return names, series
}

// WriteCSV writes one row per step: time, setpoint, every pair's
// temperature, every pair's effort, then the standard PID terms.
func WriteCSV(w io.Writer, r *sim.Result) error {
	names, series := columns(r)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}

	for i, pt := range r.Setpoint.Points {
		row := make([]string, 0, len(series)+1)
		row = append(row, formatFloat(pt.T))
		for _, s := range series {
			if i >= s.Len() {
				return fmt.Errorf("series %s has %d samples, want %d", s.Name, s.Len(), r.Setpoint.Len())
			}
			row = append(row, formatFloat(s.Points[i].V))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, r *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, r); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return f.Close()
}
