package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/metrics"
	"github.com/san-kum/thermsim/internal/sim"
)

type ExportData struct {
	Gains    control.Gains        `json:"gains"`
	Dt       float64              `json:"dt"`
	Duration float64              `json:"duration"`
	Steps    int                  `json:"steps"`
	Times    []float64            `json:"times"`
	Setpoint []float64            `json:"setpoint"`
	Pairs    map[string]PairData  `json:"pairs"`
	Terms    map[string][]float64 `json:"pid_terms"`
	Metrics  metrics.Report       `json:"metrics"`
}

type PairData struct {
	Temperature []float64 `json:"temperature"`
	Effort      []float64 `json:"effort"`
}

func NewExportData(r *sim.Result) ExportData {
	data := ExportData{
		Gains:    r.Gains,
		Dt:       r.Dt,
		Duration: r.Duration,
		Steps:    r.Steps,
		Times:    r.Setpoint.Times(),
		Setpoint: r.Setpoint.Values(),
		Pairs:    make(map[string]PairData, len(r.Pairs)),
		Terms:    make(map[string][]float64),
		Metrics:  r.Report(),
	}
	for _, p := range r.Pairs {
		data.Pairs[p.Kind.String()] = PairData{
			Temperature: p.Temperature.Values(),
			Effort:      p.Effort.Values(),
		}
	}
	for _, s := range r.Terms.All() {
		data.Terms[s.Name] = s.Values()
	}
	return data
}

func WriteJSON(w io.Writer, r *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(r))
}

func SaveJSON(path string, r *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteJSON(file, r); err != nil {
		return err
	}
	return file.Close()
}
