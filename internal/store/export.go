// Package store writes frequency sweeps to CSV and JSON for use outside
// the terminal.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/daelab/internal/freq"
)

// WriteCSV writes one row per frequency sample: the angular frequency
// followed by magnitude then phase for every output-input entry, columns
// labelled mag_<out>_<in> / phase_<out>_<in> (1-based).
func WriteCSV(w io.Writer, sw *freq.Sweep) error {
	if len(sw.Freqs) == 0 {
		return fmt.Errorf("store: empty sweep")
	}
	p, m := sw.Magnitude[0].Dims()

	cw := csv.NewWriter(w)

	header := []string{"freq_rad_s"}
	for i := 1; i <= p; i++ {
		for j := 1; j <= m; j++ {
			header = append(header, fmt.Sprintf("mag_%d_%d", i, j))
		}
	}
	for i := 1; i <= p; i++ {
		for j := 1; j <= m; j++ {
			header = append(header, fmt.Sprintf("phase_%d_%d", i, j))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for k := range sw.Freqs {
		row := []string{strconv.FormatFloat(sw.Freqs[k], 'g', -1, 64)}
		for i := 0; i < p; i++ {
			for j := 0; j < m; j++ {
				row = append(row, strconv.FormatFloat(sw.Magnitude[k].At(i, j), 'g', -1, 64))
			}
		}
		for i := 0; i < p; i++ {
			for j := 0; j < m; j++ {
				row = append(row, strconv.FormatFloat(sw.Phase[k].At(i, j), 'g', -1, 64))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SweepRecord is the JSON form of a sweep. Magnitude and Phase are
// indexed by sample, then output row, then input column.
type SweepRecord struct {
	Label     string        `json:"label"`
	Freqs     []float64     `json:"freqs"`
	Magnitude [][][]float64 `json:"magnitude_db"`
	Phase     [][][]float64 `json:"phase_deg"`
}

// WriteJSON writes the sweep as an indented SweepRecord.
func WriteJSON(w io.Writer, label string, sw *freq.Sweep) error {
	if len(sw.Freqs) == 0 {
		return fmt.Errorf("store: empty sweep")
	}
	rec := SweepRecord{
		Label:     label,
		Freqs:     sw.Freqs,
		Magnitude: make([][][]float64, len(sw.Freqs)),
		Phase:     make([][][]float64, len(sw.Freqs)),
	}
	for k := range sw.Freqs {
		rec.Magnitude[k] = toRows(sw.Magnitude[k])
		rec.Phase[k] = toRows(sw.Phase[k])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// ExportCSV writes the sweep to a file.
func ExportCSV(path string, sw *freq.Sweep) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, sw)
}

// ExportJSON writes the sweep record to a file.
func ExportJSON(path, label string, sw *freq.Sweep) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, label, sw)
}

func toRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
