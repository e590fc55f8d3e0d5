package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/stencilbench/internal/bench"
	"github.com/san-kum/stencilbench/internal/precision"
)

// Writer appends result records to a CSV file, writing the header only
// when the file is new or empty, so repeated sweeps accumulate into one
// table.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string { return w.path }

func (w *Writer) Append(rows []bench.Result) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if info.Size() == 0 {
		if err := cw.Write(bench.FieldNames()); err != nil {
			return err
		}
	}

	for _, r := range rows {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadFile loads the records of a results CSV, skipping the header row.
func ReadFile(path string) ([]bench.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var out []bench.Result
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == "backend" {
			continue
		}
		r, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func parseRecord(rec []string) (bench.Result, error) {
	if len(rec) < 8 {
		return bench.Result{}, fmt.Errorf("want 8 fields, got %d", len(rec))
	}

	tag, err := precision.Parse(rec[1])
	if err != nil {
		return bench.Result{}, err
	}

	ints := make([]int, 3)
	for i, s := range rec[2:5] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return bench.Result{}, fmt.Errorf("field %d: %w", i+3, err)
		}
		ints[i] = v
	}

	floats := make([]float64, 3)
	for i, s := range rec[5:8] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return bench.Result{}, fmt.Errorf("field %d: %w", i+6, err)
		}
		floats[i] = v
	}

	return bench.Result{
		Backend:   rec[0],
		Precision: tag,
		N:         ints[0],
		M:         ints[1],
		Iters:     ints[2],
		RuntimeMS: floats[0],
		MLUPS:     floats[1],
		RelError:  floats[2],
	}, nil
}
