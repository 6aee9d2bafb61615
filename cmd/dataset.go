package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SecTionXx/SaleOrderForecast-sub001/chartopt"
)

// jsonPoint mirrors the dashboard's wire shape: x may be a number or a
// category string, y may arrive as anything and coerces to 0 when it is
// not numeric.
type jsonPoint struct {
	X     interface{} `json:"x"`
	Y     interface{} `json:"y"`
	Label string      `json:"label,omitempty"`
}

// LoadDataset reads points from a .json or .csv file.
//
// JSON accepts either a bare numeric array or an array of {x, y, label}
// objects. CSV accepts rows of "y", "x,y", or "label,x,y"; a non-numeric
// first row is treated as a header.
func LoadDataset(path string) ([]chartopt.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) ([]chartopt.Point, error) {
	// Bare scalar series first: [1, 2, 3].
	var values []float64
	if err := json.Unmarshal(data, &values); err == nil {
		return chartopt.PointsFromValues(values), nil
	}

	var raw []jsonPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dataset JSON: %w", err)
	}
	points := make([]chartopt.Point, len(raw))
	for i, jp := range raw {
		p := chartopt.Point{Label: jp.Label}
		switch x := jp.X.(type) {
		case float64:
			p.X = x
		case string:
			// Categorical x: position becomes the coordinate, the
			// category becomes the label unless one was given.
			p.X = float64(i)
			if p.Label == "" {
				p.Label = x
			}
		default:
			p.X = float64(i)
		}
		if y, ok := jp.Y.(float64); ok {
			p.Y = y
		} else {
			logrus.Debugf("dataset point %d: non-numeric y %v coerced to 0", i, jp.Y)
		}
		points[i] = p
	}
	return points, nil
}

func parseCSV(data []byte) ([]chartopt.Point, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing dataset CSV: %w", err)
	}
	points := make([]chartopt.Point, 0, len(records))
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		if i == 0 && isHeader(record) {
			continue
		}
		var p chartopt.Point
		switch len(record) {
		case 1:
			p = chartopt.Point{X: float64(len(points)), Y: parseY(record[0], len(points))}
		case 2:
			p = chartopt.Point{X: parseX(record[0], len(points)), Y: parseY(record[1], len(points))}
		default:
			p = chartopt.Point{Label: record[0], X: parseX(record[1], len(points)), Y: parseY(record[2], len(points))}
		}
		points = append(points, p)
	}
	return points, nil
}

// isHeader reports whether a first CSV row holds no numeric cell.
func isHeader(record []string) bool {
	for _, cell := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return false
		}
	}
	return true
}

func parseX(cell string, position int) float64 {
	if x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
		return x
	}
	return float64(position)
}

func parseY(cell string, position int) float64 {
	y, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		logrus.Debugf("dataset row %d: non-numeric y %q coerced to 0", position, cell)
		return 0
	}
	return y
}

// WriteDataset writes points as JSON to path, or to stdout when path is
// empty.
func WriteDataset(points []chartopt.Point, path string) error {
	out := make([]jsonPoint, len(points))
	for i, p := range points {
		out[i] = jsonPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}
