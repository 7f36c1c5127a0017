/*
 * MIT License
 *
 * Copyright (c) 2023 the ADS laboratory
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package export serializes measurement runs for surrounding tooling. The
// formats are best-effort interchange, not a stable on-disk contract.
package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/ADS-laboratory/chrono-probe/pkg/measurement"
)

// Run is the envelope written around one experiment result.
type Run struct {
	ID           string                    `json:"id"`
	CreatedAt    time.Time                 `json:"created_at"`
	Workload     string                    `json:"workload"`
	Distribution string                    `json:"distribution"`
	Measurements *measurement.Measurements `json:"measurements"`
}

// NewRun wraps a result set with a fresh run ID and creation timestamp.
func NewRun(workload, distribution string, ms *measurement.Measurements) *Run {
	return &Run{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Workload:     workload,
		Distribution: distribution,
		Measurements: ms,
	}
}

// WriteJSON serializes the run to path, overwriting any existing file.
func WriteJSON(path string, run *Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	return encoder.Encode(run)
}

// ReadJSON deserializes a run previously written by WriteJSON.
func ReadJSON(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, err
	}

	return &run, nil
}

// seriesRecord is one flattened CSV row: a single point plus the shared run
// metadata repeated per row, so the file stands alone in a spreadsheet.
type seriesRecord struct {
	Algorithm     string  `csv:"algorithm"`
	Size          int     `csv:"size"`
	TimeMicros    int64   `csv:"time_micros"`
	RelativeError float64 `csv:"relative_error"`
	ResolutionNs  int64   `csv:"resolution_ns"`
}

// WriteCSV flattens all series into one CSV file, one row per point.
func WriteCSV(path string, ms *measurement.Measurements) error {
	var records []seriesRecord
	for _, series := range ms.Series {
		for _, point := range series.Points {
			records = append(records, seriesRecord{
				Algorithm:     series.AlgorithmName,
				Size:          point.Size,
				TimeMicros:    point.Time.Microseconds(),
				RelativeError: ms.RelativeError,
				ResolutionNs:  ms.Resolution.Nanoseconds(),
			})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&records, file)
}
