package bestgram

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{"id", "gram", "distinct_chars", "total_symbols", "distinct_grams", "parse_time", "count_time", "recorded_at"}

// StorageCsvImpl appends one row per report to a CSV file, writing the
// header when the file is first created.
type StorageCsvImpl struct {
	Path string
}

func NewStorageCsvImpl(path string) *StorageCsvImpl {
	return &StorageCsvImpl{
		Path: path,
	}
}

func (s *StorageCsvImpl) AddReport(report Report) error {
	_, statErr := os.Stat(s.Path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}
	row := []string{
		report.ID,
		strconv.Itoa(report.Gram),
		strconv.Itoa(report.DistinctChars),
		strconv.Itoa(report.TotalSymbols),
		strconv.Itoa(report.DistinctGrams),
		report.ParseTime.String(),
		report.CountTime.String(),
		report.RecordedAt.Format(time.RFC3339),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *StorageCsvImpl) GetAllReports() ([]Report, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		report, err := reportFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.Path, i, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func reportFromRow(row []string) (Report, error) {
	if len(row) != len(csvHeader) {
		return Report{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}
	gram, err := strconv.Atoi(row[1])
	if err != nil {
		return Report{}, err
	}
	distinctChars, err := strconv.Atoi(row[2])
	if err != nil {
		return Report{}, err
	}
	totalSymbols, err := strconv.Atoi(row[3])
	if err != nil {
		return Report{}, err
	}
	distinctGrams, err := strconv.Atoi(row[4])
	if err != nil {
		return Report{}, err
	}
	parseTime, err := time.ParseDuration(row[5])
	if err != nil {
		return Report{}, err
	}
	countTime, err := time.ParseDuration(row[6])
	if err != nil {
		return Report{}, err
	}
	recordedAt, err := time.Parse(time.RFC3339, row[7])
	if err != nil {
		return Report{}, err
	}
	return Report{
		ID:            row[0],
		Gram:          gram,
		DistinctChars: distinctChars,
		TotalSymbols:  totalSymbols,
		DistinctGrams: distinctGrams,
		ParseTime:     parseTime,
		CountTime:     countTime,
		RecordedAt:    recordedAt,
	}, nil
}
