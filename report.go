package bestgram

import "time"

// Report is the persisted result of one analysis run.
type Report struct {
	ID            string        `db:"id"`
	Gram          int           `db:"gram"`
	DistinctChars int           `db:"distinct_chars"`
	TotalSymbols  int           `db:"total_symbols"`
	DistinctGrams int           `db:"distinct_grams"`
	ParseTime     time.Duration `db:"parse_time"`
	CountTime     time.Duration `db:"count_time"`
	RecordedAt    time.Time     `db:"recorded_at"`
}
