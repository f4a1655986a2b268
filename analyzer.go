package bestgram

import (
	"time"

	"github.com/google/uuid"
)

// Analyzer runs the full corpus reduction: vectorize every file, count the
// distinct grams over the code projection, persist the report.
type Analyzer struct {
	Vectorizer *Vectorizer
	Storage    Storage
}

func NewAnalyzer(vectorizer *Vectorizer, storage Storage) *Analyzer {
	return &Analyzer{
		Vectorizer: vectorizer,
		Storage:    storage,
	}
}

func (a *Analyzer) Analyze(paths []string, gram int) (Report, error) {
	parseStart := time.Now()
	sequence, err := a.Vectorizer.Vectorize(paths)
	if err != nil {
		return Report{}, err
	}
	parseTime := time.Since(parseStart)

	countStart := time.Now()
	unique, err := DistinctGramIndices(gram, sequence.Codes())
	if err != nil {
		return Report{}, err
	}

	report := Report{
		ID:            uuid.NewString(),
		Gram:          gram,
		DistinctChars: a.Vectorizer.Alphabet().Size(),
		TotalSymbols:  sequence.Size(),
		DistinctGrams: len(unique),
		ParseTime:     parseTime,
		CountTime:     time.Since(countStart),
		RecordedAt:    time.Now(),
	}
	if err := a.Storage.AddReport(report); err != nil {
		return Report{}, err
	}
	return report, nil
}
