package bestgram

import (
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

// Vectorizer encodes corpus files into the flat symbol sequence using a
// shared alphabet table.
type Vectorizer struct {
	bufSize    int
	charFilter CharFilter
	alphabet   *Alphabet
}

func NewVectorizer(bufSize int, charFilter CharFilter, alphabet *Alphabet) *Vectorizer {
	return &Vectorizer{
		bufSize:    bufSize,
		charFilter: charFilter,
		alphabet:   alphabet,
	}
}

func (v *Vectorizer) Alphabet() *Alphabet {
	return v.alphabet
}

// Vectorize encodes every corpus file, one worker per file. The returned
// sequence is ordered exactly as if the files had been processed one after
// another in the given order: each worker writes into its own slot of a
// pre-sized arena and the slots are concatenated in input order, never in
// completion order. Any open or decode failure aborts the whole run.
func (v *Vectorizer) Vectorize(paths []string) (SymbolSequence, error) {
	perFile := make([][]Symbol, len(paths))
	var eg errgroup.Group
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			log.Printf("parsing: %s", path)
			corpus, err := LoadCorpus(path, v.bufSize)
			if err != nil {
				return err
			}
			symbols, err := v.vectorizeCorpus(corpus)
			if err != nil {
				return fmt.Errorf("vectorize corpus %s: %w", path, err)
			}
			perFile[i] = symbols
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return SymbolSequence{}, err
	}

	total := 0
	for _, symbols := range perFile {
		total += len(symbols)
	}
	flat := make([]Symbol, 0, total)
	for _, symbols := range perFile {
		flat = append(flat, symbols...)
	}
	return NewSymbolSequence(flat), nil
}

// vectorizeCorpus walks documents, sentences and words in order. Every
// character is emitted with tag 0, then the last symbol of each non-empty
// word has its tag overwritten with the word tag. Characters rejected by
// the filter are emitted as ExcludedCode but still count positionally, so
// an excluded final character carries the word tag too.
func (v *Vectorizer) vectorizeCorpus(corpus Corpus) ([]Symbol, error) {
	var symbols []Symbol
	for _, doc := range corpus {
		for _, sentence := range doc {
			for _, word := range sentence {
				start := len(symbols)
				for _, ch := range word.Chars {
					if !v.charFilter.Eligible(ch) {
						symbols = append(symbols, NewSymbol(ExcludedCode, 0))
						continue
					}
					code, err := v.alphabet.Assign(ch)
					if err != nil {
						return nil, err
					}
					symbols = append(symbols, NewSymbol(code, 0))
				}
				if len(symbols) > start {
					symbols[len(symbols)-1].Tag = word.Tag
				}
			}
		}
	}
	return symbols, nil
}
