package bestgram

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Corpus is one corpus file: an ordered list of documents, each an ordered
// list of sentences, each an ordered list of tagged words.
type Corpus []CorpusDocument

type CorpusDocument []Sentence

type Sentence []Word

// Word is an ordered run of characters plus one tag.
type Word struct {
	Chars []rune
	Tag   uint8
}

func NewWord(chars []rune, tag uint8) Word {
	return Word{
		Chars: chars,
		Tag:   tag,
	}
}

// UnmarshalJSON decodes the on-disk word form: a two element array holding
// the character list and the tag, each character a one-rune string.
func (w *Word) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("word must be a [characters, tag] pair, got %d elements", len(pair))
	}

	var chars []string
	if err := json.Unmarshal(pair[0], &chars); err != nil {
		return err
	}
	w.Chars = make([]rune, len(chars))
	for i, c := range chars {
		runes := []rune(c)
		if len(runes) != 1 {
			return fmt.Errorf("corpus character %q is not a single character", c)
		}
		w.Chars[i] = runes[0]
	}
	return json.Unmarshal(pair[1], &w.Tag)
}

// LoadCorpus reads and decodes one corpus file, buffering reads with bufSize bytes.
func LoadCorpus(path string, bufSize int) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	var corpus Corpus
	if err := json.NewDecoder(bufio.NewReaderSize(f, bufSize)).Decode(&corpus); err != nil {
		return nil, fmt.Errorf("decode corpus %s: %w", path, err)
	}
	return corpus, nil
}
