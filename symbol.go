package bestgram

// Symbol is one vectorized character: its alphabet code and the tag carried
// on the final character of each word (0 everywhere else).
type Symbol struct {
	Code uint8
	Tag  uint8
}

func NewSymbol(code, tag uint8) Symbol {
	return Symbol{
		Code: code,
		Tag:  tag,
	}
}

// SymbolSequence is the flat, source-ordered concatenation of every symbol
// across all corpus files of a run.
type SymbolSequence struct {
	Symbols []Symbol
}

func NewSymbolSequence(symbols []Symbol) SymbolSequence {
	return SymbolSequence{
		Symbols: symbols,
	}
}

func (ss SymbolSequence) Size() int {
	return len(ss.Symbols)
}

// Codes returns the code projection of the sequence, the input to the
// n-gram counter.
func (ss SymbolSequence) Codes() []uint8 {
	codes := make([]uint8, ss.Size())
	for i, s := range ss.Symbols {
		codes[i] = s.Code
	}
	return codes
}

// Tags returns the tag projection of the sequence.
func (ss SymbolSequence) Tags() []uint8 {
	tags := make([]uint8, ss.Size())
	for i, s := range ss.Symbols {
		tags[i] = s.Tag
	}
	return tags
}
