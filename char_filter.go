package bestgram

// Thai Unicode block, eligible for vectorization by default.
const (
	thaiBlockFirst = 0x0E01
	thaiBlockLast  = 0x0E7F
)

type CharFilter interface {
	Eligible(rune) bool
}

// ThaiCharFilter admits characters in the Thai block plus an explicit
// include list of non-Thai characters.
type ThaiCharFilter struct {
	include map[rune]struct{}
}

func NewThaiCharFilter(include []rune) *ThaiCharFilter {
	m := make(map[rune]struct{}, len(include))
	for _, ch := range include {
		m[ch] = struct{}{}
	}
	return &ThaiCharFilter{include: m}
}

func (c *ThaiCharFilter) Eligible(ch rune) bool {
	if ch >= thaiBlockFirst && ch <= thaiBlockLast {
		return true
	}
	_, ok := c.include[ch]
	return ok
}
