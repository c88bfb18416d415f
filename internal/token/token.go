package token

type Type int

const (
	WORD Type = iota
	SEPARATOR
)

func (t Type) String() string {
	switch t {
	case WORD:
		return "WORD"
	case SEPARATOR:
		return "SEPARATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is a maximal run of characters that are either all separators or all word characters.
type Token struct {
	Type  Type
	Value string
}

func (t Token) IsWord() bool {
	return t.Type == WORD
}
