package ordinals

import "fmt"

type ErrorKind int

const (
	IntegerRange ErrorKind = iota + 1
	NameRange
	NameCharacter
	Percentile
	BlockOffset
	MissingPeriod
	ParseInt
	ParseFloat
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case IntegerRange:
		return "invalid integer range"
	case NameRange:
		return "invalid name range"
	case NameCharacter:
		return "invalid character in name"
	case Percentile:
		return "invalid percentile"
	case BlockOffset:
		return "invalid block offset"
	case MissingPeriod:
		return "missing period"
	case ParseInt:
		return "invalid integer"
	case ParseFloat:
		return "invalid float"
	case OutOfRange:
		return "out of range"
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// ParseError reports why input could not be turned into a Sat. Err is the
// underlying numeric or table error, if any.
type ParseError struct {
	Input string
	Kind  ErrorKind
	Err   error
}

func newParseError(input string, kind ErrorKind, err error) *ParseError {
	return &ParseError{Input: input, Kind: kind, Err: err}
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse sat `%s`: %s: %v", e.Input, e.Kind, e.Err)
	}
	return fmt.Sprintf("failed to parse sat `%s`: %s", e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
