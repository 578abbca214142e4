// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bio

import "fmt"

// Kind discriminates the error conditions the codec and K-mer algebra
// can raise. Callers that need to branch on the failure mode should
// compare against these with errors.Is, not by inspecting Error.Error().
type Kind int

const (
	// InvalidSymbol: a parse saw a byte outside the target type's alphabet.
	InvalidSymbol Kind = iota
	// LengthOutOfRange: a K-mer/QK-mer parse length was 0 or > 32.
	LengthOutOfRange
	// EmptyDNA: a DNA parse length was 0.
	EmptyDNA
	// KmerStreamK: a stream was requested with k=0 or k>32.
	KmerStreamK
	// PrefixTooLong: first_k was called with j > k.
	PrefixTooLong
	// UnknownStrategy: a scan key strategy was not in {1,2,3}.
	UnknownStrategy
)

func (k Kind) String() string {
	switch k {
	case InvalidSymbol:
		return "invalid symbol"
	case LengthOutOfRange:
		return "length out of range"
	case EmptyDNA:
		return "empty DNA"
	case KmerStreamK:
		return "invalid k for kmer stream"
	case PrefixTooLong:
		return "prefix longer than value"
	case UnknownStrategy:
		return "unknown strategy"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every parse and algebra operation
// in this package. It carries a Kind so callers can discriminate failure
// modes without parsing messages.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is supports errors.Is(err, SomeKindSentinel)-style comparisons against
// the package-level sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is(err, bio.ErrInvalidSymbol) style checks, one per Kind.
var (
	ErrInvalidSymbol    = &Error{Kind: InvalidSymbol}
	ErrLengthOutOfRange = &Error{Kind: LengthOutOfRange}
	ErrEmptyDNA         = &Error{Kind: EmptyDNA}
	ErrKmerStreamK      = &Error{Kind: KmerStreamK}
	ErrPrefixTooLong    = &Error{Kind: PrefixTooLong}
	ErrUnknownStrategy  = &Error{Kind: UnknownStrategy}
)
