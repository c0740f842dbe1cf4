package enc

import "fmt"

// Reason tells why a piece of text could not be decoded.
type Reason int

const (
	// InvalidSymbol is raised for a character that is neither in the alphabet nor the padding character.
	InvalidSymbol Reason = iota
	// MisplacedPadding is raised in strict mode when padding is followed by a regular symbol.
	MisplacedPadding
	// InvalidLength is raised in strict mode when the text length cannot be produced by the encoder.
	InvalidLength
	// NonZeroTrailingBits is raised in strict mode when the bits dropped at the end of the text are not zero.
	NonZeroTrailingBits
)

func (r Reason) String() string {
	switch r {
	case InvalidSymbol:
		return "invalid symbol"
	case MisplacedPadding:
		return "misplaced padding"
	case InvalidLength:
		return "invalid length"
	case NonZeroTrailingBits:
		return "non-zero trailing bits"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// DecodeError is the only error Decode returns. Offset is the byte offset into the decoded text.
type DecodeError struct {
	Reason Reason
	Symbol rune
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Reason == InvalidLength {
		return fmt.Sprintf("illegal base32 data: %v (%d characters)", e.Reason, e.Offset)
	}
	return fmt.Sprintf("illegal base32 data: %v %q at offset %d", e.Reason, e.Symbol, e.Offset)
}
