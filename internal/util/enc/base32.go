package enc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// StdAlphabet is the RFC 4648 base32 alphabet
	StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	// StdPadding rounds the encoded text up to a multiple of 8 characters
	StdPadding byte = '='

	invalidValue = 0xFF
)

// StdEncoder is the permissive RFC 4648 encoder used by the package-level functions.
var StdEncoder = MustNewBase32Encoder(StdAlphabet, StdPadding)

// Encode encodes data with StdEncoder.
func Encode(data []byte) string {
	return StdEncoder.Encode(data)
}

// Decode decodes text with StdEncoder.
func Decode(data string) ([]byte, error) {
	return StdEncoder.Decode(data)
}

// StripPadding removes every '=' from the text, wherever it is.
func StripPadding(data string) string {
	return StdEncoder.StripPadding(data)
}

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
// It is immutable once created and safe for concurrent use.
type Base32Encoder struct {
	alphabet string
	encode   [32]byte
	decode   [256]byte
	padding  byte
	strict   bool
}

// NewBase32Encoder creates an encoder with the given alphabet and padding character. The alphabet must
// consist of exactly 32 distinct ASCII characters, none of them equal to padding.
func NewBase32Encoder(alphabet string, padding byte) (*Base32Encoder, error) {
	if len(alphabet) != 32 {
		return nil, errors.Errorf("base32 alphabet must be 32 characters long, got %d", len(alphabet))
	}
	if padding >= utf8.RuneSelf {
		return nil, errors.Errorf("padding character %q is not ASCII", padding)
	}

	b := &Base32Encoder{
		alphabet: alphabet,
		padding:  padding,
	}
	for i := range b.decode {
		b.decode[i] = invalidValue
	}

	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		switch {
		case c >= utf8.RuneSelf:
			return nil, errors.Errorf("base32 alphabet contains non-ASCII character at position %d", i)
		case c == padding:
			return nil, errors.Errorf("base32 alphabet contains the padding character %q", padding)
		case b.decode[c] != invalidValue:
			return nil, errors.Errorf("base32 alphabet contains duplicate character %q", c)
		}
		b.encode[i] = c
		b.decode[c] = byte(i)
	}

	return b, nil
}

// MustNewBase32Encoder is like NewBase32Encoder but panics on an invalid alphabet.
func MustNewBase32Encoder(alphabet string, padding byte) *Base32Encoder {
	b, err := NewBase32Encoder(alphabet, padding)
	if err != nil {
		panic(err)
	}
	return b
}

// Strict returns a copy of the encoder which only accepts canonical input: padding only at the end,
// a padded length that is a multiple of 8 and zero bits in the dropped tail.
func (b *Base32Encoder) Strict() *Base32Encoder {
	s := *b
	s.strict = true
	return &s
}

// IsStrict returns true for encoders created with Strict
func (b *Base32Encoder) IsStrict() bool {
	return b.strict
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

// Alphabet returns the 32 symbols of this encoder, in value order
func (b *Base32Encoder) Alphabet() string {
	return b.alphabet
}

// Padding returns the padding character
func (b *Base32Encoder) Padding() byte {
	return b.padding
}

// EncodedLen returns the length of the text Encode produces for n bytes of input.
func (b *Base32Encoder) EncodedLen(n int) int {
	return (n + 4) / 5 * 8
}

// DecodedLen returns the maximum number of bytes n characters of text decode to.
func (b *Base32Encoder) DecodedLen(n int) int {
	return n * 5 / 8
}

// Encode takes 8 bits at a time into an accumulator and emits a symbol whenever 5 or more bits are
// available. The last symbol is filled up with zero bits, the text with padding characters.
func (b *Base32Encoder) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	dst := make([]byte, 0, b.EncodedLen(len(data)))

	acc := uint(0)
	bits := uint(0)
	for _, v := range data {
		acc = acc<<8 | uint(v)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst = append(dst, b.encode[(acc>>bits)&31])
		}
		// Only keep the bits not yet written out
		acc &= 1<<bits - 1
	}

	if bits > 0 {
		dst = append(dst, b.encode[(acc<<(5-bits))&31])
	}

	for len(dst)%8 != 0 {
		dst = append(dst, b.padding)
	}

	return string(dst)
}

// Decode is the reverse of Encode. Padding characters are skipped wherever they are and any bits that
// do not fill a complete byte at the end are dropped. A character outside the alphabet results in
// a *DecodeError and no data.
func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	if b.strict {
		if err := b.checkLayout(data); err != nil {
			return nil, err
		}
	}

	dst := make([]byte, 0, b.DecodedLen(len(data)))

	acc := uint(0)
	bits := uint(0)
	symbols := 0
	last := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c == b.padding {
			continue
		}

		v := b.decode[c]
		if v == invalidValue {
			r, _ := utf8.DecodeRuneInString(data[i:])
			return nil, &DecodeError{Reason: InvalidSymbol, Symbol: r, Offset: i}
		}

		acc = acc<<5 | uint(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst = append(dst, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
		symbols++
		last = i
	}

	if b.strict {
		switch symbols % 8 {
		case 1, 3, 6:
			return nil, &DecodeError{Reason: InvalidLength, Offset: len(data)}
		}
		if acc != 0 {
			return nil, &DecodeError{Reason: NonZeroTrailingBits, Symbol: rune(data[last]), Offset: last}
		}
	}

	return dst, nil
}

// checkLayout verifies the text is a multiple of 8 characters and padding, if any, only forms the tail.
func (b *Base32Encoder) checkLayout(data string) error {
	if len(data)%8 != 0 {
		return &DecodeError{Reason: InvalidLength, Offset: len(data)}
	}

	p := strings.IndexByte(data, b.padding)
	if p < 0 {
		return nil
	}
	for i := p + 1; i < len(data); i++ {
		if data[i] != b.padding {
			r, _ := utf8.DecodeRuneInString(data[i:])
			return &DecodeError{Reason: MisplacedPadding, Symbol: r, Offset: i}
		}
	}
	if len(data)-p >= 8 {
		return &DecodeError{Reason: InvalidLength, Offset: len(data)}
	}
	return nil
}

// StripPadding removes the padding character from anywhere in the text.
func (b *Base32Encoder) StripPadding(data string) string {
	return strings.ReplaceAll(data, string(b.padding), "")
}

func (b *Base32Encoder) TestPatterns() []string {
	pad := string(b.padding)
	zero := string(b.encode[0])
	return []string{
		b.alphabet,
		strings.Repeat(zero, 2) + strings.Repeat(pad, 6),
		strings.Repeat(zero, 4) + strings.Repeat(pad, 4),
		strings.Repeat(zero, 5) + strings.Repeat(pad, 3),
		strings.Repeat(zero, 7) + pad,
	}
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
