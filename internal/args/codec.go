package args

import (
	"github.com/bokysan/base32/internal/util/enc"
	"github.com/pkg/errors"
)

// Codec holds the options shared by every command which encodes or decodes data
type Codec struct {
	Alphabet string `long:"alphabet" env:"BASE32_ALPHABET" description:"The 32 symbols to encode with, in value order. Defaults to the RFC 4648 alphabet." yaml:"alphabet"`
	Padding  string `long:"padding"  env:"BASE32_PADDING"  description:"Character used to pad the output to a multiple of 8. Defaults to '='." yaml:"padding"`
}

// Encoder builds the encoder described by the options. The standard encoder is reused when the
// options match it.
func (c *Codec) Encoder() (*enc.Base32Encoder, error) {
	alphabet := c.Alphabet
	if alphabet == "" {
		alphabet = enc.StdAlphabet
	}
	padding := c.Padding
	if padding == "" {
		padding = string(enc.StdPadding)
	}
	if len(padding) != 1 {
		return nil, errors.Errorf("Padding must be a single ASCII character, got %q", padding)
	}

	if alphabet == enc.StdAlphabet && padding[0] == enc.StdPadding {
		return enc.StdEncoder, nil
	}

	encoder, err := enc.NewBase32Encoder(alphabet, padding[0])
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid codec configuration")
	}
	return encoder, nil
}
