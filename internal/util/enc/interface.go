package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// Ratio returns the number of encoded characters produced for every input byte
	Ratio() float64

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}
