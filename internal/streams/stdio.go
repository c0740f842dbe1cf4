package streams

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// StdioName is the file name which stands for standard input or output
const StdioName = "-"

// Stdin and Stdout can be replaced in tests
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// stdioCloser makes sure we never close the process-wide standard streams
type stdioCloser struct {
	io.Reader
	io.Writer
}

func (s *stdioCloser) Close() error {
	return nil
}

// OpenInput opens the named file for reading. An empty name or `-` opens standard input.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StdioName {
		return NewNamedReader(&stdioCloser{Reader: Stdin}, "stdin"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open input %v", name)
	}
	return NewNamedReader(f, name), nil
}

// CreateOutput creates (or truncates) the named file for writing. An empty name or `-` writes to
// standard output.
func CreateOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StdioName {
		return NewNamedWriter(&stdioCloser{Writer: Stdout}, "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create output %v", name)
	}
	return NewNamedWriter(f, name), nil
}
