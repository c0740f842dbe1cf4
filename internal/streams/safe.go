package streams

import (
	"io"
)

// closeOnce makes sure the wrapped closer sees `Close()` at most once. Any further call simply succeeds.
type closeOnce struct {
	closer io.Closer
	closed bool
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (c *closeOnce) Close() error {
	if c.closed {
		return nil
	}
	err := LogClose(c.closer)
	c.closed = true

	return err
}

// Closed will return `true` if Close has been called at least once
func (c *closeOnce) Closed() bool {
	return c.closed
}

// SafeReader implements the io.ReadCloser and makes sure that `Close()` can be called safely multiple times.
type SafeReader struct {
	io.Reader
	closeOnce
	wrapped io.ReadCloser
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if scs, ok := wrapped.(*SafeReader); ok {
		return scs
	}

	return &SafeReader{
		Reader:    wrapped,
		closeOnce: closeOnce{closer: wrapped},
		wrapped:   wrapped,
	}
}

// Unwrap returns the wrapped io.ReadCloser
func (s *SafeReader) Unwrap() io.ReadCloser {
	return s.wrapped
}

// SafeWriter implements the io.WriteCloser and makes sure that `Close()` can be called safely multiple times.
type SafeWriter struct {
	io.Writer
	closeOnce
	wrapped io.WriteCloser
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if scs, ok := wrapped.(*SafeWriter); ok {
		return scs
	}

	return &SafeWriter{
		Writer:    wrapped,
		closeOnce: closeOnce{closer: wrapped},
		wrapped:   wrapped,
	}
}

// Unwrap returns the wrapped io.WriteCloser
func (s *SafeWriter) Unwrap() io.WriteCloser {
	return s.wrapped
}
