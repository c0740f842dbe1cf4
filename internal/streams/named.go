package streams

import (
	"fmt"
	"io"
)

// NamedReader is a SafeReader which also implements fmt.Stringer. It allows the caller to setup a name for
// the stream (usually the file name) which will be returned when outputing the stream with `%v`.
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

func (ns *NamedReader) String() string {
	return chainName(ns.name, ns.ReadCloserClosed)
}

func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.ReadCloserClosed
}

// NamedWriter is the writing counterpart of NamedReader
type NamedWriter struct {
	WriteCloserClosed
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (ns *NamedWriter) String() string {
	return chainName(ns.name, ns.WriteCloserClosed)
}

func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloserClosed
}

// chainName walks down the wrapped streams and appends the name of the first one which has a name,
// e.g. "demo->/tmp/file.txt".
func chainName(name string, s interface{}) string {
	for {
		var next interface{}
		switch t := s.(type) {
		case UnwrappedReadCloser:
			next = t.Unwrap()
		case UnwrappedWriteCloser:
			next = t.Unwrap()
		default:
			return name
		}
		if v, ok := next.(fmt.Stringer); ok {
			return name + "->" + v.String()
		}
		s = next
	}
}
