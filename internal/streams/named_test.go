package streams

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SafeReader_MultipleClose(t *testing.T) {
	f, err := os.Open("testdata/file.bin")
	require.NoErrorf(t, err, "Could not open file %s: %v", "testdata/file.bin", err)

	obj := NewSafeReader(f)
	require.Same(t, obj, NewSafeReader(obj), "SafeReader was wrapped twice")
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	require.NoError(t, obj.Close())
	require.True(t, obj.Closed(), "Stream is not closed!")
	require.NoError(t, obj.Close(), "Second close should be a no-op")
}

func Test_SafeWriter_MultipleClose(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	obj := NewSafeWriter(f)
	require.Same(t, obj, NewSafeWriter(obj), "SafeWriter was wrapped twice")
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	require.NoError(t, obj.Close())
	require.True(t, obj.Closed(), "Stream is not closed!")
	require.NoError(t, obj.Close(), "Second close should be a no-op")
}

func Test_NamedReader(t *testing.T) {
	f, err := os.Open("testdata/file.bin")
	require.NoErrorf(t, err, "Could not open file %s: %v", "testdata/file.bin", err)

	inner := NewNamedReader(f, f.Name())
	outer := NewNamedReader(NewSafeReader(inner), "demo")
	defer TryClose(outer)

	require.Equal(t, f.Name(), inner.String())
	require.Equal(t, "demo->"+f.Name(), outer.String())

	require.NoError(t, outer.Close())
	require.True(t, outer.Closed())
	require.True(t, inner.Closed(), "Close was not passed down the chain")
}

func Test_NamedWriter(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	inner := NewNamedWriter(f, f.Name())
	outer := NewNamedWriter(NewSafeWriter(inner), "demo")
	defer TryClose(outer)

	require.Equal(t, f.Name(), inner.String())
	require.Equal(t, "demo->"+f.Name(), outer.String())
}
