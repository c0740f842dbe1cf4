package decode

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bokysan/base32/internal/streams"
	"github.com/bokysan/base32/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	file := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(file, []byte(content), 0644))
	return file
}

func Test_Decode_Files(t *testing.T) {
	dir, err := ioutil.TempDir("", "decode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	f1 := writeTemp(t, dir, "f1", "MZXW6===\n")
	f2 := writeTemp(t, dir, "f2", "  MJQXE===\r\n")

	cmd := NewCommand()
	cmd.Output = filepath.Join(dir, "out.bin")
	require.NoError(t, cmd.Run([]string{f1, f2}))

	written, err := ioutil.ReadFile(cmd.Output)
	require.NoError(t, err)
	require.Equal(t, "foobar", string(written))
}

func Test_Decode_Stdin(t *testing.T) {
	oldIn, oldOut := streams.Stdin, streams.Stdout
	defer func() { streams.Stdin, streams.Stdout = oldIn, oldOut }()
	buf := &bytes.Buffer{}
	streams.Stdin = strings.NewReader("MZXW6YTBOI======\n")
	streams.Stdout = buf

	cmd := NewCommand()
	require.NoError(t, cmd.Run(nil))
	require.Equal(t, "foobar", buf.String())
}

func Test_Decode_InvalidInput(t *testing.T) {
	oldOut := streams.Stdout
	defer func() { streams.Stdout = oldOut }()
	buf := &bytes.Buffer{}
	streams.Stdout = buf

	dir, err := ioutil.TempDir("", "decode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	bad := writeTemp(t, dir, "bad", "MZXW6YT1")
	good := writeTemp(t, dir, "good", "MZXW6===")

	cmd := NewCommand()
	err = cmd.Run([]string{bad, good})
	require.Error(t, err)

	var decodeErr *enc.DecodeError
	require.True(t, errors.As(err, &decodeErr), "DecodeError was not propagated: %v", err)
	require.Equal(t, enc.InvalidSymbol, decodeErr.Reason)
	require.Equal(t, '1', decodeErr.Symbol)
	require.Contains(t, err.Error(), bad)

	require.Equal(t, "foo", buf.String(), "Valid inputs were not decoded")
}

func Test_Decode_Strict(t *testing.T) {
	oldIn, oldOut := streams.Stdin, streams.Stdout
	defer func() { streams.Stdin, streams.Stdout = oldIn, oldOut }()
	buf := &bytes.Buffer{}
	streams.Stdout = buf

	streams.Stdin = strings.NewReader("MZXW6")
	cmd := NewCommand()
	require.NoError(t, cmd.Run(nil))
	require.Equal(t, "foo", buf.String())

	streams.Stdin = strings.NewReader("MZXW6")
	cmd.Strict = true
	err := cmd.Run(nil)
	var decodeErr *enc.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, enc.InvalidLength, decodeErr.Reason)
}

func Test_Decode_CustomAlphabet(t *testing.T) {
	oldIn, oldOut := streams.Stdin, streams.Stdout
	defer func() { streams.Stdin, streams.Stdout = oldIn, oldOut }()
	buf := &bytes.Buffer{}
	streams.Stdin = strings.NewReader("mzxw6***")
	streams.Stdout = buf

	cmd := NewCommand()
	cmd.Alphabet = "abcdefghijklmnopqrstuvwxyz234567"
	cmd.Padding = "*"
	require.NoError(t, cmd.Run(nil))
	require.Equal(t, "foo", buf.String())
}
