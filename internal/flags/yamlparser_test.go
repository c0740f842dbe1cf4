package flags

import (
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

type CodecOptions struct {
	Alphabet string `long:"alphabet" yaml:"alphabet"`
	Padding  string `long:"padding" yaml:"padding"`
}

type decodeCommand struct {
	CodecOptions `yaml:",inline"`
	Strict       bool `long:"strict" yaml:"strict"`
}

type encodeCommand struct {
	NoNewline bool `long:"no-newline" yaml:"no-newline"`
}

type generalOptions struct {
	LogFormat        string `long:"log-format" yaml:"log-format"`
	LogFullTimestamp bool   `long:"log-full-timestamp" yaml:"log-full-timestamp"`
}

func newTestParser(t *testing.T) (*flags.Parser, *generalOptions, *encodeCommand, *decodeCommand) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)

	general := &generalOptions{}
	_, err := parser.AddGroup("General", "General options", general)
	require.NoErrorf(t, err, "Could not add general group")

	encode := &encodeCommand{}
	_, err = parser.AddCommand("encode", "Encode", "Encode data", encode)
	require.NoErrorf(t, err, "Could not add encode command")

	decode := &decodeCommand{}
	_, err = parser.AddCommand("decode", "Decode", "Decode data", decode)
	require.NoErrorf(t, err, "Could not add decode command")

	return parser, general, encode, decode
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_CommandParse(t *testing.T) {
	file := "testdata/decode.yml"

	parser, _, _, decode := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "abcdefghijklmnopqrstuvwxyz234567", decode.Alphabet, "Invalid reading of embedded string value")
	require.Equal(t, "*", decode.Padding, "Invalid reading of embedded string value")
	require.True(t, decode.Strict, "Invalid reading of boolean value")
}

func Test_GroupParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "json", general.LogFormat)
	require.True(t, general.LogFullTimestamp)
}

func Test_MultipleSegments(t *testing.T) {
	file := "testdata/segments.yml"

	parser, _, encode, decode := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.True(t, encode.NoNewline)
	require.True(t, decode.Strict)
	require.Empty(t, decode.Alphabet)
}

func Test_ParseReader(t *testing.T) {
	parser, _, _, decode := newTestParser(t)
	err := NewYamlParser(parser).Parse(strings.NewReader("decode:\n  padding: \"#\"\n"))
	require.NoError(t, err)
	require.Equal(t, "#", decode.Padding)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
	require.Contains(t, err.Error(), "server")
}

func Test_MissingFile(t *testing.T) {
	parser, _, _, _ := newTestParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/missing.yml")
	require.Error(t, err)
}
