package main

import (
	"fmt"
	"github.com/bokysan/base32/internal/args"
	"github.com/bokysan/base32/internal/commands/decode"
	"github.com/bokysan/base32/internal/commands/encode"
	"github.com/bokysan/base32/internal/commands/version"
	b32Flags "github.com/bokysan/base32/internal/flags"
	"github.com/bokysan/base32/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base32 is the main executable
type Base32 struct {
	parser *flags.Parser
}

// NewBase32 will create a new instance of Base32 and initialize the parser
func NewBase32(name string) *Base32 {
	b := &Base32{
		parser: flags.NewNamedParser(name, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()

	return b
}

// setupGeneral will configure general options
func (b *Base32) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
	args.General.ConfigurationFile = b.loadConfiguration
}

// setupVersion adds the `version` command
func (b *Base32) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base32) setupEncode() {
	cmd := encode.NewCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode data to base32",
		"Read each FILE (or stdin) and write its RFC 4648 base32 text",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Base32) setupDecode() {
	cmd := decode.NewCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode base32 text",
		"Read base32 text from each FILE (or stdin) and write the decoded data",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// loadConfiguration is called by the parser when it sees the `--config` option
func (b *Base32) loadConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return b32Flags.NewYamlParser(b.parser).ParseFile(file)
}

// Parse parses the arguments and executes the selected command
func (b *Base32) Parse(arguments []string) error {
	_, err := b.parser.ParseArgs(arguments)
	return err
}

// main parses the command line, reads the configuration file and runs the command
func main() {
	app := NewBase32(path.Base(os.Args[0]))
	util.MustErrorNilOrExit(app.Parse(os.Args[1:]))
}
