package encode

import (
	"github.com/bokysan/base32/internal/args"
	"github.com/bokysan/base32/internal/logging"
	"github.com/bokysan/base32/internal/streams"
	"github.com/bokysan/base32/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

type Command struct {
	args.Codec `yaml:",inline"`

	Output    string `short:"o" long:"output"     env:"OUTPUT" yaml:"output"     description:"File to write the encoded text to. Use '-' or leave empty for stdout."`
	NoNewline bool   `short:"n" long:"no-newline"                          yaml:"no-newline" description:"Do not write a newline after the encoded text of each input."`
}

func NewCommand() *Command {
	return &Command{}
}

// Execute encodes every file given on the command line, or stdin if there are none
func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}
	return c.Run(args)
}

// Run encodes the named inputs one after another into the configured output. All inputs are tried;
// the errors are returned together.
func (c *Command) Run(files []string) error {
	encoder, err := c.Encoder()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{streams.StdioName}
	}

	out, err := streams.CreateOutput(c.Output)
	if err != nil {
		return err
	}
	defer streams.TryClose(out)

	var errs error
	for _, name := range files {
		if err := c.encodeFile(encoder, name, out); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func (c *Command) encodeFile(encoder *enc.Base32Encoder, name string, out io.Writer) error {
	in, err := streams.OpenInput(name)
	if err != nil {
		return err
	}
	defer streams.TryClose(in)

	data, err := streams.ReadAll(in)
	if err != nil {
		return err
	}

	text := encoder.Encode(data)
	if !c.NoNewline {
		text += "\n"
	}
	if _, err := io.WriteString(out, text); err != nil {
		return errors.Wrapf(err, "Could not write encoded %v to %v", in, out)
	}

	log.Infof("Encoded %v bytes from %v using %v", len(data), in, encoder)
	return nil
}
