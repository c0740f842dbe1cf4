package decode

import (
	"github.com/bokysan/base32/internal/args"
	"github.com/bokysan/base32/internal/logging"
	"github.com/bokysan/base32/internal/streams"
	"github.com/bokysan/base32/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
)

type Command struct {
	args.Codec `yaml:",inline"`

	Output string `short:"o" long:"output" env:"OUTPUT" yaml:"output" description:"File to write the decoded data to. Use '-' or leave empty for stdout."`
	Strict bool   `short:"s" long:"strict" env:"STRICT"             yaml:"strict" description:"Only accept canonical RFC 4648 input: padding at the end only, full length and zero trailing bits."`
}

func NewCommand() *Command {
	return &Command{}
}

// Execute decodes every file given on the command line, or stdin if there are none
func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}
	return c.Run(args)
}

// Run decodes the named inputs one after another into the configured output. An input that fails to
// decode does not stop the others; the errors are returned together.
func (c *Command) Run(files []string) error {
	encoder, err := c.Encoder()
	if err != nil {
		return err
	}
	if c.Strict {
		encoder = encoder.Strict()
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
		if err := decodeFile(encoder, name, out); err != nil {
			log.WithError(err).Warnf("Skipping %v", name)
			errs = multierror.Append(errs, err)
		}
	}

	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

func decodeFile(encoder *enc.Base32Encoder, name string, out io.Writer) error {
	in, err := streams.OpenInput(name)
	if err != nil {
		return err
	}
	defer streams.TryClose(in)

	text, err := streams.ReadAll(in)
	if err != nil {
		return err
	}

	data, err := encoder.Decode(strings.TrimSpace(string(text)))
	if err != nil {
		return errors.Wrapf(err, "Could not decode %v", in)
	}

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Decoded %v:\n%s", in, spew.Sdump(data))
	}

	if _, err := out.Write(data); err != nil {
		return errors.Wrapf(err, "Could not write decoded %v to %v", in, out)
	}

	log.Infof("Decoded %v bytes from %v using %v", len(data), in, encoder)
	return nil
}
