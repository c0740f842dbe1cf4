package streams

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
)

// ReadAll reads the whole stream into memory. The codec works on complete values, so there is no
// point in feeding it chunks.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read from %v", r)
	}
	log.Tracef("Read %v bytes from %v", len(data), r)
	return data, nil
}

// Try closing a stream and just report to log if it fails
func TryClose(closer io.Closer) {
	if err := LogClose(closer); err != nil {
		log.WithError(err).Debugf("Ignoring close error: %v", err)
	}
}

// LogClose will log when closing a stream fails
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	} else {
		return nil
	}
}
