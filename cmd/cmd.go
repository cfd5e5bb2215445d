package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// openInput resolves the shared --input convention: "-" reads stdin,
// anything else is a file path.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open input %s", path)
	}
	return f, nil
}
