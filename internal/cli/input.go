package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/spf13/cobra"
)

// openInput returns the named file, or standard input for "" and "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "input %s not found", name).WithDetail("path", name)
		}
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot open %s", name).WithDetail("path", name)
	}
	return f, nil
}

// eachLine calls fn for every line of r, without the line terminator.
func eachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "failed to read input")
	}
	return nil
}
