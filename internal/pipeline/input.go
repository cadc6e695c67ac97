package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrInputNotFound matches the error ReadInput returns for a missing path.
var ErrInputNotFound = errors.New("input file not found")

// InputNotFoundError reports a missing input file. It matches
// ErrInputNotFound and unwraps to the underlying *fs.PathError.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

func (e *InputNotFoundError) Is(target error) bool { return target == ErrInputNotFound }

// ReadInput returns the contents of the text file at path.
func ReadInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InputNotFoundError{Path: path, Err: err}
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}
