package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/urltop/internal/store"
)

// Failures reported without the "Unhandled error" prefix. I/O errors are
// wrapped with the offending path.
var (
	ErrOpenInput   = errors.New("unable to open input file")
	ErrReadInput   = errors.New("failed to read input")
	ErrOpenOutput  = errors.New("unable to open output file")
	ErrWriteOutput = errors.New("failed to write output")
	ErrConfig      = errors.New("failed to load config")
	ErrHistory     = errors.New("history database error")
)

// ArgumentError reports invalid command-line input. It is printed together
// with the usage line of the command that rejected it.
type ArgumentError struct {
	Msg   string
	Usage string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func argErrorf(cmd *cobra.Command, format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...), Usage: cmd.UseLine()}
}

// printError writes the diagnostic for err to w.
func printError(w io.Writer, err error) {
	var argErr *ArgumentError
	switch {
	case errors.As(err, &argErr):
		logTo(w, "Argument parse error: %s\n", argErr.Msg)
		if argErr.Usage != "" {
			logTo(w, "Usage: %s\n", argErr.Usage)
		}
	case isKnownError(err):
		logTo(w, "%v\n", err)
	default:
		logTo(w, "Unhandled error: %v\n", err)
	}
}

func isKnownError(err error) bool {
	for _, target := range []error{
		ErrOpenInput, ErrReadInput, ErrOpenOutput, ErrWriteOutput, ErrConfig, ErrHistory, store.ErrRunNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func logTo(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
