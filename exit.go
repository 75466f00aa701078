package argtok

import (
	"fmt"
	"io"
	"os"

	"github.com/anacrolix/missinggo"
	"golang.org/x/xerrors"
)

// HandleErr writes err's diagnostic to w and returns the status the process
// should exit with. A nil err writes nothing and returns 0. An err whose
// message is exactly helpText is a help request: the help text is written,
// newline assured, and the status is 0. Argument errors carry their own
// status, anything else maps to 1. Wrapped errors classify through their
// chain, keeping the wrapping detail in the diagnostic.
func HandleErr(w io.Writer, helpText string, err error) int {
	if err == nil {
		return 0
	}
	if err.Error() == helpText {
		io.WriteString(w, missinggo.Unchomp(helpText))
		return 0
	}
	var ae ArgumentError
	if xerrors.As(err, &ae) {
		fmt.Fprintln(w, err)
		return ae.Exit
	}
	fmt.Fprintln(w, err)
	return 1
}

// Exit terminates the process according to err: help text to stdout,
// diagnostics to stderr. A nil err returns without exiting.
func Exit(helpText string, err error) {
	if err == nil {
		return
	}
	if err.Error() == helpText {
		os.Exit(HandleErr(os.Stdout, helpText, err))
	}
	os.Exit(HandleErr(os.Stderr, helpText, err))
}
