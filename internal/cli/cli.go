// Package cli implements the opuscleaner command line: sampling dataset files
// and diffing two samples of filter output.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hplt-project/OpusCleaner/internal/simplelogger"
)

// Version is the opuscleaner version. It is a var (not a const) so build tooling can override it (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.5.0"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code (0, 1, or 2) and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil, but the structure of args is sound (flags are correct, etc).
//   - 2 -> err != nil, args parse error or misuse of flags, etc.
//
// Note that in cases of errors, Run has already displayed an error message to opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	// Subcommands print their own error messages; tee stderr so we can also
	// return a non-nil error when the exit code is non-zero.
	var stderrBuf bytes.Buffer
	errTee := io.MultiWriter(errW, &stderrBuf)

	simplelogger.Log("run: %v", argv)
	exitCode := dispatch(argv, in, out, errTee)

	if exitCode == 0 {
		return 0, nil
	}
	msg := strings.TrimSpace(stderrBuf.String())
	if msg == "" {
		msg = "command failed"
	}
	return exitCode, errors.New(msg)
}

func dispatch(argv []string, in io.Reader, out, errW io.Writer) int {
	if len(argv) == 0 {
		printUsage(errW)
		return 2
	}
	switch argv[0] {
	case "sample":
		return runSample(argv[1:], in, out, errW)
	case "diff":
		return runDiff(argv[1:], in, out, errW)
	case "version":
		fmt.Fprintf(out, "opuscleaner %s\n", Version)
		return 0
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errW, "opuscleaner: unknown command %q\n", argv[0])
		printUsage(errW)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `opuscleaner inspects parallel-text datasets as they move through filters.

Usage:

  opuscleaner sample [-n K] [-d DELIM] [-N] [-seed S] [FILE...]
        Print the first K lines, K random lines from the middle, and the
        last K lines. Multiple files become tab-separated columns, zipped
        line by line. Use - for stdin; .gz files are decompressed.

  opuscleaner diff [-l LANGS] [-json] [-C N] PREVIOUS CURRENT
        Compare two samples row by row: which rows were added, removed,
        or edited in place, with character-level highlights.

  opuscleaner version
        Print the version.
`)
}
