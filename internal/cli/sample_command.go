package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/hplt-project/OpusCleaner/internal/sample"
)

func runSample(args []string, in io.Reader, out, errW io.Writer) int {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(errW)
	k := fs.Int("n", 10, "number of lines for each section of the sample")
	delimiter := fs.String("d", `\t`, "column delimiter")
	lineNumbers := fs.Bool("N", false, "prepend line numbers as a first column")
	seed := fs.Int64("seed", 0, "seed for the middle section (0 picks one at random)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	var columns []sample.Iterator[string]
	if *lineNumbers {
		columns = append(columns, sample.Count())
	}

	// All files stay open until the sample is taken: Zip reads them lazily.
	var lineIters []*sample.LineIterator
	for _, path := range files {
		r, err := sample.Open(path, in)
		if err != nil {
			fmt.Fprintf(errW, "opuscleaner: %v\n", err)
			return 1
		}
		defer r.Close()
		it := sample.Lines(r)
		lineIters = append(lineIters, it)
		columns = append(columns, it)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	rows := sample.Zip(unescapeDelimiter(*delimiter), columns...)
	sections := sample.Take(*k, rows, rng)

	for i, it := range lineIters {
		if err := it.Err(); err != nil {
			fmt.Fprintf(errW, "opuscleaner: read %q: %v\n", files[i], err)
			return 1
		}
	}

	w := bufio.NewWriter(out)
	for _, section := range [][]string{sections.Head, sections.Middle, sections.Tail} {
		for _, row := range section {
			fmt.Fprintln(w, row)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(errW, "opuscleaner: write output: %v\n", err)
		return 1
	}
	return 0
}

// unescapeDelimiter turns the literal escapes "\t" and "\n" into the
// characters they name, so shells don't have to.
func unescapeDelimiter(s string) string {
	s = strings.ReplaceAll(s, `\t`, "\t")
	return strings.ReplaceAll(s, `\n`, "\n")
}
