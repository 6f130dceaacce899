package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/hplt-project/OpusCleaner/internal/rows"
	"github.com/hplt-project/OpusCleaner/internal/sample"
)

func runDiff(args []string, in io.Reader, out, errW io.Writer) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(errW)
	langsFlag := fs.String("l", "", "comma-separated language codes naming the columns (default l1,l2,... up to the widest row)")
	jsonOut := fs.Bool("json", false, "print the classified runs and summary as JSON")
	contextSize := fs.Int("C", -1, "identical rows to show around each change (-1 shows all)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(errW, "usage: opuscleaner diff [-l LANGS] [-json] [-C N] PREVIOUS CURRENT")
		return 2
	}

	prevText, err := readInput(fs.Arg(0), in)
	if err != nil {
		fmt.Fprintf(errW, "opuscleaner: %v\n", err)
		return 1
	}
	curText, err := readInput(fs.Arg(1), in)
	if err != nil {
		fmt.Fprintf(errW, "opuscleaner: %v\n", err)
		return 1
	}

	langs := parseLangs(*langsFlag)
	if len(langs) == 0 {
		langs = defaultLangs(prevText, curText)
	}

	previous := rows.ParseRows(langs, prevText)
	current := rows.ParseRows(langs, curText)
	runs := rows.Classify(langs, previous, current)
	summary := rows.Summarize(runs)

	if *jsonOut {
		payload := struct {
			Langs   []string             `json:"langs"`
			Summary rows.Summary         `json:"summary"`
			Runs    []rows.ClassifiedRun `json:"runs"`
		}{langs, summary, runs}
		if err := json.NewEncoder(out).Encode(payload); err != nil {
			fmt.Fprintf(errW, "opuscleaner: encode output: %v\n", err)
			return 1
		}
		return 0
	}

	var rendered string
	if isTerminal(out) {
		rendered = rows.RenderPretty(runs, langs, detectTerminalWidth(out), *contextSize)
	} else {
		rendered = rows.RenderText(runs, langs, 0, *contextSize)
	}
	if rendered != "" {
		fmt.Fprintln(out, rendered)
	}
	fmt.Fprintf(out, "%d added, %d removed, %d changed\n", summary.Additions, summary.Deletions, summary.Changes)
	return 0
}

// readInput reads a whole sampled file; "-" reads stdin and ".gz" files are
// decompressed, same as the sample command's inputs.
func readInput(path string, in io.Reader) ([]byte, error) {
	r, err := sample.Open(path, in)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return text, nil
}

func parseLangs(s string) []string {
	var langs []string
	for _, lang := range strings.Split(s, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// defaultLangs names columns l1, l2, ... up to the widest row seen in any of
// the inputs.
func defaultLangs(texts ...[]byte) []string {
	widest := 0
	for _, text := range texts {
		trimmed := strings.TrimRight(string(text), "\r\n")
		if trimmed == "" {
			continue
		}
		for _, line := range strings.Split(trimmed, "\n") {
			if n := strings.Count(line, "\t") + 1; n > widest {
				widest = n
			}
		}
	}
	langs := make([]string, widest)
	for i := range langs {
		langs[i] = "l" + strconv.Itoa(i+1)
	}
	return langs
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}

func detectTerminalWidth(out io.Writer) int {
	if outFile, ok := out.(*os.File); ok && outFile != nil {
		fd := int(outFile.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	if cols := strings.TrimSpace(os.Getenv("COLUMNS")); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
