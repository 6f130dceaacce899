package rows

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Output is a filter step's captured output with stdout parsed into rows, in
// the wire shape the sample UI consumes.
type Output struct {
	Returncode int    `json:"returncode"`
	Stdout     []Row  `json:"stdout"`
	Stderr     string `json:"stderr"`
}

// ParseOutput packages a filter step's exit code and captured streams,
// parsing stdout into rows over langs.
func ParseOutput(langs []string, stdout, stderr []byte, returncode int) Output {
	return Output{
		Returncode: returncode,
		Stdout:     ParseRows(langs, stdout),
		Stderr:     string(stderr),
	}
}

// ParseRows parses tab-separated stdout into rows, one per line, pairing
// fields with langs in order. Every listed language gets a value: lines with
// fewer fields fill the missing columns with "", and fields beyond the
// language list are dropped. CRLF line endings are accepted.
//
// A field that is not valid UTF-8 is replaced by a placeholder naming its
// 1-based line and column, so one undecodable byte doesn't hide the rest of
// the sample.
//
// Empty stdout parses to zero rows.
func ParseRows(langs []string, stdout []byte) []Row {
	text := bytes.TrimRight(stdout, "\r\n")
	if len(text) == 0 {
		return []Row{}
	}

	lines := bytes.Split(text, []byte{'\n'})
	out := make([]Row, len(lines))
	for i, line := range lines {
		fields := bytes.Split(bytes.TrimRight(line, "\r"), []byte{'\t'})
		row := make(Row, len(langs))
		for j, lang := range langs {
			if j >= len(fields) {
				row[lang] = ""
				continue
			}
			if !utf8.Valid(fields[j]) {
				row[lang] = fmt.Sprintf("[Error: Cannot decode line %d column %d: invalid UTF-8]", i+1, j+1)
				continue
			}
			row[lang] = string(fields[j])
		}
		out[i] = row
	}
	return out
}
