package diff

import (
	"fmt"
	"strings"
)

// validateRuns checks the Run invariants over string tokens: flag exclusivity, count/value agreement, and reconstruction of both inputs. Reconstruction is
// compared on joined text rather than token-by-token, since folding a trailing empty token moves it across runs without changing either text.
func validateRuns(previous, current []string, runs []Run[string]) error {
	var prevText, curText strings.Builder
	for i, r := range runs {
		if r.Added && r.Removed {
			return fmt.Errorf("run[%d]: Added and Removed are mutually exclusive", i)
		}
		if r.Count != len(r.Value) {
			return fmt.Errorf("run[%d]: Count %d != len(Value) %d", i, r.Count, len(r.Value))
		}
		for _, v := range r.Value {
			if !r.Removed {
				curText.WriteString(v)
			}
			if !r.Added {
				prevText.WriteString(v)
			}
		}
	}
	if got, want := curText.String(), strings.Join(current, ""); got != want {
		return fmt.Errorf("runs do not reconstruct current: %q != %q", got, want)
	}
	if got, want := prevText.String(), strings.Join(previous, ""); got != want {
		return fmt.Errorf("runs do not reconstruct previous: %q != %q", got, want)
	}
	return nil
}
