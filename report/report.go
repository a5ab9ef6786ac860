package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/korjavin/speedquestions/models"
)

const correctMarker = " [CORRECT]"

// Write prints a count header followed by one block per question. Options
// are numbered from 1 and the right answer carries a [CORRECT] marker.
func Write(w io.Writer, qs []models.Question) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Found %d speed limit related questions:\n\n", len(qs))
	for _, q := range qs {
		fmt.Fprintf(bw, "ID %d: %s\n", q.ID, q.Text)
		for i, opt := range q.Options {
			marker := ""
			if q.IsCorrect(i) {
				marker = correctMarker
			}
			fmt.Fprintf(bw, "  %d. %s%s\n", i+1, opt, marker)
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}
