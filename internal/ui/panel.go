package ui

import (
	"fmt"
	"io"

	"github.com/nhqb1010/qb-cli/internal/app"
)

// ProblemPanel renders p in a bordered box.
func ProblemPanel(p app.Problem) string {
	body := errorStyle.Render(fmt.Sprintf("%s (%d)", p.Title, p.Code)) + "\n\n" + p.Message
	return panelStyle.Render(body)
}

// WriteProblem writes p as JSON in JSON mode and as a panel otherwise.
func WriteProblem(w io.Writer, f Format, p app.Problem) error {
	if f == FormatJSON {
		return writeJSON(w, p)
	}
	_, err := fmt.Fprintln(w, ProblemPanel(p))
	return err
}
