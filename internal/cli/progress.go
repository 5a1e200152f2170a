package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/runoshun/pkgcheck/internal/tui"
)

// plainObserver prints one line per step start and finish.
type plainObserver struct {
	w      io.Writer
	styles tui.Styles
}

var _ domain.StepObserver = (*plainObserver)(nil)

func newPlainObserver(w io.Writer, styles tui.Styles) *plainObserver {
	return &plainObserver{w: w, styles: styles}
}

func (o *plainObserver) StepStarted(index, total int, step domain.Step) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n",
		o.styles.Step.Render(fmt.Sprintf("==> [%d/%d] %s", index+1, total, step.Name)),
		o.styles.Command.Render(step.Command.String()),
	)
}

func (o *plainObserver) StepFinished(_, _ int, result domain.StepResult) {
	_, _ = fmt.Fprintln(o.w, o.styles.ResultLine(result))
}
