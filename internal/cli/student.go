package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmarques2003/gradekeeper/internal/models"
)

const studentPrompt = `[1] transcript
[0] logout`

func (a *App) studentMenu(ctx context.Context, sess models.Session) error {
	for {
		choice, err := GetSimpleText(a.reader, studentPrompt, a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.showTranscript(ctx, sess)
		case "0":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown option.")
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) showTranscript(ctx context.Context, sess models.Session) error {
	tr, err := a.reporting.StudentTranscript(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUBJECT\tSCORE\tTEACHER")
	for _, e := range tr.Entries {
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", e.Subject, e.Score, e.TeacherName)
	}
	w.Flush()

	if tr.Average == nil {
		fmt.Fprintln(a.out, "No grades yet.")
		return nil
	}
	fmt.Fprintf(a.out, "Average: %.2f\n", *tr.Average)
	return nil
}
