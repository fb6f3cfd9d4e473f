package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmarques2003/gradekeeper/internal/models"
)

// noGrade is rendered for students without a recorded score.
const noGrade = "-"

const teacherPrompt = `[1] class view
[2] record grade
[0] logout`

func (a *App) teacherMenu(ctx context.Context, sess models.Session) error {
	for {
		choice, err := GetSimpleText(a.reader, teacherPrompt, a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.showClassView(ctx, sess)
		case "2":
			err = a.recordGrade(ctx, sess)
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

func (a *App) showClassView(ctx context.Context, sess models.Session) error {
	entries, err := a.reporting.ClassView(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.renderClass(entries)
	return nil
}

func (a *App) renderClass(entries []*models.ClassEntry) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tCLASS\tSCORE")
	for _, e := range entries {
		score := noGrade
		if e.Score != nil {
			score = strconv.FormatFloat(*e.Score, 'f', -1, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.EnrollmentCode, e.StudentName, e.ClassSection, score)
	}
	w.Flush()
}

func (a *App) recordGrade(ctx context.Context, sess models.Session) error {
	profile, err := a.reporting.TeacherProfile(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}
	entries, err := a.reporting.ClassView(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.renderClass(entries)

	code, err := GetSimpleText(a.reader, "Enrollment code", a.out)
	if err != nil {
		return err
	}
	var studentID string
	for _, e := range entries {
		if e.EnrollmentCode == code {
			studentID = e.StudentID
			break
		}
	}
	if studentID == "" {
		fmt.Fprintln(a.out, "Record not found.")
		return nil
	}

	raw, err := GetSimpleText(a.reader, fmt.Sprintf("Score in %s (%v-%v)", profile.Subject, models.ScoreMin, models.ScoreMax), a.out)
	if err != nil {
		return err
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Score must be between %v and %v.\n", models.ScoreMin, models.ScoreMax)
		return nil
	}

	if err := a.ledger.RecordGrade(ctx, sess, studentID, profile.Subject, score, profile.ID); err != nil {
		a.printError(err)
		return nil
	}
	fmt.Fprintln(a.out, "Grade recorded.")
	return nil
}
