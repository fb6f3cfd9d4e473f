package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/services"
)

const secretariatPrompt = `[1] register student
[2] register teacher
[3] roster
[4] delete student
[5] delete teacher
[0] logout`

func (a *App) secretariatMenu(ctx context.Context, sess models.Session) error {
	for {
		choice, err := GetSimpleText(a.reader, secretariatPrompt, a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.registerStudent(ctx, sess)
		case "2":
			err = a.registerTeacher(ctx, sess)
		case "3":
			err = a.showRoster(ctx, sess)
		case "4":
			err = a.deleteStudent(ctx, sess)
		case "5":
			err = a.deleteTeacher(ctx, sess)
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

func (a *App) registerStudent(ctx context.Context, sess models.Session) error {
	var in services.NewStudent
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Student name", &in.Name},
		{"Class section", &in.ClassSection},
		{"Username", &in.Username},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = password

	code, err := a.registrar.RegisterStudent(ctx, sess, in)
	if err != nil {
		a.printError(err)
		return nil
	}
	fmt.Fprintf(a.out, "Student registered with enrollment code %s\n", code)
	return nil
}

func (a *App) registerTeacher(ctx context.Context, sess models.Session) error {
	var in services.NewTeacher
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Teacher name", &in.Name},
		{"Subject", &in.Subject},
		{"Username", &in.Username},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = password

	code, err := a.registrar.RegisterTeacher(ctx, sess, in)
	if err != nil {
		a.printError(err)
		return nil
	}
	fmt.Fprintf(a.out, "Teacher registered with code %s\n", code)
	return nil
}

func (a *App) showRoster(ctx context.Context, sess models.Session) error {
	roster, err := a.reporting.Roster(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}

	fmt.Fprintln(a.out, "Students:")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tCLASS")
	for _, s := range roster.Students {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.EnrollmentCode, s.Name, s.ClassSection)
	}
	w.Flush()

	fmt.Fprintln(a.out, "Teachers:")
	w = tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tSUBJECT")
	for _, t := range roster.Teachers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.TeacherCode, t.Name, t.Subject)
	}
	return w.Flush()
}

func (a *App) deleteStudent(ctx context.Context, sess models.Session) error {
	code, err := GetSimpleText(a.reader, "Enrollment code to delete", a.out)
	if err != nil {
		return err
	}

	roster, err := a.reporting.Roster(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}
	for _, s := range roster.Students {
		if s.EnrollmentCode == code {
			if err := a.registrar.DeleteStudent(ctx, sess, s.ID); err != nil {
				a.printError(err)
				return nil
			}
			fmt.Fprintln(a.out, "Student deleted.")
			return nil
		}
	}
	fmt.Fprintln(a.out, "Record not found.")
	return nil
}

func (a *App) deleteTeacher(ctx context.Context, sess models.Session) error {
	code, err := GetSimpleText(a.reader, "Teacher code to delete", a.out)
	if err != nil {
		return err
	}

	roster, err := a.reporting.Roster(ctx, sess)
	if err != nil {
		a.printError(err)
		return nil
	}
	for _, t := range roster.Teachers {
		if t.TeacherCode == code {
			if err := a.registrar.DeleteTeacher(ctx, sess, t.ID); err != nil {
				a.printError(err)
				return nil
			}
			fmt.Fprintln(a.out, "Teacher deleted.")
			return nil
		}
	}
	fmt.Fprintln(a.out, "Record not found.")
	return nil
}
