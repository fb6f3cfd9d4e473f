// Package cli implements the console frontend of Gradekeeper: a login loop
// and one menu per role. It owns all transient input state and only ever
// calls the typed service operations; every result or error it shows comes
// back from a service.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/logging"
	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/services"
)

type App struct {
	auth      *services.AuthService
	registrar *services.RegistrationService
	ledger    *services.LedgerService
	reporting *services.ReportingService
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// NewApp constructs the console frontend reading from stdin and writing to
// stdout.
func NewApp(auth *services.AuthService, registrar *services.RegistrationService, ledger *services.LedgerService, reporting *services.ReportingService, log logging.Logger) *App {
	return &App{
		auth:      auth,
		registrar: registrar,
		ledger:    ledger,
		reporting: reporting,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// Run drives the login loop until the user exits or input ends. A logout
// from any role menu returns here.
func (a *App) Run(ctx context.Context) error {
	for {
		username, err := GetSimpleText(a.reader, "Username (empty to exit)", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if username == "" {
			return nil
		}

		password, err := GetPassword(a.out)
		if err != nil {
			return err
		}

		sess, err := a.auth.Authenticate(ctx, username, password)
		if err != nil {
			a.printError(err)
			continue
		}

		fmt.Fprintf(a.out, "welcome %s\n", strings.ToUpper(string(sess.Role)))

		switch {
		case sess.IsSecretariat():
			err = a.secretariatMenu(ctx, *sess)
		case sess.IsTeacher():
			err = a.teacherMenu(ctx, *sess)
		case sess.IsStudent():
			err = a.studentMenu(ctx, *sess)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// printError renders a service error in user terms. Unexpected errors are
// logged and shown generically.
func (a *App) printError(err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid username or password.")
	case errors.Is(err, common.ErrDuplicateUsername):
		fmt.Fprintln(a.out, "That username is already taken.")
	case errors.Is(err, common.ErrDuplicateIdentifier):
		fmt.Fprintln(a.out, "That identifier is already assigned.")
	case errors.Is(err, common.ErrInvalidScore):
		fmt.Fprintf(a.out, "Score must be between %v and %v.\n", models.ScoreMin, models.ScoreMax)
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "Record not found.")
	case errors.Is(err, common.ErrUnauthorized):
		fmt.Fprintln(a.out, "You are not allowed to do that.")
	default:
		a.log.Error(context.Background(), "operation failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, try again.")
	}
}
