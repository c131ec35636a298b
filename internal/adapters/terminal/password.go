package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PasswordEnvVar lets scripted logins supply the password without a TTY.
const PasswordEnvVar = "NOCKPOINT_PASSWORD"

// ErrNonInteractive is returned when no password source is available.
var ErrNonInteractive = errors.New("cannot read password: non-interactive terminal")

// Adapter handles secure password input from terminal.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
	getenv func(string) string
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
		getenv: os.Getenv,
	}
}

// ReadPassword reads a password from the terminal with echo disabled.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if envPassword := a.getenv(PasswordEnvVar); envPassword != "" {
		return envPassword, nil
	}

	if !a.IsInteractive() {
		return "", ErrNonInteractive
	}

	fmt.Fprint(a.stderr, prompt)

	file, _ := a.stdin.(*os.File)
	password, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(a.stderr) // Print newline after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
