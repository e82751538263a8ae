// Package capture runs the documented tool and captures what it prints.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/moorara/helpsync/pkg/log"
)

// ErrCommandFailure is returned when the tool cannot be run or exits unsuccessfully.
var ErrCommandFailure = errors.New("command failure")

// CommandError describes a failed invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrCommandFailure, strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

// Is makes errors.Is(err, ErrCommandFailure) true.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailure
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Capturer runs the documented tool with the given arguments and returns its standard output.
type Capturer interface {
	Capture(ctx context.Context, args ...string) (string, error)
}

// Exec implements the Capturer interface by running an executable.
type Exec struct {
	logger log.Logger
	name   string
	args   []string
	dir    string
}

// NewExec creates a new Capturer for an executable.
// args are prepended to the arguments of every capture (e.g. cargo run --).
// An empty dir means the current directory.
func NewExec(logger log.Logger, dir, name string, args ...string) *Exec {
	return &Exec{
		logger: logger,
		name:   name,
		args:   args,
		dir:    dir,
	}
}

// Capture runs the executable and blocks until it exits.
func (e *Exec) Capture(ctx context.Context, args ...string) (string, error) {
	all := append(append([]string{}, e.args...), args...)
	e.logger.Debugf("Running %s %s ...", e.name, strings.Join(all, " "))

	cmd := exec.CommandContext(ctx, e.name, all...)
	cmd.Dir = e.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   append([]string{e.name}, all...),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	e.logger.Debugf("Captured %d bytes from %s", stdout.Len(), e.name)

	return stdout.String(), nil
}

// ParseVersion extracts the version token from the output of a version command.
// The token is the last whitespace-separated field, as in "lychee 0.13.0".
func ParseVersion(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty version output", ErrCommandFailure)
	}

	return fields[len(fields)-1], nil
}
