// Package recorder drives `playwright codegen` and returns the script it
// recorded.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNothingRecorded is returned when codegen exits without writing any code.
var ErrNothingRecorded = errors.New("no code was recorded, perform some interactions before closing the browser")

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, forwarding their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// Recorder launches codegen for one browser and optional start URL.
type Recorder struct {
	Runner     Runner
	Playwright string // executable, "playwright" when empty
	Browser    string
	URL        string

	// Started, if set, is called with the full command line before codegen runs.
	Started func(command []string)
}

// Command returns the codegen invocation that writes to outputPath.
func (r *Recorder) Command(outputPath string) []string {
	exe := r.Playwright
	if exe == "" {
		exe = "playwright"
	}
	cmd := []string{exe, "codegen", "--target", "python", "-b", r.Browser, "-o", outputPath}
	if r.URL != "" {
		cmd = append(cmd, r.URL)
	}
	return cmd
}

// Record runs codegen into a temporary file and returns its contents. The
// temporary file is removed before Record returns.
func (r *Recorder) Record(ctx context.Context) (string, error) {
	tmp, err := os.CreateTemp("", "rfrecord-*.py")
	if err != nil {
		return "", fmt.Errorf("creating temporary script: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	command := r.Command(tmpPath)
	if r.Started != nil {
		r.Started(command)
	}

	runner := r.Runner
	if runner == nil {
		runner = ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	}
	if err := runner.Run(ctx, command[0], command[1:]...); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("reading recorded script: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", ErrNothingRecorded
	}
	return string(data), nil
}
