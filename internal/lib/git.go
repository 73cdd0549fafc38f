// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	exitNotARepository = 128
	exitNoStash        = 1
)

var gitConfig = []string{
	"-c", "color.ui=false",
	"-c", "color.branch=false",
	"-c", "color.status=false",
	"-c", "column.ui=never",
	"-c", "status.short=false",
}

type runResult struct {
	stdout   string
	stderr   string
	exitCode int
}

type runner interface {
	run(ctx context.Context, dir string, args ...string) (runResult, error)
}

type execRunner struct {
	env []string
	log logrus.FieldLogger
}

func newExecRunner(root string, log logrus.FieldLogger) *execRunner {
	return &execRunner{
		env: []string{
			"LC_ALL=C",
			"GIT_CEILING_DIRECTORIES=" + root,
			"GIT_OPTIONAL_LOCKS=0",
			"GIT_TERMINAL_PROMPT=0",
		},
		log: log,
	}
}

func (r *execRunner) run(ctx context.Context, dir string, args ...string) (runResult, error) {
	r.log.WithFields(logrus.Fields{"dir": dir, "args": strings.Join(args, " ")}).Debug("git")

	cmd := exec.CommandContext(ctx, "git", append(append([]string{}, gitConfig...), args...)...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), r.env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return runResult{}, ctx.Err()
	}
	res := runResult{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return runResult{}, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		res.exitCode = exitErr.ExitCode()
	}
	return res, nil
}

type Repo struct {
	Path string
	git  runner
}

func (r Repo) toolError(res runResult, args []string) error {
	return &ToolError{Dir: r.Path, Args: args, ExitCode: res.exitCode, Stderr: res.stderr}
}

// Status runs git status. ok is false when Path is not a working copy.
func (r Repo) Status(ctx context.Context) (out string, ok bool, err error) {
	args := []string{"status"}
	res, err := r.git.run(ctx, r.Path, args...)
	if err != nil {
		return "", false, err
	}
	switch res.exitCode {
	case 0:
		return res.stdout, true, nil
	case exitNotARepository:
		return "", false, nil
	}
	return "", false, r.toolError(res, args)
}

func (r Repo) Branches(ctx context.Context) (string, error) {
	args := []string{"branch", "-vv"}
	res, err := r.git.run(ctx, r.Path, args...)
	if err != nil {
		return "", err
	}
	if res.exitCode != 0 {
		return "", r.toolError(res, args)
	}
	return res.stdout, nil
}

func (r Repo) HasStash(ctx context.Context) (bool, error) {
	args := []string{"stash", "show"}
	res, err := r.git.run(ctx, r.Path, args...)
	if err != nil {
		return false, err
	}
	switch res.exitCode {
	case 0:
		return true, nil
	case exitNoStash:
		return false, nil
	}
	return false, r.toolError(res, args)
}
