// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDirectoryNotFound    = errors.New("directory not found")
	ErrNoSubdirectories     = errors.New("no directories to check")
	ErrUsage                = errors.New("usage error")
	ErrUnparsableBranchLine = errors.New("unparsable branch line")
)

// ToolError is returned when a git query exits with a code that has no
// documented meaning for that query.
type ToolError struct {
	Dir      string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("git %s: exit status %d in %s", strings.Join(e.Args, " "), e.ExitCode, e.Dir)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// BranchLineError describes a line of git branch -vv output that does not
// have the expected shape.
type BranchLineError struct {
	Line   string
	Reason string
}

func (e *BranchLineError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrUnparsableBranchLine, e.Reason, e.Line)
}

func (e *BranchLineError) Unwrap() error {
	return ErrUnparsableBranchLine
}
