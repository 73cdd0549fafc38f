// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import "fmt"

type Config struct {
	Root    string
	Mode    Mode
	Format  string // text or yaml
	Jobs    int
	NoColor bool
	Quiet   bool
	Verbose bool
}

type Mode int

const (
	ModeHealthy Mode = iota
	ModeIssues
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModeHealthy:
		return "healthy"
	case ModeIssues:
		return "issues"
	case ModeAll:
		return "all"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ModeFromFlags(all, invert bool) (Mode, error) {
	switch {
	case all && invert:
		return 0, fmt.Errorf("%w: --all and --invert cannot be combined", ErrUsage)
	case all:
		return ModeAll, nil
	case invert:
		return ModeIssues, nil
	}
	return ModeHealthy, nil
}

type Branch struct {
	Name     string `yaml:"name"`
	Upstream string `yaml:"upstream,omitempty"` // empty when no tracking branch is set
	Ahead    int    `yaml:"ahead"`
	Behind   int    `yaml:"behind"`
}

func (b Branch) String() string {
	s := b.Name
	if b.Upstream != "" {
		s += " -> " + b.Upstream
	}
	if b.Ahead != 0 {
		s += fmt.Sprintf(" ahead %d", b.Ahead)
	}
	if b.Behind != 0 {
		s += fmt.Sprintf(" behind %d", b.Behind)
	}
	return s
}

// RepoStatus holds the health of a git working copy.
// Build it with newRepoStatus; it is not modified afterwards.
type RepoStatus struct {
	CurrentBranch     string   `yaml:"current_branch,omitempty"` // empty on a detached HEAD
	Branches          []Branch `yaml:"branches"`
	CleanWorkingTree  bool     `yaml:"clean_working_tree"`
	NoUnpushedCommits bool     `yaml:"no_unpushed_commits"`
	NoStashedChanges  bool     `yaml:"no_stashed_changes"`
}

// Status is the result of checking one directory.
type Status struct {
	Path string

	// Repo is nil when Path is not a git working copy.
	Repo *RepoStatus
}

func (s Status) IsRepository() bool {
	return s.Repo != nil
}

type Entry struct {
	Path   string
	Status Status
	Err    error
}
