// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Scanner struct {
	Jobs int // directories checked in parallel; below 2 is sequential
	Log  logrus.FieldLogger

	git runner
}

// Check scans cfg.Root and writes the selected directories to out.
// Directories that could not be checked are logged and skipped.
func Check(ctx context.Context, cfg Config, out io.Writer, log *logrus.Logger) error {
	return check(ctx, cfg, out, log, nil)
}

func check(ctx context.Context, cfg Config, out io.Writer, log *logrus.Logger, git runner) error {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return err
	}
	p, err := newPrinter(out, cfg.Format, cfg.NoColor)
	if err != nil {
		return err
	}

	s := &Scanner{Jobs: cfg.Jobs, Log: log, git: git}
	entries, err := s.Scan(ctx, root)
	if err != nil {
		if errors.Is(err, ErrNoSubdirectories) {
			log.WithField("dir", root).Warn("could not find any directories to check")
			return nil
		}
		return err
	}

	for e := range entries {
		if e.Err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fields := logrus.Fields{"dir": e.Path}
			var toolErr *ToolError
			if errors.As(e.Err, &toolErr) {
				fields["exit_code"] = toolErr.ExitCode
			}
			log.WithFields(fields).Warnf("skipping directory: %v", e.Err)
			continue
		}
		if !cfg.Mode.Include(e.Status) {
			continue
		}
		if err := p.Print(e.Status); err != nil {
			return err
		}
	}
	return p.Close()
}

// Scan lists the subdirectories of root and returns a sequence that
// checks them in listing order. Entries for directories that could not be
// checked carry the error instead of a Status.
func (s *Scanner) Scan(ctx context.Context, root string) (iter.Seq[Entry], error) {
	dirs, err := listDirs(root)
	if err != nil {
		return nil, err
	}
	git := s.git
	if git == nil {
		log := s.Log
		if log == nil {
			log = logrus.StandardLogger()
		}
		git = newExecRunner(root, log)
	}

	if s.Jobs < 2 {
		return func(yield func(Entry) bool) {
			for _, dir := range dirs {
				if !yield(checkDir(ctx, Repo{Path: dir, git: git})) {
					return
				}
			}
		}, nil
	}

	return func(yield func(Entry) bool) {
		entries := make([]Entry, len(dirs))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.Jobs)
		for i, dir := range dirs {
			g.Go(func() error {
				entries[i] = checkDir(gctx, Repo{Path: dir, git: git})
				return nil
			})
		}
		_ = g.Wait()
		for _, e := range entries {
			if !yield(e) {
				return
			}
		}
	}, nil
}

func checkDir(ctx context.Context, repo Repo) Entry {
	e := Entry{Path: repo.Path, Status: Status{Path: repo.Path}}
	fail := func(err error) Entry {
		return Entry{Path: repo.Path, Err: err}
	}

	statusOut, ok, err := repo.Status(ctx)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return e
	}

	branchOut, err := repo.Branches(ctx)
	if err != nil {
		return fail(err)
	}
	branches, current, err := parseBranches(branchOut)
	if err != nil {
		return fail(err)
	}

	stashed, err := repo.HasStash(ctx)
	if err != nil {
		return fail(err)
	}

	e.Status.Repo = newRepoStatus(branches, current, workingTreeClean(statusOut), stashed)
	return e
}

func listDirs(root string) ([]string, error) {
	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: unable to find '%s'", ErrDirectoryNotFound, root)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if fi, err := os.Stat(path); err == nil {
				isDir = fi.IsDir()
			}
		}
		if isDir {
			dirs = append(dirs, path)
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSubdirectories, root)
	}
	return dirs, nil
}
