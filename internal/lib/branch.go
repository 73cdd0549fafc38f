// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"bufio"
	"strconv"
	"strings"
)

// A git branch -vv line is
//
//	<marker><space><name> <hash> [(<worktree>)] [[<upstream>[: <track>, ...]]] <subject>
//
// where marker is '*' for the checked out branch, '+' for a branch checked
// out in another worktree and ' ' otherwise.
type branchLine struct {
	branch   Branch
	current  bool
	detached bool
}

// parseBranches parses the output of git branch -vv. current is empty when
// HEAD is detached or there are no branches yet.
func parseBranches(out string) (branches []Branch, current string, err error) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		bl, err := parseBranchLine(line)
		if err != nil {
			return nil, "", err
		}
		if bl.detached {
			continue
		}
		if bl.current {
			if current != "" {
				return nil, "", &BranchLineError{Line: line, Reason: "second current branch"}
			}
			current = bl.branch.Name
		}
		branches = append(branches, bl.branch)
	}
	return branches, current, sc.Err()
}

func parseBranchLine(line string) (branchLine, error) {
	var bl branchLine
	fail := func(reason string) (branchLine, error) {
		return branchLine{}, &BranchLineError{Line: line, Reason: reason}
	}

	if len(line) < 3 || line[1] != ' ' {
		return fail("missing marker column")
	}
	marker := line[0]
	switch marker {
	case '*':
		bl.current = true
	case ' ', '+':
	default:
		return fail("unknown marker " + strconv.Quote(string(marker)))
	}
	rest := line[2:]

	if strings.HasPrefix(rest, "(") {
		// (HEAD detached at 1a2b3c4) or (no branch, rebasing main).
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return fail("unterminated detached HEAD description")
		}
		rest = rest[end+1:]
		bl.detached = true
	} else {
		bl.branch.Name, rest = cutToken(rest)
		if bl.branch.Name == "" {
			return fail("missing branch name")
		}
	}

	hash, rest := cutToken(strings.TrimLeft(rest, " "))
	if !isAbbrevHash(hash) {
		return fail("missing commit hash")
	}
	if bl.detached {
		return bl, nil
	}
	rest = strings.TrimLeft(rest, " ")

	if marker == '+' && strings.HasPrefix(rest, "(") {
		if end := strings.IndexByte(rest, ')'); end >= 0 {
			rest = strings.TrimLeft(rest[end+1:], " ")
		}
	}

	if !strings.HasPrefix(rest, "[") {
		return bl, nil
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		// A subject starting with '['.
		return bl, nil
	}
	// Bracket content that is not tracking info belongs to the subject.
	if upstream, ahead, behind, ok := parseTracking(rest[1:end]); ok {
		bl.branch.Upstream, bl.branch.Ahead, bl.branch.Behind = upstream, ahead, behind
	}
	return bl, nil
}

// parseTracking parses "origin/main: ahead 2, behind 1".
func parseTracking(s string) (upstream string, ahead, behind int, ok bool) {
	upstream, track, _ := strings.Cut(s, ":")
	if upstream == "" || strings.ContainsAny(upstream, " \t") {
		return "", 0, 0, false
	}
	for _, part := range strings.Split(track, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "", part == "gone":
		case strings.HasPrefix(part, "ahead "):
			if ahead, ok = parseCount(strings.TrimPrefix(part, "ahead ")); !ok {
				return "", 0, 0, false
			}
		case strings.HasPrefix(part, "behind "):
			if behind, ok = parseCount(strings.TrimPrefix(part, "behind ")); !ok {
				return "", 0, 0, false
			}
		default:
			return "", 0, 0, false
		}
	}
	return upstream, ahead, behind, true
}

func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n >= 0
}

// cutToken splits s at the first space.
func cutToken(s string) (tok, rest string) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// isAbbrevHash reports whether s looks like an abbreviated object name.
// git never abbreviates below 4 hex digits.
func isAbbrevHash(s string) bool {
	if len(s) < 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
