// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import "strings"

const cleanTreeLine = "nothing to commit, working tree clean"

// workingTreeClean reports whether git status output ends with the clean
// working tree sentence. Anything else, including the "nothing added to
// commit" variants, counts as dirty.
func workingTreeClean(statusOut string) bool {
	out := strings.TrimRight(statusOut, "\r\n")
	last := out
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		last = out[i+1:]
	}
	return strings.TrimSuffix(last, "\r") == cleanTreeLine
}

func newRepoStatus(branches []Branch, current string, clean, stashed bool) *RepoStatus {
	noUnpushed := true
	for _, b := range branches {
		if b.Ahead > 0 {
			noUnpushed = false
			break
		}
	}
	return &RepoStatus{
		CurrentBranch:     current,
		Branches:          branches,
		CleanWorkingTree:  clean,
		NoUnpushedCommits: noUnpushed,
		NoStashedChanges:  !stashed,
	}
}

// HasIssues reports whether the working copy has uncommitted changes,
// unpushed commits or stashed changes.
func (r *RepoStatus) HasIssues() bool {
	return !(r.CleanWorkingTree && r.NoUnpushedCommits && r.NoStashedChanges)
}
