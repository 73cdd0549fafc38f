// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

// Include reports whether s should be reported in mode m.
// Directories that are not git working copies have no health to judge
// and are only included in ModeAll.
func (m Mode) Include(s Status) bool {
	if m == ModeAll {
		return true
	}
	if !s.IsRepository() {
		return false
	}
	return s.Repo.HasIssues() == (m == ModeIssues)
}
