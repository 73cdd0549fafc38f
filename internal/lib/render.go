// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package lib

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type printer interface {
	Print(s Status) error
	Close() error
}

func newPrinter(w io.Writer, format string, noColor bool) (printer, error) {
	switch format {
	case "", FormatText:
		return newTextPrinter(w, noColor), nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlPrinter{enc: enc}, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrUsage, format)
}

type textPrinter struct {
	w io.Writer

	label  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	branch lipgloss.Style
	plain  lipgloss.Style
}

func newTextPrinter(w io.Writer, noColor bool) *textPrinter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &textPrinter{
		w:      w,
		label:  r.NewStyle().Foreground(lipgloss.Color("8")),
		good:   r.NewStyle().Foreground(lipgloss.Color("2")),
		bad:    r.NewStyle().Foreground(lipgloss.Color("1")),
		branch: r.NewStyle().Foreground(lipgloss.Color("6")),
		plain:  r.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

func (p *textPrinter) boolean(b bool) string {
	if b {
		return p.good.Render(strconv.FormatBool(b))
	}
	return p.bad.Render(strconv.FormatBool(b))
}

func (p *textPrinter) field(name, value string) {
	if value == "" {
		fmt.Fprintf(p.w, " %s\n", p.label.Render(name+":"))
		return
	}
	fmt.Fprintf(p.w, " %s %s\n", p.label.Render(name+":"), value)
}

func (p *textPrinter) Print(s Status) error {
	fmt.Fprintln(p.w, s.Path)
	p.field("Is git repo", p.boolean(s.IsRepository()))
	if r := s.Repo; r != nil {
		current := p.bad.Render("(none)")
		if r.CurrentBranch != "" {
			current = p.branch.Render(r.CurrentBranch)
		}
		p.field("Current branch", current)
		p.field("Branches", "")
		for _, b := range r.Branches {
			fmt.Fprintf(p.w, "  %s\n", p.plain.Render(b.String()))
		}
		p.field("No uncommitted changes", p.boolean(r.CleanWorkingTree))
		p.field("No unpushed commits", p.boolean(r.NoUnpushedCommits))
		p.field("No stashed changes", p.boolean(r.NoStashedChanges))
	}
	_, err := fmt.Fprintln(p.w)
	return err
}

func (p *textPrinter) Close() error { return nil }

type yamlStatus struct {
	Path         string      `yaml:"path"`
	IsRepository bool        `yaml:"is_repository"`
	Repository   *RepoStatus `yaml:"repository,omitempty"`
}

// yamlPrinter writes one YAML document per directory.
type yamlPrinter struct {
	enc *yaml.Encoder
}

func (p *yamlPrinter) Print(s Status) error {
	return p.enc.Encode(yamlStatus{Path: s.Path, IsRepository: s.IsRepository(), Repository: s.Repo})
}

func (p *yamlPrinter) Close() error {
	return p.enc.Close()
}
