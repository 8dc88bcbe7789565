// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	yaml "gopkg.in/yaml.v2"

	"github.com/runctl/runctl/internal/target"
)

// View is the serializable shape of a target for json/yaml output.
type View struct {
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Usage    string   `json:"usage,omitempty" yaml:"usage,omitempty"`
	Guards   []string `json:"guards,omitempty" yaml:"guards,omitempty"`
	Steps    []string `json:"steps" yaml:"steps"`
}

// NewView flattens a target into its output shape.
func NewView(t target.Target) View {
	steps := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		steps = append(steps, s.Template)
	}
	return View{
		Name:     t.Name,
		Category: t.Category,
		Usage:    t.Usage,
		Guards:   t.Guards,
		Steps:    steps,
	}
}

// Views flattens a slice of targets.
func Views(targets []target.Target) []View {
	views := make([]View, 0, len(targets))
	for _, t := range targets {
		views = append(views, NewView(t))
	}
	return views
}

// Listing writes the registry grouped by category label, one table per
// group: target name, guarded variables, one-line usage.
func Listing(w io.Writer, reg *target.Registry, colored bool) {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)

	if colored {
		headerStyle = headerStyle.Foreground(lipgloss.Color("6"))
	}

	for _, category := range reg.Categories() {
		fmt.Fprintln(w, headerStyle.Render(category))

		var rows [][]string
		for _, t := range reg.ByCategory(category) {
			rows = append(rows, []string{t.Name, strings.Join(t.Guards, ","), t.Usage})
		}

		t := table.New().
			BorderBottom(false).
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false).
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := cellStyle
				if col > 0 {
					style = style.PaddingLeft(2)
				}
				return style
			}).
			Rows(rows...)
		fmt.Fprintln(w, t)
	}
}

// EmitJSON writes v as indented JSON.
func EmitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EmitYAML writes v as YAML.
func EmitYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
