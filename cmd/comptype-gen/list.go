package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/oliverbestmann/comptype/internal/gen"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1).
			Align(lipgloss.Right)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
)

// renderList renders all component types of all packages in the order the
// registry assigns their indices. The indices only hold if the final binary
// links exactly these packages.
func renderList(pkgs []gen.Package) string {
	var names []string
	for _, pkg := range pkgs {
		names = append(names, pkg.QualifiedNames()...)
	}

	slices.SortFunc(names, strings.Compare)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("INDEX", "COMPONENT").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return typeStyle
			}
		})

	for idx, name := range names {
		t.Row(strconv.Itoa(idx), name)
	}

	return t.Render()
}
