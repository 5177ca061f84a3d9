// Package render draws container trees and window placements for the
// terminal.
package render

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"charm.land/lipgloss/v2/tree"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/layout"
)

var (
	rootStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	workspaceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	splitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	windowStyle    = lipgloss.NewStyle()
	focusedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
)

// Label returns the one-line description of c used in tree output.
func Label(c container.Container) string {
	switch v := c.(type) {
	case *container.Root:
		return "root"
	case *container.Workspace:
		return fmt.Sprintf("workspace %s (%s)", v.Name(), v.Orientation())
	case *container.Split:
		return fmt.Sprintf("split %s %.3f", v.Orientation(), v.TilingSize())
	case *container.Window:
		return fmt.Sprintf("%s %.3f", v.Title(), v.TilingSize())
	}
	return c.String()
}

// Tree renders the subtree at c. The focused window is highlighted. Empty
// workspaces are skipped when c is the root, unless it has no windows at
// all.
func Tree(c container.Container, focused *container.Window) string {
	return build(c, focused, true).String()
}

// Plain renders the subtree at c without colour, one node per line.
func Plain(c container.Container) string {
	return build(c, nil, false).String()
}

func build(c container.Container, focused *container.Window, styled bool) *tree.Tree {
	enumStyle := lipgloss.NewStyle().PaddingRight(1)
	if styled {
		enumStyle = dimStyle.PaddingRight(1)
	}
	t := tree.Root(styleFor(c, focused, styled).Render(Label(c))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)

	hideEmpty := c.Kind() == container.KindRoot && len(container.Windows(c)) > 0
	for _, child := range c.Children() {
		if hideEmpty && child.Kind() == container.KindWorkspace && child.ChildCount() == 0 {
			continue
		}
		if child.ChildCount() == 0 {
			t.Child(styleFor(child, focused, styled).Render(Label(child)))
			continue
		}
		t.Child(build(child, focused, styled))
	}
	return t
}

func styleFor(c container.Container, focused *container.Window, styled bool) lipgloss.Style {
	if !styled {
		return lipgloss.NewStyle()
	}
	switch c.Kind() {
	case container.KindRoot:
		return rootStyle
	case container.KindWorkspace:
		return workspaceStyle
	case container.KindSplit:
		return splitStyle
	}
	if w, ok := c.(*container.Window); ok && w == focused {
		return focusedStyle
	}
	return windowStyle
}

// Placements renders a table of window rectangles.
func Placements(placements []layout.Placement, focused *container.Window) string {
	rows := make([][]string, 0, len(placements))
	focusedRow := -1
	for i, p := range placements {
		if p.Window == focused {
			focusedRow = i
		}
		rows = append(rows, []string{
			p.Window.Title(),
			strconv.Itoa(p.Rect.X),
			strconv.Itoa(p.Rect.Y),
			strconv.Itoa(p.Rect.Width),
			strconv.Itoa(p.Rect.Height),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Window", "X", "Y", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case focusedRow:
				return cellStyle.Foreground(lipgloss.Color("10"))
			}
			return cellStyle
		})
	return t.Render()
}
