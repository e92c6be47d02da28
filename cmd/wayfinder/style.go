package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/route"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	routeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
	failStyle = routeStyle.BorderForeground(lipgloss.Color("9"))
)

func renderRoute(res *route.Result) string {
	if !res.Success {
		return failStyle.Render(errStyle.Render(res.Description))
	}
	return routeStyle.Render(res.Description)
}

func renderLevels(locs []core.Location) string {
	byLevel := core.GroupByLevel(locs)
	levels := make([]int, 0, len(byLevel))
	for lv := range byLevel {
		levels = append(levels, lv)
	}
	sort.Ints(levels)

	var b strings.Builder
	for _, lv := range levels {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d", lv)))
		b.WriteByte('\n')
		for _, loc := range byLevel[lv] {
			b.WriteString(renderLocation(loc))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderLocation(loc core.Location) string {
	line := fmt.Sprintf("  %-8s %s", loc.ID, loc.DisplayName())
	if loc.Category != "" {
		line += " " + dimStyle.Render("("+loc.Category+")")
	}
	return line
}

func renderStats(st core.Stats, islands [][]string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Building"))
	fmt.Fprintf(&b, "\n  locations:   %d\n  connections: %d\n  levels:      %v\n", st.Locations, st.Connections, st.Levels)

	cats := make([]string, 0, len(st.Categories))
	for c := range st.Categories {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		name := c
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(&b, "  %-12s %d\n", name+":", st.Categories[c])
	}

	fmt.Fprintf(&b, "  islands:     %d\n", len(islands))
	for _, isl := range islands[min(1, len(islands)):] {
		b.WriteString(errStyle.Render(fmt.Sprintf("  not connected to the main building: %s", strings.Join(isl, ", "))))
		b.WriteByte('\n')
	}
	return b.String()
}
