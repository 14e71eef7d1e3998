package ui

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/byterings/hugoctl/internal/inventory"
)

// PrintThemesTable renders theme records as a table
func PrintThemesTable(themes []inventory.Theme) {
	if len(themes) == 0 {
		fmt.Println("No themes in inventory yet.")
		fmt.Println("\nScan your themes directory with: hugoctl sync")
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"KEY", "NAME", "STATUS", "ADDED", "DESCRIPTION"})
	for _, th := range themes {
		t.AppendRow(table.Row{
			th.Key,
			th.Name,
			themeStatus(th),
			th.AddedAt.Format("2006-01-02"),
			truncate(th.Description, 48),
		})
	}
	t.Render()
}

// PrintSitesTable renders site records as a table
func PrintSitesTable(sites []inventory.Site) {
	if len(sites) == 0 {
		fmt.Println("No sites yet.")
		fmt.Println("\nCreate your first site with: hugoctl sites new")
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"SLUG", "TITLE", "THEME", "BASE URL", "STATUS"})
	for _, s := range sites {
		t.AppendRow(table.Row{s.Slug, s.Title, s.Theme, s.BaseURL, siteStatus(s)})
	}
	t.Render()
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}

func themeStatus(t inventory.Theme) string {
	if t.Active {
		return "active"
	}
	return "inactive"
}

func siteStatus(s inventory.Site) string {
	switch {
	case s.Archived:
		return "archived"
	case s.HasUnpublishedChanges():
		return "draft"
	default:
		return "published"
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
