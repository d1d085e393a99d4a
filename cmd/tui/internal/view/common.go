package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all console screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	_ View = OutflowsModel{}
	_ View = InflowsModel{}
	_ View = ReportModel{}
	_ View = ImportModel{}
)
