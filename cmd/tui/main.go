package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/midas/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/midas/internal/app"
	"github.com/MrJamesThe3rd/midas/internal/config"
)

type model struct {
	app *app.App

	currentView View

	outflowsView view.OutflowsModel
	inflowsView  view.InflowsModel
	reportView   view.ReportModel
	importView   view.ImportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewOutflows View = 1
	ViewInflows  View = 2
	ViewReport   View = 3
	ViewImport   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	return model{
		app:         a,
		currentView: ViewMenu,
		importView:  view.NewImportModel(a.Catalog, a.Wishlist),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewOutflows
				m.outflowsView = view.NewOutflowsModel(m.app.Ledger)

				return m, m.outflowsView.Init()
			case "2":
				m.currentView = ViewInflows
				m.inflowsView = view.NewInflowsModel(m.app.Ledger)

				return m, m.inflowsView.Init()
			case "3":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.app.Reports, view.ThisMonth(m.app.Ledger.Today()))

				return m, m.reportView.Init()
			case "4":
				m.currentView = ViewImport
				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewOutflows:
		var newModel tea.Model
		newModel, cmd = m.outflowsView.Update(msg)
		m.outflowsView = newModel.(view.OutflowsModel)
	case ViewInflows:
		var newModel tea.Model
		newModel, cmd = m.inflowsView.Update(msg)
		m.inflowsView = newModel.(view.InflowsModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.app.Config.App.Name + " back-office\n\n" +
				"1. Outflows\n" +
				"2. Inflows\n" +
				"3. Monthly Report\n" +
				"4. Import CSV\n\n" +
				"q. Quit",
		)
	case ViewOutflows:
		return m.outflowsView.View()
	case ViewInflows:
		return m.inflowsView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	m := initialModel()
	defer m.app.Close()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
