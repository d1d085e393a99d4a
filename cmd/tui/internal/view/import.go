package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/tabular"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

const sheetLoadTimeout = 2 * time.Minute

type importStage int

const (
	stageSheet importStage = iota
	stageFile
	stageLoading
	stageDone
)

// Sheet is a kind of CSV the console can import.
type Sheet string

const (
	SheetCategories   Sheet = "Categories"
	SheetDestinations Sheet = "Destinations"
	SheetWishlist     Sheet = "Wishlist"
)

type ImportModel struct {
	catalogSvc  *catalog.Service
	wishlistSvc *wishlist.Service

	state         importStage
	filePicker    filepicker.Model
	selectedSheet Sheet
	sheetOptions  []Sheet
	sheetCursor   int

	status string
	err    error
}

func NewImportModel(catalogSvc *catalog.Service, wishlistSvc *wishlist.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		catalogSvc:   catalogSvc,
		wishlistSvc:  wishlistSvc,
		filePicker:   fp,
		sheetOptions: []Sheet{SheetCategories, SheetDestinations, SheetWishlist},
	}
}

func (m ImportModel) Title() string     { return "Import CSV" }
func (m ImportModel) ShortHelp() string { return "Esc: back | Enter: select" }

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == stageSheet {
			return m.updateSheetSelect(msg)
		}

	case sheetImportedMsg:
		m.state = stageDone
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Import failed: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d %s.", msg.count, m.selectedSheet)

		return m, nil
	}

	if m.state != stageFile {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = stageLoading
		m.status = fmt.Sprintf("Loading %s into %s...", filepath.Base(path), m.selectedSheet)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case stageFile, stageDone:
		m.state = stageSheet
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateSheetSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.sheetCursor > 0 {
			m.sheetCursor--
		}
	case tea.KeyDown:
		if m.sheetCursor < len(m.sheetOptions)-1 {
			m.sheetCursor++
		}
	case tea.KeyEnter:
		m.selectedSheet = m.sheetOptions[m.sheetCursor]
		m.state = stageFile

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case stageSheet:
		s := "Select what to import:\n\n"

		for i, sheet := range m.sheetOptions {
			cursor := " "
			if i == m.sheetCursor {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, sheet)
		}

		return lipgloss.NewStyle().Padding(2).Render(s)
	case stageFile:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select CSV file (%s):\n\n%s", m.selectedSheet, m.filePicker.View()),
		)
	case stageLoading:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case stageDone:
		status := okStyle(m.status)
		if m.err != nil {
			status = errorStyle(m.status)
		}

		return lipgloss.NewStyle().Padding(2).Render(status + "\n\n(Esc to go back)")
	}

	return ""
}

// Messages

type sheetImportedMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	sheet := m.selectedSheet

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return sheetImportedMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), sheetLoadTimeout)
		defer cancel()

		count, err := m.importSheet(ctx, sheet, f)

		return sheetImportedMsg{count: count, err: err}
	}
}

func (m ImportModel) importSheet(ctx context.Context, sheet Sheet, f *os.File) (int, error) {
	switch sheet {
	case SheetCategories:
		rows, err := tabular.ParseCategories(f)
		if err != nil {
			return 0, err
		}

		cats, err := m.catalogSvc.ImportCategories(ctx, rows)

		return len(cats), err
	case SheetDestinations:
		rows, err := tabular.ParseDestinations(f)
		if err != nil {
			return 0, err
		}

		dests, err := m.catalogSvc.ImportDestinations(ctx, rows)

		return len(dests), err
	case SheetWishlist:
		rows, err := tabular.ParseWishlist(f)
		if err != nil {
			return 0, err
		}

		items, err := m.wishlistSvc.Import(ctx, rows)

		return len(items), err
	}

	return 0, fmt.Errorf("unknown sheet %q", sheet)
}
