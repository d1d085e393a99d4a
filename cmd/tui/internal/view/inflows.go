package view

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/money"
	"github.com/MrJamesThe3rd/midas/internal/page"
)

const formDateLayout = "02/01/2006"

type inflowState int

const (
	inflowStateList inflowState = iota
	inflowStateEditing
)

// inflowItem wraps an inflow to implement list.Item.
type inflowItem struct {
	in *ledger.Inflow
}

func (i inflowItem) Title() string {
	origin := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.in.Origin))
	return fmt.Sprintf("%s  %s  %s", FormatDate(i.in.Date), FormatAmount(i.in.Amount), origin)
}

func (i inflowItem) Description() string { return i.in.Origin.Label() }
func (i inflowItem) FilterValue() string { return i.in.Origin.Label() }

type InflowsModel struct {
	svc *ledger.Service

	state    inflowState
	list     list.Model
	form     *huh.Form
	inflows  []*ledger.Inflow
	selected *ledger.Inflow

	month   Month
	loading bool
	status  string

	// Form field bindings
	formAmount string
	formDate   string
}

func NewInflowsModel(svc *ledger.Service) InflowsModel {
	l := list.New([]list.Item{}, inflowDelegate{}, 0, 0)
	l.Title = "Inflows"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)

	return InflowsModel{
		svc:     svc,
		list:    l,
		month:   ThisMonth(svc.Today()),
		loading: true,
	}
}

func (m InflowsModel) Title() string { return "Inflows" }

func (m InflowsModel) ShortHelp() string {
	if m.state == inflowStateEditing {
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return "Esc: back | Enter: edit | [ ]: month"
}

func (m InflowsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InflowsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInflowsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.inflows = msg.inflows
		m.refreshListItems()

		if len(msg.inflows) == 0 {
			m.status = "No inflows this month."
		}

		return m, nil

	case saveInflowMsg:
		m.state = inflowStateList
		m.form = nil

		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error saving: %v", msg.err))
			return m, nil
		}

		m.status = okStyle("Saved. Linked outflows follow the new date.")

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	if m.state == inflowStateEditing {
		return m.updateEditing(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.month.step(keyMsg.String()) {
			m.loading = true
			m.status = ""

			return m, m.loadCmd()
		}

		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			return m.startEditing()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m InflowsModel) startEditing() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(inflowItem)
	if !ok {
		return m, nil
	}

	m.selected = selected.in
	m.formAmount = selected.in.Amount.StringFixed(2)
	m.formDate = selected.in.Date.Format(formDateLayout)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := money.Parse(s)
					if err != nil || !d.IsPositive() {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date (DD/MM/YYYY)").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(formDateLayout, s); err != nil {
						return fmt.Errorf("use DD/MM/YYYY")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = inflowStateEditing

	return m, m.form.Init()
}

func (m InflowsModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = inflowStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m InflowsModel) View() string {
	if m.state == inflowStateEditing && m.form != nil {
		info := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Render(fmt.Sprintf("Origin: %s  |  Current: %s on %s",
				m.selected.Origin.Label(), FormatAmount(m.selected.Amount), FormatDate(m.selected.Date)))

		return lipgloss.NewStyle().Padding(1).Render(info + "\n" + m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading inflows...")
	}

	header := fmt.Sprintf("Month: %s", activeStyle(m.month.String()))
	if m.status != "" {
		header += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1).Render(header + "\n" + m.list.View())
}

func (m *InflowsModel) refreshListItems() {
	items := make([]list.Item, len(m.inflows))
	for i, in := range m.inflows {
		items[i] = inflowItem{in: in}
	}

	m.list.SetItems(items)
}

// Messages

type loadInflowsMsg struct {
	inflows []*ledger.Inflow
	err     error
}

func (m InflowsModel) loadCmd() tea.Cmd {
	filter := ledger.InflowFilter{
		StartDate: &m.month.Start,
		EndDate:   &m.month.End,
		Page:      page.Request{Number: 1, Size: page.MaxSize},
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		inflows, _, err := m.svc.ListInflows(ctx, filter)

		return loadInflowsMsg{inflows: inflows, err: err}
	}
}

type saveInflowMsg struct {
	err error
}

func (m InflowsModel) saveCmd() tea.Cmd {
	id := m.selected.ID
	rawAmount := m.formAmount
	rawDate := m.formDate

	return func() tea.Msg {
		amount, err := money.Parse(rawAmount)
		if err != nil {
			return saveInflowMsg{err: err}
		}

		date, err := time.Parse(formDateLayout, rawDate)
		if err != nil {
			return saveInflowMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.svc.UpdateInflow(ctx, id, ledger.UpdateInflowParams{Amount: &amount, Date: &date})

		return saveInflowMsg{err: err}
	}
}

// inflowDelegate renders items in the list.
type inflowDelegate struct{}

func (d inflowDelegate) Height() int                             { return 2 }
func (d inflowDelegate) Spacing() int                            { return 0 }
func (d inflowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d inflowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(inflowItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
