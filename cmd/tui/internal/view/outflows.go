package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/ledger"
	"github.com/MrJamesThe3rd/midas/internal/page"
)

var paidFilterLabels = []string{"All", "Unpaid", "Paid"}

type OutflowsModel struct {
	svc *ledger.Service

	table    table.Model
	outflows []*ledger.Outflow
	selected map[uuid.UUID]bool

	month         Month
	paidFilterIdx int

	loading bool
	err     error
	status  string
}

func NewOutflowsModel(svc *ledger.Service) OutflowsModel {
	columns := []table.Column{
		{Title: " ", Width: 3},
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 14},
		{Title: "Inst.", Width: 7},
		{Title: "Paid", Width: 5},
		{Title: "Category", Width: 18},
		{Title: "Description", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return OutflowsModel{
		svc:      svc,
		table:    t,
		selected: make(map[uuid.UUID]bool),
		month:    ThisMonth(svc.Today()),
		loading:  true,
	}
}

func (m OutflowsModel) Title() string { return "Outflows" }

func (m OutflowsModel) ShortHelp() string {
	return "Esc: back | Space: select | p/u: paid/unpaid | d: duplicate | g: installments | s: sum | f: filter | [ ]: month"
}

func (m OutflowsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m OutflowsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOutflowsMsg:
		m.loading = false
		m.err = msg.err
		m.outflows = msg.outflows
		m.refreshTable()

		return m, nil

	case outflowActionMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.status = okStyle(msg.status)

		if !msg.reload {
			return m, nil
		}

		m.selected = make(map[uuid.UUID]bool)

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if m.month.step(key) {
			m.loading = true
			m.selected = make(map[uuid.UUID]bool)

			return m, m.loadCmd()
		}

		switch key {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "f":
			m.paidFilterIdx = (m.paidFilterIdx + 1) % len(paidFilterLabels)
			m.loading = true

			return m, m.loadCmd()
		case " ":
			if out := m.current(); out != nil {
				m.selected[out.ID] = !m.selected[out.ID]
				m.refreshTable()
			}

			return m, nil
		case "p":
			return m, m.markPaidCmd(true)
		case "u":
			return m, m.markPaidCmd(false)
		case "d":
			return m, m.duplicateCmd()
		case "g":
			return m, m.installmentsCmd()
		case "s":
			return m, m.sumCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m OutflowsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading outflows...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf(
		"Month: %s | [f] Paid: %s | Selected: %d",
		activeStyle(m.month.String()),
		activeStyle(paidFilterLabels[m.paidFilterIdx]),
		len(m.selectedIDs()),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m OutflowsModel) current() *ledger.Outflow {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.outflows) {
		return nil
	}

	return m.outflows[idx]
}

// selectedIDs returns the marked rows, or the row under the cursor when
// nothing is marked.
func (m OutflowsModel) selectedIDs() []uuid.UUID {
	var ids []uuid.UUID

	for _, out := range m.outflows {
		if m.selected[out.ID] {
			ids = append(ids, out.ID)
		}
	}

	if len(ids) == 0 {
		if out := m.current(); out != nil {
			ids = append(ids, out.ID)
		}
	}

	return ids
}

func (m OutflowsModel) filter() ledger.OutflowFilter {
	f := ledger.OutflowFilter{
		StartDate: &m.month.Start,
		EndDate:   &m.month.End,
		Page:      page.Request{Number: 1, Size: page.MaxSize},
	}

	switch m.paidFilterIdx {
	case 1:
		f.Paid = new(false)
	case 2:
		f.Paid = new(true)
	}

	return f
}

func (m *OutflowsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.outflows))

	for _, out := range m.outflows {
		mark := ""
		if m.selected[out.ID] {
			mark = "[x]"
		}

		inst := ""
		if out.Installment != nil && out.TotalInstallments != nil {
			inst = fmt.Sprintf("%d/%d", *out.Installment, *out.TotalInstallments)
		}

		paid := "no"
		if out.Paid {
			paid = "yes"
		}

		rows = append(rows, table.Row{
			mark,
			FormatDate(out.ExpenseDate),
			FormatAmount(out.Amount),
			inst,
			paid,
			out.CategoryName,
			out.Description,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadOutflowsMsg struct {
	outflows []*ledger.Outflow
	err      error
}

type outflowActionMsg struct {
	status string
	reload bool
	err    error
}

func (m OutflowsModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		outflows, _, err := m.svc.ListOutflows(ctx, filter)

		return loadOutflowsMsg{outflows: outflows, err: err}
	}
}

func (m OutflowsModel) markPaidCmd(paid bool) tea.Cmd {
	ids := m.selectedIDs()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		n, err := m.svc.MarkPaid(ctx, ids, paid)
		if err != nil {
			return outflowActionMsg{err: err}
		}

		label := "paid"
		if !paid {
			label = "unpaid"
		}

		return outflowActionMsg{status: fmt.Sprintf("%d outflow(s) marked %s.", n, label), reload: true}
	}
}

func (m OutflowsModel) duplicateCmd() tea.Cmd {
	ids := m.selectedIDs()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		clones, err := m.svc.Duplicate(ctx, ids)
		if err != nil {
			return outflowActionMsg{err: err}
		}

		return outflowActionMsg{status: fmt.Sprintf("%d outflow(s) duplicated.", len(clones)), reload: true}
	}
}

func (m OutflowsModel) installmentsCmd() tea.Cmd {
	out := m.current()
	if out == nil {
		return nil
	}

	id := out.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		created, err := m.svc.GenerateInstallments(ctx, id)
		if err != nil {
			return outflowActionMsg{err: err}
		}

		return outflowActionMsg{status: fmt.Sprintf("%d installment(s) generated.", len(created)), reload: true}
	}
}

func (m OutflowsModel) sumCmd() tea.Cmd {
	ids := m.selectedIDs()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.Sum(ctx, ids)
		if err != nil {
			return outflowActionMsg{err: err}
		}

		return outflowActionMsg{status: fmt.Sprintf("Sum of %d outflow(s): %s", res.Count, res.Formatted)}
	}
}
