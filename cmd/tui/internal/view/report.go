package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/midas/internal/report"
)

type ReportModel struct {
	svc *report.Service

	month   Month
	summary *report.Summary
	spinner spinner.Model
	loading bool
	err     error
}

func NewReportModel(svc *report.Service, month Month) ReportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ReportModel{
		svc:     svc,
		month:   month,
		spinner: s,
		loading: true,
	}
}

func (m ReportModel) Title() string     { return "Monthly Report" }
func (m ReportModel) ShortHelp() string { return "Esc: back | [ ]: month" }

func (m ReportModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = msg.err

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if m.month.step(msg.String()) {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}

		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ReportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)
	header := fmt.Sprintf("Report for %s\n\n", activeStyle(m.month.String()))

	if m.loading {
		return style.Render(header + m.spinner.View() + " Loading...")
	}

	if m.err != nil {
		return style.Render(header + errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	var b strings.Builder

	b.WriteString(header)
	fmt.Fprintf(&b, "Income:  %s\n", FormatAmount(m.summary.Income))
	fmt.Fprintf(&b, "Spent:   %s\n", FormatAmount(m.summary.Spent))

	balance := FormatAmount(m.summary.Balance)
	if m.summary.Balance.IsNegative() {
		balance = errorStyle(balance)
	} else {
		balance = okStyle(balance)
	}

	fmt.Fprintf(&b, "Balance: %s\n\n", balance)

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("By category") + "\n")
	for _, c := range m.summary.Categories {
		fmt.Fprintf(&b, "  %-24s %s\n", c.Category, FormatAmount(c.Total))
	}

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("By origin") + "\n")
	for _, o := range m.summary.Origins {
		fmt.Fprintf(&b, "  %-24s %s\n", o.Origin.Label(), FormatAmount(o.Total))
	}

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("Daily spending") + "\n")
	b.WriteString(sparkline(m.summary.Days) + "\n")

	return style.Render(b.String())
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders one block per day scaled to the month's largest total.
func sparkline(days []report.DayTotal) string {
	maxTotal := 0.0
	for _, d := range days {
		maxTotal = max(maxTotal, d.Total.InexactFloat64())
	}

	var b strings.Builder

	for _, d := range days {
		if maxTotal == 0 {
			b.WriteRune(sparkBlocks[0])
			continue
		}

		idx := int(d.Total.InexactFloat64() / maxTotal * float64(len(sparkBlocks)-1))
		b.WriteRune(sparkBlocks[idx])
	}

	return b.String()
}

type summaryMsg struct {
	summary *report.Summary
	err     error
}

func (m ReportModel) loadCmd() tea.Cmd {
	p := m.month.Period

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.svc.Summary(ctx, p)

		return summaryMsg{summary: summary, err: err}
	}
}
