// Package tui provides the interactive result browser: a room table with a
// per-room component breakdown view.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hvackit/loadcalc/internal/engine"
)

// browserState tracks which view the browser shows.
type browserState int

const (
	// stateList shows the room table.
	stateList browserState = iota
	// stateDetail shows one room's component breakdown.
	stateDetail
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	tableOverhead = 8
)

// Browser is the Bubble Tea model for browsing a calculation result.
type Browser struct {
	result  *engine.BuildingLoadResult
	table   table.Model
	state   browserState
	printer *message.Printer

	width  int
	height int
}

// NewBrowser creates a Browser over a completed calculation.
func NewBrowser(result *engine.BuildingLoadResult) *Browser {
	columns := []table.Column{
		{Title: "Room", Width: 20},
		{Title: "Area", Width: 8},
		{Title: "Heating", Width: 12},
		{Title: "Cooling", Width: 12},
		{Title: "CFM", Width: 6},
		{Title: "Duct", Width: 5},
	}

	p := message.NewPrinter(language.AmericanEnglish)

	rows := make([]table.Row, 0, len(result.Zones))
	for i := range result.Zones {
		z := &result.Zones[i]
		rows = append(rows, table.Row{
			z.RoomName,
			fmt.Sprintf("%.0f sf", z.AreaSqFt),
			p.Sprintf("%.0f BTU", z.HeatingBTU),
			p.Sprintf("%.0f BTU", z.CoolingBTU),
			fmt.Sprintf("%.0f", z.CFMRequired),
			fmt.Sprintf("%d\"", z.DuctSizeIn),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-tableOverhead),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("39"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return &Browser{
		result:  result,
		table:   t,
		state:   stateList,
		printer: p,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.table.SetHeight(msg.Height - tableOverhead)
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "enter":
			if b.state == stateList && len(b.result.Zones) > 0 {
				b.state = stateDetail
			}
			return b, nil
		case "esc":
			if b.state == stateDetail {
				b.state = stateList
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	if b.state == stateList {
		b.table, cmd = b.table.Update(msg)
	}
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.state == stateDetail {
		return b.detailView()
	}
	return b.listView()
}

func (b *Browser) listView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).
		Render("LOAD CALCULATION")

	summary := b.printer.Sprintf("zone %s   heating %d BTU/hr   cooling %d BTU/hr",
		b.result.Design.ClimateZone, b.result.HeatingTotalBTU, b.result.CoolingTotalBTU)

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("↑/↓ select · enter detail · q quit")

	return strings.Join([]string{title, summary, "", b.table.View(), "", help}, "\n")
}

//nolint:funlen // Sequential detail sections.
func (b *Browser) detailView() string {
	cursor := b.table.Cursor()
	if cursor < 0 || cursor >= len(b.result.Zones) {
		b.state = stateList
		return b.listView()
	}
	zone := &b.result.Zones[cursor]

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	var body strings.Builder
	body.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", zone.RoomName, zone.RoomType)))
	body.WriteString("\n\n")
	body.WriteString(b.printer.Sprintf("heating %.0f BTU/hr   cooling %.0f BTU/hr (%.0f sensible / %.0f latent)\n",
		zone.HeatingBTU, zone.CoolingBTU, zone.CoolingSensibleBTU, zone.CoolingLatentBTU))
	body.WriteString(fmt.Sprintf("airflow %.0f CFM   duct %d\"   mass %s\n\n",
		zone.CFMRequired, zone.DuctSizeIn, zone.MassClass))

	body.WriteString(sectionStyle.Render("COOLING COMPONENTS"))
	body.WriteString("\n")
	body.WriteString(renderComponents(b.printer, zone.CoolingComponents))

	body.WriteString(sectionStyle.Render("HEATING COMPONENTS"))
	body.WriteString("\n")
	body.WriteString(renderComponents(b.printer, zone.HeatingComponents))

	if len(zone.AppliedFactors) > 0 {
		body.WriteString(sectionStyle.Render("APPLIED FACTORS"))
		body.WriteString("\n")
		names := make([]string, 0, len(zone.AppliedFactors))
		for name := range zone.AppliedFactors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pair := zone.AppliedFactors[name]
			body.WriteString(fmt.Sprintf("  %-22s %.2f heating / %.2f cooling\n",
				name, pair.Heating, pair.Cooling))
		}
	}

	if len(zone.DataQuality) > 0 {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).
			Render("assumptions: " + strings.Join(zone.DataQuality, ", ")))
		body.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("esc back · q quit")
	body.WriteString("\n")
	body.WriteString(help)

	return body.String()
}

// renderComponents prints a component map sorted by descending contribution.
func renderComponents(p *message.Printer, components engine.ComponentLoads) string {
	type kv struct {
		name  string
		value float64
	}

	sorted := make([]kv, 0, len(components))
	for name, value := range components {
		sorted = append(sorted, kv{name, value})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].value != sorted[j].value {
			return sorted[i].value > sorted[j].value
		}
		return sorted[i].name < sorted[j].name
	})

	var b strings.Builder
	for _, item := range sorted {
		b.WriteString(p.Sprintf("  %-24s %8.0f BTU/hr\n", item.name, item.value))
	}
	b.WriteString("\n")
	return b.String()
}
