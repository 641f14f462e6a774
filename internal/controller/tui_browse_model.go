package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/blackbox/internal/domain"
	m "github.com/mouse-blink/blackbox/internal/model"
)

const badgeWidth = 9

var (
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	appliedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func statusBadge(status m.SkipStatus, selected bool) string {
	style := lipgloss.NewStyle().Width(badgeWidth).Align(lipgloss.Center).Bold(true)

	switch status {
	case m.Skip:
		style = style.Foreground(lipgloss.Color("11"))
	case m.NoSkip:
		style = style.Foreground(lipgloss.Color("10"))
	default:
		style = style.Foreground(lipgloss.Color("8"))
	}

	if selected {
		style = style.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	}

	return style.Render(status.String())
}

// Simple delegate for source list items.
type sourceDelegate struct{}

func (d sourceDelegate) Height() int  { return 1 }
func (d sourceDelegate) Spacing() int { return 0 }
func (d sourceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d sourceDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	source, ok := item.(sourceItem)
	if !ok {
		return
	}

	isSelected := index == model.Index()
	width := model.Width() - badgeWidth - 2

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	line := fmt.Sprintf("%s  %s",
		statusBadge(source.status, isSelected),
		pathStyle.Render(truncateToWidth(string(source.path), width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browseModel lists sources with their skip status and toggles the
// selected one.
type browseModel struct {
	ctx        context.Context
	skipper    domain.Skipper
	width      int
	height     int
	sourceList list.Model
	lastErr    error
}

func newBrowseModel(ctx context.Context, skipper domain.Skipper, sources []m.Path) browseModel {
	items := make([]list.Item, 0, len(sources))
	for _, path := range sources {
		items = append(items, sourceItem{path: path, status: skipper.ShouldSkipSource(path)})
	}

	sourceList := list.New(items, sourceDelegate{}, 80, 20)
	sourceList.SetShowPagination(false)
	sourceList.SetShowFilter(true)
	sourceList.SetShowHelp(false)
	sourceList.SetShowTitle(false)
	sourceList.SetShowStatusBar(false)
	sourceList.FilterInput.Placeholder = "Filter by path…"

	return browseModel{
		ctx:        ctx,
		skipper:    skipper,
		sourceList: sourceList,
	}
}

func (b browseModel) Init() tea.Cmd {
	return nil
}

func (b browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.sourceList.SetWidth(b.width)

	case tea.KeyMsg:
		if b.sourceList.FilterState() == list.Filtering {
			b.sourceList, cmd = b.sourceList.Update(msg)
			return b, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case " ", "space", "enter":
			return b, b.toggleSelected()
		default:
			b.sourceList, cmd = b.sourceList.Update(msg)
			return b, cmd
		}

	case toggledMsg:
		b.lastErr = msg.err
		b.refresh()
	}

	return b, cmd
}

func (b browseModel) toggleSelected() tea.Cmd {
	selected, ok := b.sourceList.SelectedItem().(sourceItem)
	if !ok {
		return nil
	}

	ctx, skipper := b.ctx, b.skipper

	return func() tea.Msg {
		err := skipper.ToggleSkipStatus(ctx, m.ToggleRequest{Path: selected.path})

		return toggledMsg{path: selected.path, status: skipper.ShouldSkipSource(selected.path), err: err}
	}
}

// refresh re-reads every status; a toggle can change sources other than
// the selected one.
func (b *browseModel) refresh() {
	items := b.sourceList.Items()
	for i, item := range items {
		source, ok := item.(sourceItem)
		if !ok {
			continue
		}

		source.status = b.skipper.ShouldSkipSource(source.path)
		items[i] = source
	}

	b.sourceList.SetItems(items)
}

func (b browseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("Skip Files")

	skipped := 0

	for _, item := range b.sourceList.Items() {
		if source, ok := item.(sourceItem); ok && source.status == m.Skip {
			skipped++
		}
	}

	summaryText := fmt.Sprintf("Sources: %s   Skipped: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(b.sourceList.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", skipped)),
	)
	if b.lastErr != nil {
		summaryText += "   " + rejectedStyle.Render(b.lastErr.Error())
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(b.width).
		Render("↑/k up • ↓/j down • space toggle • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summaryStyle.Render(summaryText),
		b.renderTable(),
		footer,
	)
}

func (b browseModel) renderTable() string {
	listHeight := b.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := b.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	b.sourceList.SetHeight(listHeight)
	b.sourceList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-*s  %s", badgeWidth, "Status", "Source"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, b.sourceList.View()))
}
