package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerItem is one entry shown in the interactive picker.
type PickerItem struct {
	Label    string // primary text (e.g. account id)
	SubLabel string // secondary text shown dimmed (e.g. kind + network)
	Value    string // value returned on selection
}

// pickerWindow caps how many rows are rendered at once; longer lists
// scroll within the window.
const pickerWindow = 12

type pickerModel struct {
	title  string
	items  []PickerItem
	cursor int
	top    int // first visible row
	picked int // index of the chosen item, -1 while undecided
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.picked = -1
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.items) - 1

	case "enter":
		m.picked = m.cursor
		return m, tea.Quit
	}

	// Keep the cursor inside the visible window.
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+pickerWindow {
		m.top = m.cursor - pickerWindow + 1
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.picked >= 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s\n\n",
		StyleTitle.Render(m.title),
		StyleMeta.Render(fmt.Sprintf("(%d)", len(m.items))))

	end := m.top + pickerWindow
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.top; i < end; i++ {
		item := m.items[i]
		row := fmt.Sprintf("%2d. %s", i+1, StyleAccount.Render(item.Label))
		if item.SubLabel != "" {
			row += "  " + StyleMeta.Render(item.SubLabel)
		}
		if i == m.cursor {
			sb.WriteString(StyleSelected.Render(" ▸ "+row) + "\n")
		} else {
			sb.WriteString("   " + row + "\n")
		}
	}
	if end < len(m.items) {
		fmt.Fprintf(&sb, "   %s\n", StyleMeta.Render(fmt.Sprintf("… %d more", len(m.items)-end)))
	}

	sb.WriteString("\n" + StyleMeta.Render("  ↑/↓ move   g/G first/last   enter select   q cancel") + "\n")
	return sb.String()
}

// PickItem runs an interactive list picker and returns the selected item's
// Value. Returns ("", nil) if the user cancels; errors only on TUI failure.
func PickItem(title string, items []PickerItem) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no items to pick from")
	}

	final, err := tea.NewProgram(pickerModel{title: title, items: items, picked: -1}).Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}

	m := final.(pickerModel)
	if m.picked < 0 {
		return "", nil
	}
	return m.items[m.picked].Value, nil
}
