package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jabulente/bubblechart/pkg/dataset"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ColumnListModel - Interactive area column selection
// =============================================================================

// columnInfo summarizes one CSV column for the picker.
type columnInfo struct {
	Name    string
	Numeric bool
	Sample  string
}

// ColumnListModel is the bubbletea model for interactive column selection.
// Only numeric columns can be selected; text columns are shown dimmed so the
// user can see what else the file contains.
type ColumnListModel struct {
	Columns  []columnInfo
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewColumnListModel creates a new column list model.
func NewColumnListModel(columns []columnInfo) ColumnListModel {
	return ColumnListModel{
		Columns: columns,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m ColumnListModel) Init() tea.Cmd {
	return nil
}

func (m ColumnListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Columns)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			col := m.Columns[m.Cursor]
			if !col.Numeric {
				return m, nil
			}
			m.Selected = col.Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ColumnListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Area Column"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Columns) {
		end = len(m.Columns)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		col := m.Columns[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		kind := "text"
		if col.Numeric {
			kind = "numeric"
		}

		rows = append(rows, []string{cursor, col.Name, kind, col.Sample})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Column", "Type", "Sample").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Columns) {
				return lipgloss.NewStyle()
			}
			info := m.Columns[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				if info.Numeric {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			}
			if info.Numeric {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Columns))))

	return b.String()
}

// =============================================================================
// Picker Entry Point
// =============================================================================

// maxSampleValues limits how many cell values appear in the Sample column.
const maxSampleValues = 3

// pickAreaColumn reads the CSV headers and runs the interactive picker.
// It returns the chosen column name, or an error if the user quit without
// selecting.
func pickAreaColumn(input string) (string, error) {
	tbl, err := dataset.ReadFile(input)
	if err != nil {
		return "", err
	}

	columns := inspectColumns(tbl)

	model, err := tea.NewProgram(NewColumnListModel(columns)).Run()
	if err != nil {
		return "", fmt.Errorf("column picker: %w", err)
	}

	final, ok := model.(ColumnListModel)
	if !ok || final.Selected == "" {
		return "", fmt.Errorf("no area column selected (pass one with --areas)")
	}
	return final.Selected, nil
}

// inspectColumns classifies each column and collects sample values.
func inspectColumns(t *dataset.Table) []columnInfo {
	names := t.Columns()
	columns := make([]columnInfo, 0, len(names))
	for _, name := range names {
		info := columnInfo{Name: name}

		if _, err := t.Floats(name); err == nil {
			info.Numeric = true
		}

		if values, err := t.Strings(name); err == nil {
			n := len(values)
			if n > maxSampleValues {
				n = maxSampleValues
			}
			info.Sample = strings.Join(values[:n], ", ")
			if len(values) > maxSampleValues {
				info.Sample += ", …"
			}
		}

		columns = append(columns, info)
	}
	return columns
}
