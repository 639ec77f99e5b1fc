package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calebcase/bitcalc/engine"
	"github.com/calebcase/bitcalc/radix"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	bitsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var tuiCommand = &cobra.Command{
	Use:   "tui",
	Short: "run the calculator interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, c, e, err := session(cmd)
		if err != nil {
			return err
		}

		m := newInteractiveModel(c, e)

		if _, err := tea.NewProgram(m).Run(); err != nil {
			return err
		}

		return store.Save(e.Snapshot(c))
	},
}

type interactiveModel struct {
	ctx    *engine.Context
	engine *engine.Engine
	ds     engine.DisplayState
	input  textinput.Model
	err    error
}

func newInteractiveModel(c *engine.Context, e *engine.Engine) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "7 + 3 ="
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		ctx:    c,
		engine: e,
		ds:     e.Display(c),
		input:  ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.ds, m.err = script(m.ctx, m.engine, strings.Fields(m.input.Value()))
			m.input.Reset()

			return m, nil

		case "tab":
			m.ctx.Conversion.OutputSystem = next(m.ctx.Conversion.OutputSystem)
			m.ds = m.engine.Display(m.ctx)

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// next returns the numeral system after r in display order.
func next(r radix.Radix) radix.Radix {
	for i, x := range radix.Radixes {
		if x == r {
			return radix.Radixes[(i+1)%len(radix.Radixes)]
		}
	}

	return radix.Decimal
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	mode := "unsigned"
	if m.ctx.Signed {
		mode = "signed"
	}

	b.WriteString(titleStyle.Render("bitcalc"))
	fmt.Fprintf(&b, " %d-bit %s, %d fraction bits\n\n", m.ctx.Size, mode, m.ctx.Conversion.FractionalWidth)

	if m.ds.Pending != "" {
		b.WriteString(labelStyle.Render("pending "))
		b.WriteString(m.ds.Pending)
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s ", m.ctx.Conversion.InputSystem.String()[:3])))
	b.WriteString(m.ds.InputText)
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s ", m.ctx.Conversion.OutputSystem.String()[:3])))
	if m.ds.Error != engine.None {
		b.WriteString(errorStyle.Render(m.ds.OutputText))
	} else {
		b.WriteString(resultStyle.Render(m.ds.OutputText))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("bits    "))
	b.WriteString(bitsStyle.Render(groupBits(m.ds.Bits.String())))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter evaluate • tab output system • esc quit"))

	return b.String()
}
