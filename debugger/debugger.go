// Package debugger provides an optional interactive single-step TUI over a
// running Machine, adapted from the teacher's bare-Cpu debugger onto the
// full Bus+ACIA+Cpu aggregate.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"uk101re/machine"
)

type model struct {
	m      *machine.Machine
	prevPC uint16
}

// Run starts the interactive debugger over m. It blocks until the user
// quits.
func Run(m *machine.Machine) error {
	_, err := tea.NewProgram(model{m: m}).Run()
	return err
}

func (mdl model) Init() tea.Cmd { return nil }

func (mdl model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return mdl, tea.Quit
		case " ", "j":
			mdl.prevPC = mdl.m.CPU.PC
			mdl.m.Step()
		case "r":
			mdl.m.Reset()
		}
	}
	return mdl, nil
}

// renderPage renders one 16-byte RAM page as a line, highlighting the
// current PC if it falls within this page.
func (mdl model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	pc := mdl.m.CPU.PC
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := mdl.m.Bus.Read(addr)
		if addr == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (mdl model) status() string {
	c := mdl.m.CPU
	a := mdl.m.ACIA
	flagBits := []struct {
		name string
		set  bool
	}{
		{"N", c.N}, {"V", c.V}, {"D", c.D},
		{"I", c.I}, {"Z", c.Z}, {"C", c.C},
	}
	var flags strings.Builder
	for _, f := range flagBits {
		if f.set {
			fmt.Fprintf(&flags, "%s ", f.name)
		} else {
			fmt.Fprintf(&flags, "- ")
		}
	}
	return fmt.Sprintf(
		"PC: %04x (was %04x)\nA: %02x  X: %02x  Y: %02x  SP: %02x\n%s\nACIA SR:%02x RDR:%02x TDR:%02x CR:%02x",
		c.PC, mdl.prevPC, c.A, c.X, c.Y, c.SP, flags.String(),
		a.SR, a.RDR, a.TDR, a.CR,
	)
}

func (mdl model) pageTable() string {
	pc := mdl.m.CPU.PC
	// five 16-byte rows from the 128-byte boundary at or below PC; PC is
	// not among them when it lies in the last 48 bytes of that block
	base := pc &^ 0x007F
	var rows []string
	for i := uint16(0); i < 5; i++ {
		rows = append(rows, mdl.renderPage(base+i*16))
	}
	return strings.Join(rows, "\n")
}

func (mdl model) View() string {
	opcode := mdl.m.Bus.Read(mdl.m.CPU.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, mdl.pageTable(), "   "+mdl.status()),
		"",
		spew.Sdump(opcode),
		"SPACE/j: step   r: reset   q: quit",
	)
}
