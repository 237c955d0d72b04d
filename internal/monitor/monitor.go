// Package monitor implements an interactive Bubble Tea/Lipgloss TUI debugger:
// single-stepping the CPU, free-running at a fixed tick, and rendering
// registers, flags, the stack, a disassembly pane, and a hex memory pane
// with breakpoints and a goto-address prompt. Adapted from the teacher's
// monitor/main.go Model/Update/View, retargeted from its own [65536]uint8
// Memory onto this repository's memory.Bus, cpu.CPU and
// internal/disassembler packages (SPEC_FULL.md §13).
package monitor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgorelli/mos6502/cpu"
	"github.com/jgorelli/mos6502/internal/disassembler"
	"github.com/jgorelli/mos6502/internal/host"
	"github.com/jgorelli/mos6502/memory"
	"github.com/jgorelli/mos6502/video"
)

const stepInterval = 50 * time.Millisecond

type stepTick struct{}

func doStep() tea.Cmd {
	return tea.Tick(stepInterval, func(time.Time) tea.Msg { return stepTick{} })
}

// regSnapshot captures register state between steps so the view can
// highlight whichever fields just changed.
type regSnapshot struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8
}

func snapshot(c *cpu.CPU) regSnapshot {
	return regSnapshot{A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P}
}

// Model is the monitor's Bubble Tea model.
type Model struct {
	cpu *cpu.CPU
	bus *memory.Bus

	paused bool
	width  int
	height int

	locations        []disassembler.Location
	selectedLocation int

	last       regSnapshot
	lastMemory [64]uint8

	memoryAddress uint16
	activePane    string
	gotoInput     textinput.Model
	showingGoto   bool

	breakpoints map[uint16]bool

	fb             *video.Framebuffer
	screenshotPath string
	status         string
}

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(30)

	changedStyle = lipgloss.NewStyle().Foreground(changed).Bold(true)

	stackStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(30)

	disasmStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1)

	currentLineStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#ffffff"))

	selectedLineStyle = lipgloss.NewStyle().Foreground(highlight)

	memoryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(50)

	breakpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

// New builds a monitor over an already-loaded CPU and bus. The disassembly
// pane is seeded with a full linear sweep of the address space; for a ROM
// that is code start-to-end this reads naturally, the same tradeoff the
// teacher's monitor accepted. screenshotPath is where the "c" key saves a
// BMP capture of the framebuffer; an empty string falls back to
// "monitor.bmp" in the working directory.
func New(c *cpu.CPU, bus *memory.Bus, screenshotPath string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter hex address (e.g. FF00)"
	ti.CharLimit = 4
	ti.Width = 6

	if screenshotPath == "" {
		screenshotPath = "monitor.bmp"
	}

	m := &Model{
		cpu:            c,
		bus:            bus,
		paused:         true,
		locations:      disassembler.DisassembleInstructions(bus),
		activePane:     "disasm",
		gotoInput:      ti,
		breakpoints:    make(map[uint16]bool),
		fb:             video.NewFramebuffer(),
		screenshotPath: screenshotPath,
	}
	m.last = snapshot(c)
	m.relocate()
	return m
}

// step advances the CPU by one instruction and feeds the resulting write,
// if any, into the framebuffer shim, mirroring cmd/mos6502 run's loop.
func (m *Model) step() {
	m.cpu.Step()
	if addr, ok := m.cpu.LastWrite(); ok {
		m.fb.Observe(m.bus, addr, ok)
	}
}

func (m *Model) captureMemoryState() {
	addr := m.memoryAddress
	for i := 0; i < 64; i++ {
		m.lastMemory[i] = m.bus.Read(addr + uint16(i))
	}
}

func (m *Model) relocate() {
	for i, l := range m.locations {
		if l.PC == m.cpu.PC {
			m.selectedLocation = i
			return
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTick:
		if m.paused || m.breakpoints[m.cpu.PC] {
			m.paused = true
			return m, nil
		}
		m.last = snapshot(m.cpu)
		m.captureMemoryState()
		m.step()
		m.relocate()
		return m, doStep()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.memoryAddress = uint16(addr)
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.paused {
				m.last = snapshot(m.cpu)
				m.captureMemoryState()
				m.step()
				m.relocate()
			}
		case "i":
			// Manual NMI, exercising the interrupt entry points SPEC_FULL.md
			// §4.4 wires in for real rather than leaving inert.
			m.cpu.RaiseNMI()
		case "c":
			// Manual screenshot, the monitor keybinding SPEC_FULL.md §15
			// commits to for golang.org/x/image/bmp.
			if err := host.SaveScreenshot(m.fb, m.screenshotPath); err != nil {
				m.status = fmt.Sprintf("screenshot failed: %v", err)
			} else {
				m.status = fmt.Sprintf("wrote %s", m.screenshotPath)
			}
		case "b":
			addr := m.locations[m.selectedLocation].PC
			if m.breakpoints[addr] {
				delete(m.breakpoints, addr)
			} else {
				m.breakpoints[addr] = true
			}
		case "n":
			if m.paused && len(m.breakpoints) > 0 {
				m.paused = false
				return m, doStep()
			}
		case "p":
			m.paused = !m.paused
			if !m.paused {
				return m, doStep()
			}
		case "tab":
			if m.activePane == "disasm" {
				m.activePane = "memory"
			} else {
				m.activePane = "disasm"
			}
		case "up":
			if m.activePane == "disasm" {
				if m.selectedLocation > 0 {
					m.selectedLocation--
				}
			} else if m.memoryAddress >= 8 {
				m.memoryAddress -= 8
				m.captureMemoryState()
			}
		case "down":
			if m.activePane == "disasm" {
				if m.selectedLocation < len(m.locations)-1 {
					m.selectedLocation++
				}
			} else if m.memoryAddress <= 0xFFF8 {
				m.memoryAddress += 8
				m.captureMemoryState()
			}
		case "pgup":
			if m.activePane == "disasm" {
				m.selectedLocation -= 20
				if m.selectedLocation < 0 {
					m.selectedLocation = 0
				}
			} else {
				if m.memoryAddress >= 64 {
					m.memoryAddress -= 64
				} else {
					m.memoryAddress = 0
				}
				m.captureMemoryState()
			}
		case "pgdown":
			if m.activePane == "disasm" {
				m.selectedLocation += 20
				if m.selectedLocation > len(m.locations)-1 {
					m.selectedLocation = len(m.locations) - 1
				}
			} else {
				if m.memoryAddress <= 0xFFC0 {
					m.memoryAddress += 64
				} else {
					m.memoryAddress = 0xFFC0
				}
				m.captureMemoryState()
			}
		}
	}
	return m, nil
}

func (m Model) formatReg8(name string, current, last uint8) string {
	value := fmt.Sprintf("%s: $%02X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m Model) formatReg16(name string, current, last uint16) string {
	value := fmt.Sprintf("%s: $%04X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m Model) formatFlags() string {
	flags := []struct {
		name string
		flag uint8
	}{
		{"N", cpu.FlagN}, {"V", cpu.FlagV}, {"B", cpu.FlagB},
		{"D", cpu.FlagD}, {"I", cpu.FlagI}, {"Z", cpu.FlagZ}, {"C", cpu.FlagC},
	}

	var result strings.Builder
	for _, f := range flags {
		current := m.cpu.P&f.flag != 0
		last := m.last.P&f.flag != 0
		switch {
		case current && current != last:
			result.WriteString(changedStyle.Render(f.name + " "))
		case current:
			result.WriteString(f.name + " ")
		default:
			result.WriteString("- ")
		}
	}
	return result.String()
}

func (m Model) formatMemory() string {
	var result strings.Builder
	addr := m.memoryAddress

	for row := 0; row < 8; row++ {
		result.WriteString(fmt.Sprintf("$%04X: ", addr))
		for col := 0; col < 8; col++ {
			offset := row*8 + col
			value := m.bus.Read(addr + uint16(col))
			if value != m.lastMemory[offset] {
				result.WriteString(changedStyle.Render(fmt.Sprintf("%02X ", value)))
			} else {
				result.WriteString(fmt.Sprintf("%02X ", value))
			}
		}
		result.WriteString(" | ")
		for col := 0; col < 8; col++ {
			offset := row*8 + col
			value := m.bus.Read(addr + uint16(col))
			ch := "."
			if value >= 32 && value <= 126 {
				ch = string(value)
			}
			if value != m.lastMemory[offset] {
				result.WriteString(changedStyle.Render(ch))
			} else {
				result.WriteString(ch)
			}
		}
		result.WriteString("\n")
		addr += 8
	}
	return result.String()
}

func (m Model) disassemble() string {
	var result strings.Builder
	start := m.selectedLocation
	end := start + 20
	if end > len(m.locations) {
		end = len(m.locations)
	}

	for i := start; i < end; i++ {
		l := m.locations[i]
		line := l.String()
		switch {
		case m.breakpoints[l.PC] && l.PC == m.cpu.PC:
			line = currentLineStyle.Render("● " + line)
		case m.breakpoints[l.PC]:
			line = breakpointStyle.Render("● " + line)
		case l.PC == m.cpu.PC:
			line = currentLineStyle.Render(line)
		case i == m.selectedLocation:
			line = selectedLineStyle.Render(line)
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

func (m Model) formatStack() string {
	var result strings.Builder
	for i := uint16(0xFF); i >= uint16(m.cpu.SP); i-- {
		result.WriteString(fmt.Sprintf("$%02X: %02X\n", i, m.bus.Read(0x100+i)))
		if i == 0 {
			break
		}
	}
	return result.String()
}

func (m Model) View() string {
	rightColumnWidth := 32
	leftColumnWidth := 40

	info := infoStyle.Width(rightColumnWidth)
	stack := stackStyle.Width(rightColumnWidth)
	disasm := disasmStyle.Width(leftColumnWidth)

	disasmBox := disasm.Render(fmt.Sprintf("Disassembly\n\n%s", m.disassemble()))

	cpuState := info.Render(fmt.Sprintf(
		"CPU State\n\n%s    %s    %s\n%s  %s\n\nFlags: %s\n",
		m.formatReg8("A", m.cpu.A, m.last.A),
		m.formatReg8("X", m.cpu.X, m.last.X),
		m.formatReg8("Y", m.cpu.Y, m.last.Y),
		m.formatReg16("PC", m.cpu.PC, m.last.PC),
		m.formatReg8("SP", m.cpu.SP, m.last.SP),
		m.formatFlags(),
	))

	stackBox := stack.Render(fmt.Sprintf("Stack\n\n%s", m.formatStack()))
	memoryBox := memoryStyle.Render(fmt.Sprintf("Memory (↑↓ to scroll)\n\n%s", m.formatMemory()))

	right := lipgloss.JoinVertical(lipgloss.Left, cpuState, stackBox, memoryBox)

	var help string
	if !m.paused {
		help = titleStyle.Render("p: pause • q: quit")
	} else {
		help = titleStyle.Render(
			"s: step • n: run to break • p: pause/resume • b: toggle break • " +
				"i: send NMI • c: screenshot • ↑↓: scroll • pgup/pgdn: page • tab: switch pane • g: goto • q: quit",
		)
	}
	if m.status != "" {
		help = lipgloss.JoinVertical(lipgloss.Left, help, titleStyle.Render(m.status))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, disasmBox, lipgloss.PlaceHorizontal(3, lipgloss.Left, right))

	if m.showingGoto {
		dialog := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).
			Width(30).
			Render("Go to address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Center, content, help, dialog)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

// Halted reports whether the underlying CPU has halted, so the host can
// decide whether to keep the program running after the TUI exits.
func (m Model) Halted() bool {
	return m.cpu.State() == cpu.Halted
}
