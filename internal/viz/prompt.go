package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/thermsim/internal/control"
)

// ExitValue typed into any field ends the interactive session.
const ExitValue = -1.0

var gainFields = []string{"PROP", "INTEG", "DERIV"}

// GainPrompt asks for the PROP, INTEG and DERIV gains one field at a time.
// Enter accepts the current field; entering -1 or pressing esc quits.
type GainPrompt struct {
	values [3]float64
	bufs   [3]string
	cursor int
	err    string
	note   string
	done   bool
	quit   bool
}

// NewGainPrompt offers gains as the defaults kept when a field is accepted
// empty. note is shown above the fields, typically the error from the
// previous run.
func NewGainPrompt(gains control.Gains, note string) GainPrompt {
	return GainPrompt{
		values: [3]float64{gains.Prop, gains.Integ, gains.Deriv},
		note:   note,
	}
}

func (p GainPrompt) Init() tea.Cmd { return nil }

func (p GainPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		p.quit = true
		return p, tea.Quit
	case "up", "shift+tab":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "tab":
		if p.cursor < len(gainFields)-1 {
			p.cursor++
		}
	case "backspace":
		if buf := p.bufs[p.cursor]; len(buf) > 0 {
			p.bufs[p.cursor] = buf[:len(buf)-1]
		}
	case "enter":
		return p.accept()
	default:
		if s := key.String(); len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				p.bufs[p.cursor] += s
				p.err = ""
			}
		}
	}
	return p, nil
}

func (p GainPrompt) accept() (tea.Model, tea.Cmd) {
	buf := strings.TrimSpace(p.bufs[p.cursor])
	if buf == "" {
		buf = strconv.FormatFloat(p.values[p.cursor], 'g', -1, 64)
	}
	v, err := strconv.ParseFloat(buf, 64)
	if err != nil {
		p.err = fmt.Sprintf("%s: %q is not a number", gainFields[p.cursor], p.bufs[p.cursor])
		return p, nil
	}
	if v == ExitValue {
		p.quit = true
		return p, tea.Quit
	}

	p.values[p.cursor] = v
	p.err = ""
	if p.cursor < len(gainFields)-1 {
		p.cursor++
		return p, nil
	}
	p.done = true
	return p, tea.Quit
}

func (p GainPrompt) View() string {
	var b strings.Builder

	b.WriteString(Title.Render("thermsim gains") + "\n")
	if p.note != "" {
		b.WriteString(ErrorText.Render(p.note) + "\n")
	}
	b.WriteString("\n")

	for i, name := range gainFields {
		label := MetricLabel.Render(fmt.Sprintf("%-6s", name))
		value := p.bufs[i]
		if value == "" {
			value = Subtle.Render(strconv.FormatFloat(p.values[i], 'g', -1, 64))
		}
		if i == p.cursor {
			if p.bufs[i] != "" {
				value = ActiveField.Render(p.bufs[i] + "_")
			} else {
				value = ActiveField.Render("_") + " " + value
			}
			label = ActiveField.Render("> ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label + " " + value + "\n")
	}

	if p.err != "" {
		b.WriteString("\n" + ErrorText.Render(p.err) + "\n")
	}
	b.WriteString("\n" + KeyHint.Render("enter accept · tab/↑↓ move · -1 or esc quit") + "\n")
	return Panel.Render(b.String())
}

// Result reports the gains and whether they were accepted. It returns false
// when the operator quit.
func (p GainPrompt) Result() (control.Gains, bool) {
	if !p.done || p.quit {
		return control.Gains{}, false
	}
	return control.Gains{Prop: p.values[0], Integ: p.values[1], Deriv: p.values[2]}, true
}
