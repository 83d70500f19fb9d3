package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical list of labelled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(labels ...string) form {
	f := form{labels: labels, inputs: make([]textinput.Model, len(labels))}
	for i := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		in.Width = 32
		f.inputs[i] = in
	}
	return f
}

// open focuses the first field.
func (f *form) open() tea.Cmd {
	return f.focusField(0)
}

func (f *form) focusField(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *form) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.focusField(f.focus - 1) }

func (f *form) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = f.inputs[i].Value()
	}
	return out
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) setValues(vs []string) {
	for i := range f.inputs {
		if i < len(vs) {
			f.inputs[i].SetValue(vs[i])
		} else {
			f.inputs[i].SetValue("")
		}
	}
}

func (f *form) reset() {
	f.setValues(nil)
}

// update routes navigation keys and hands the rest to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.next()
		case "shift+tab", "up":
			return f.prev()
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		marker := "  "
		if i == f.focus && in.Focused() {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString(marker)
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}
