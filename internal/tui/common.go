// Package tui renders the reservation programs as full-screen terminal UIs.
//
// Each model owns a navigator.Navigator for view state and calls the
// services synchronously from Update. Every failure of a user action is shown
// in a blocking dialog; only navigator.IsFatal errors end the program.
package tui

import (
	"context"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/navigator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#333333")).Background(lipgloss.Color("#f0f0f0")).Padding(0, 2).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(20).Align(lipgloss.Right).MarginRight(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dialogStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3).MarginTop(1)
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogError
	dialogConfirm
)

// dialog is a modal message. While one is open it receives every key.
type dialog struct {
	kind      dialogKind
	title     string
	message   string
	onConfirm func() tea.Cmd
}

func infoDialog(msg string) *dialog {
	return &dialog{kind: dialogInfo, title: "Success", message: msg}
}

func warningDialog(msg string) *dialog {
	return &dialog{kind: dialogWarning, title: "Warning", message: msg}
}

func errorDialog(err error) *dialog {
	return &dialog{kind: dialogError, title: "Error", message: err.Error()}
}

func confirmDialog(msg string, onConfirm func() tea.Cmd) *dialog {
	return &dialog{kind: dialogConfirm, title: "Confirm", message: msg, onConfirm: onConfirm}
}

// handle reports whether msg dismisses the dialog and, for a confirmed
// question, the action to run once it is gone.
func (d *dialog) handle(msg tea.KeyMsg) (bool, func() tea.Cmd) {
	if d.kind == dialogConfirm {
		switch msg.String() {
		case "y", "Y":
			return true, d.onConfirm
		case "n", "N", "esc":
			return true, nil
		}
		return false, nil
	}
	switch msg.String() {
	case "enter", "esc", " ":
		return true, nil
	}
	return false, nil
}

// updateDialog feeds key to the open dialog *d, clearing it when dismissed.
// A confirmed action runs after the dialog is cleared so it may open another.
func updateDialog(d **dialog, key tea.KeyMsg) tea.Cmd {
	closed, then := (*d).handle(key)
	if !closed {
		return nil
	}
	*d = nil
	if then == nil {
		return nil
	}
	return then()
}

func (d *dialog) view() string {
	color := lipgloss.Color("42")
	hint := "enter: ok"
	switch d.kind {
	case dialogWarning:
		color = lipgloss.Color("214")
	case dialogError:
		color = lipgloss.Color("196")
	case dialogConfirm:
		color = lipgloss.Color("39")
		hint = "y: yes  n: no"
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(d.title)
	return dialogStyle.BorderForeground(color).Render(title + "\n\n" + d.message + "\n\n" + helpStyle.Render(hint))
}

// actionFailed turns err into a dialog. Errors that are not plain user
// mistakes are logged as well.
func actionFailed(logger *zap.SugaredLogger, action string, err error) *dialog {
	if !domain.IsUserError(err) {
		logger.Errorw("action failed", "action", action, "error", err)
	}
	return errorDialog(err)
}

// screen is the shared chrome of a view: title, body, key help.
func screen(title, body, help string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(body)
	if help != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(help))
	}
	return b.String()
}

// show moves nav to v. A fatal error is stored in *fatal and quits the program;
// any other hook error is returned for the caller to display.
func show(ctx context.Context, nav *navigator.Navigator, v navigator.View, fatal *error) (tea.Cmd, error) {
	err := nav.Show(ctx, v)
	if err == nil {
		return nil, nil
	}
	if navigator.IsFatal(err) {
		*fatal = err
		return tea.Quit, nil
	}
	return nil, err
}
