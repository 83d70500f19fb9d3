package bootstrap

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is a UI model that may end the program with a fatal error.
type Model interface {
	tea.Model
	Err() error
}

// Run shows the UI and blocks until the user quits or ctx is canceled.
// A canceled context is a normal shutdown.
func Run(ctx context.Context, model Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return model.Err()
}
