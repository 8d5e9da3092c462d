package tui

import (
	"context"
	"errors"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/service"
	"github.com/palmcar/rentaldesk/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the start menu until the user signs in, registers and
// signs in, or chooses to browse as a guest. The returned session is zero
// when guest is true.
func (t *TUI) LoginFlow(ctx context.Context) (session models.Session, guest bool, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, false, ErrUserQuit
	}
	if result.guest {
		return models.Session{}, true, nil
	}

	return models.Session{
		UserID: result.resultUser.ID,
		Email:  result.resultUser.Email,
		Name:   result.resultUser.Name,
		Role:   result.resultUser.Role,
	}, false, nil
}

// MainLoop runs the catalog and everything reachable from it. Returns
// logout=true when the user asked to switch accounts rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, hasSession bool) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session, hasSession)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
