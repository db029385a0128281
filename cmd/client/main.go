// The setka client: a terminal interface to the Setka social network with a
// login/registration flow, the home screen sections and the admin moderation
// panel.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/setka-dev/setka/internal/client/api"
	"github.com/setka-dev/setka/internal/client/config"
	"github.com/setka-dev/setka/internal/client/services"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/client/ui"
	"github.com/setka-dev/setka/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "setka:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// The terminal belongs to the UI, so logs go to a file.
	logW, closeLog := openLog(cfg.LogFile)
	defer closeLog()
	log := logging.NewTextLogger(logW, slog.LevelInfo)

	ctx := context.Background()
	sessions := session.NewStore(cfg.SessionFile, log)
	if err := sessions.Load(ctx); err != nil {
		log.Warn(ctx, "session restore failed", "error", err)
	}

	client := api.NewHTTPClient(cfg.AuthEndpoint, cfg.AdminEndpoint, cfg.ChatEndpoint, cfg.RequestTimeout)
	auth := services.NewAuthService(client, sessions, log)
	admin := services.NewAdminService(client, sessions, log)
	chat := services.NewChatService(client, sessions, log)

	app := ui.NewApp(log, sessions, auth, admin, chat)
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func openLog(path string) (io.Writer, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
