package cli

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
)

// InitCmd creates the first administrator. It is the only command that runs unauthenticated.
type InitCmd struct{}

func (cmd *InitCmd) Run(app *App, g *Globals) error {
	ctx, finish := middleware.StartOperation(context.Background(), app.Logger, "init")

	username := firstNonEmpty(g.User, app.Config.User)
	password := firstNonEmpty(g.Password, app.Config.Password)
	err := app.Prompter.Credentials("First administrator", &username, &password)
	if err == nil {
		_, err = app.Services.Auth.CreateFirstAdmin(ctx, dto.CredentialsRequest{Username: username, Password: password})
	}
	finish(err)
	if err != nil {
		return err
	}

	printSuccessf(app.Stdout, "Administrator %s created in %s", username, app.Config.DBPath)
	return nil
}
