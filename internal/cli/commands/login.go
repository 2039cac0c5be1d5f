package commands

import (
	"LinkBank/internal/cli/api"
	fsrepo "LinkBank/internal/cli/repo/fs"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email := args[0]
	password := args[1]

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/user/login"), loginRequest{Email: email, Password: password}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := decodeData(resp, body, nil); err != nil {
		return err
	}
	if err := api.PersistAuthFromResponse(resp); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	_ = fsrepo.AuthFSStore{}.SaveLogin(email)
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
