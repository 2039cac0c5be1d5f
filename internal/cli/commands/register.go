package commands

import (
	"LinkBank/internal/cli/api"
	fsrepo "LinkBank/internal/cli/repo/fs"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new user and login" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	name := args[0]
	email := args[1]
	password := args[2]

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/user/register"), registerRequest{Name: name, Email: email, Password: password}, "")
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
	fmt.Fprintln(Out, "Registered successfully")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
