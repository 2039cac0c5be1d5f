package commands

import (
	"LinkBank/internal/cli/api"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show the current logged-in user" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token := api.LoadToken()
	if token == "" {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}

	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/api/user/me"), token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeData(resp, body, &user); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func init() { RegisterCmd(meCmd{}) }
