package commands

import (
	"LinkBank/internal/cli/api"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

// bankDTO — карточка банка в ответе сервера.
type bankDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsPublic    bool   `json:"isPublic"`
}

type banksCmd struct{}

func (banksCmd) Name() string        { return "banks" }
func (banksCmd) Description() string { return "List your link banks" }
func (banksCmd) Usage() string       { return "banks" }

func (banksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/api/banks"), api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var banks []bankDTO
	if err := decodeData(resp, body, &banks); err != nil {
		return err
	}
	if len(banks) == 0 {
		fmt.Fprintln(Out, "No banks yet")
		return nil
	}
	for _, b := range banks {
		pub := ""
		if b.IsPublic {
			pub = " (public)"
		}
		fmt.Fprintf(Out, "- %s  %s %s%s\n", b.ID, b.Icon, b.Name, pub)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(banks))
	return nil
}

type bankAddRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type bankAddCmd struct{}

func (bankAddCmd) Name() string        { return "bank-add" }
func (bankAddCmd) Description() string { return "Create a new link bank" }
func (bankAddCmd) Usage() string       { return "bank-add <name> [description]" }

func (bankAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	req := bankAddRequest{Name: args[0]}
	if len(args) > 1 {
		req.Description = args[1]
	}

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/banks"), req, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var bank bankDTO
	if err := decodeData(resp, body, &bank); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created bank %s (%s)\n", bank.Name, bank.ID)
	return nil
}

func init() {
	RegisterCmd(banksCmd{})
	RegisterCmd(bankAddCmd{})
}
