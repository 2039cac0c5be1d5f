package commands

import (
	"LinkBank/internal/cli/api"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

// linkDTO — карточка ссылки в ответе сервера.
type linkDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	ClickCount int64  `json:"clickCount"`
	Order      int64  `json:"order"`
	IsActive   bool   `json:"isActive"`
}

type linksCmd struct{}

func (linksCmd) Name() string        { return "links" }
func (linksCmd) Description() string { return "List links of a category" }
func (linksCmd) Usage() string       { return "links <category-id>" }

func (linksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/api/links/category/"+args[0]), api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var links []linkDTO
	if err := decodeData(resp, body, &links); err != nil {
		return err
	}
	if len(links) == 0 {
		fmt.Fprintln(Out, "No links yet")
		return nil
	}
	for _, l := range links {
		inactive := ""
		if !l.IsActive {
			inactive = " (inactive)"
		}
		fmt.Fprintf(Out, "- %s  %s  %s  clicks=%d%s\n", l.ID, l.Title, l.URL, l.ClickCount, inactive)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(links))
	return nil
}

type linkAddRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type linkAddCmd struct{}

func (linkAddCmd) Name() string        { return "link-add" }
func (linkAddCmd) Description() string { return "Add a link to a category" }
func (linkAddCmd) Usage() string       { return "link-add <category-id> <title> <url> [description]" }

func (linkAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	req := linkAddRequest{Category: args[0], Title: args[1], URL: args[2]}
	if len(args) > 3 {
		req.Description = args[3]
	}

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/links"), req, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var link linkDTO
	if err := decodeData(resp, body, &link); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added link %s -> %s (%s)\n", link.Title, link.URL, link.ID)
	return nil
}

type clickCmd struct{}

func (clickCmd) Name() string        { return "click" }
func (clickCmd) Description() string { return "Track a click on a link (public)" }
func (clickCmd) Usage() string       { return "click <link-id>" }

func (clickCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/links/"+args[0]+"/click"), struct{}{}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var data struct {
		ClickCount int64 `json:"clickCount"`
	}
	if err := decodeData(resp, body, &data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Click count: %d\n", data.ClickCount)
	return nil
}

func init() {
	RegisterCmd(linksCmd{})
	RegisterCmd(linkAddCmd{})
	RegisterCmd(clickCmd{})
}
