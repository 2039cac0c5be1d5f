package commands

import (
	"LinkBank/internal/cli/api"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

// categoryDTO — карточка категории в ответе сервера.
type categoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Slug      string `json:"slug"`
	IsPublic  bool   `json:"isPublic"`
	ViewCount int64  `json:"viewCount"`
	Order     int64  `json:"order"`

	Links []linkDTO `json:"links"`
}

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "List categories of a bank" }
func (categoriesCmd) Usage() string       { return "categories <bank-id>" }

func (categoriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/api/categories/bank/"+args[0]), api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var categories []categoryDTO
	if err := decodeData(resp, body, &categories); err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(Out, "No categories yet")
		return nil
	}
	for _, c := range categories {
		vis := "public"
		if !c.IsPublic {
			vis = "private"
		}
		fmt.Fprintf(Out, "- %s  %s %s  slug=%s  views=%d  [%s]\n", c.ID, c.Icon, c.Name, c.Slug, c.ViewCount, vis)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(categories))
	return nil
}

type categoryAddRequest struct {
	Bank        string `json:"bank"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type categoryAddCmd struct{}

func (categoryAddCmd) Name() string        { return "category-add" }
func (categoryAddCmd) Description() string { return "Create a category in a bank" }
func (categoryAddCmd) Usage() string       { return "category-add <bank-id> <name> [description]" }

func (categoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := categoryAddRequest{Bank: args[0], Name: args[1]}
	if len(args) > 2 {
		req.Description = args[2]
	}

	resp, body, err := api.PostJSON(endpoint(cfg.ServerURL, "/api/categories"), req, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var category categoryDTO
	if err := decodeData(resp, body, &category); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created category %s (%s), share slug: %s\n", category.Name, category.ID, category.Slug)
	return nil
}

func init() {
	RegisterCmd(categoriesCmd{})
	RegisterCmd(categoryAddCmd{})
}
