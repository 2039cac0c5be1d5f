package commands

import (
	"LinkBank/internal/cli/api"
	"LinkBank/internal/config"
	"context"
	"fmt"
)

// shareDTO — публичный просмотр категории по slug.
type shareDTO struct {
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	ViewCount int64     `json:"viewCount"`
	Links     []linkDTO `json:"links"`
	Owner     *struct {
		Name string `json:"name"`
	} `json:"owner"`
}

type shareCmd struct{}

func (shareCmd) Name() string        { return "share" }
func (shareCmd) Description() string { return "View a shared category by public slug" }
func (shareCmd) Usage() string       { return "share <slug>" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	// публичный путь: токен не нужен
	resp, body, err := api.GetJSON(endpoint(cfg.ServerURL, "/api/categories/share/"+args[0]), "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var share shareDTO
	if err := decodeData(resp, body, &share); err != nil {
		return err
	}

	owner := ""
	if share.Owner != nil {
		owner = " by " + share.Owner.Name
	}
	fmt.Fprintf(Out, "%s %s%s  (views: %d)\n", share.Icon, share.Name, owner, share.ViewCount)
	for _, l := range share.Links {
		fmt.Fprintf(Out, "- %s  %s\n", l.Title, l.URL)
	}
	return nil
}

func init() { RegisterCmd(shareCmd{}) }
