package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/slack-go/slack"

	"github.com/snona-tech/one-cloud-native-a-day/internal/config"
	"github.com/snona-tech/one-cloud-native-a-day/internal/dateutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/hints"
	"github.com/snona-tech/one-cloud-native-a-day/internal/landscape"
	"github.com/snona-tech/one-cloud-native-a-day/internal/slackmsg"
	"github.com/snona-tech/one-cloud-native-a-day/internal/translate"
	"github.com/snona-tech/one-cloud-native-a-day/internal/workday"
)

// dryRunMessage is the JSON shape printed by --dry-run.
type dryRunMessage struct {
	Channel string        `json:"channel,omitempty"`
	Text    string        `json:"text"`
	Blocks  []slack.Block `json:"blocks"`
}

// runPost picks a landscape item and posts it to Slack.
func runPost(ctx context.Context, flags *postFlags, env *Environment) error {
	envCfg, err := config.LoadPostEnv()
	if err != nil {
		return err
	}

	if !flags.force {
		gate, err := envCfg.WorkdayGate()
		if err != nil {
			return err
		}
		if err := gate.Check(dateutil.Today(env.Now)); err != nil {
			if errors.Is(err, workday.ErrNotWorkday) {
				if !flags.common.quiet {
					fmt.Fprintf(env.Stdout, "Skipping post: %v\n", err)
				}
				return nil
			}
			return err
		}
	}

	item, err := pickItem(ctx, envCfg, env)
	if err != nil {
		return err
	}

	// Translation is best-effort; a failed lookup posts the original text.
	translated := ""
	if item.Description != "" {
		translated, err = translate.NewClient().Translate(ctx, item.Description, "ja")
		if err != nil {
			if flags.common.verbose {
				fmt.Fprintf(env.Stderr, "Translation skipped: %v\n", err)
			}
			translated = ""
		}
	}

	blocks := slackmsg.Blocks(slackmsg.Post{
		Item:        item,
		Translated:  translated,
		IconBaseURL: envCfg.IconBaseURL,
		SiteBaseURL: envCfg.SiteBaseURL,
	})

	if flags.dryRun {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dryRunMessage{
			Channel: envCfg.SlackChannelID,
			Text:    slackmsg.Title,
			Blocks:  blocks,
		})
	}

	poster, err := slackmsg.NewPoster(envCfg.SlackBotToken, envCfg.SlackChannelID)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForSlackAuth())
	}
	if err := poster.Send(ctx, slackmsg.Title, blocks); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForSlackAuth())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Posted %q to %s\n", item.Name, envCfg.SlackChannelID)
	}
	return nil
}

// pickItem fetches the catalog, samples an active item, and enriches its
// description from GitHub or Crunchbase when the catalog has none.
func pickItem(ctx context.Context, envCfg *config.PostEnv, env *Environment) (landscape.Item, error) {
	client := landscape.NewClient()

	catalog, err := client.Fetch(ctx, envCfg.DataSource)
	if err != nil {
		return landscape.Item{}, err
	}

	rng := rand.New(rand.NewPCG(uint64(env.Now().UnixNano()), uint64(catalog.Len())))
	item, err := catalog.PickActive(rng)
	if err != nil {
		return landscape.Item{}, err
	}

	client.EnrichDescription(ctx, &item, envCfg.CrunchbaseKey)
	return item, nil
}
