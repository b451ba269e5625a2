// Package slackmsg builds and posts the daily landscape Block Kit message.
package slackmsg

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/snona-tech/one-cloud-native-a-day/internal/landscape"
)

// Sentinel errors for Slack operations.
var (
	ErrMissingToken   = errors.New("slack bot token is required")
	ErrMissingChannel = errors.New("slack channel id is required")
	ErrPostFailed     = errors.New("slack post failed")
)

// Title is the notification text shown outside the block layout.
const Title = ":alarm_clock: クラウドネイティブのお時間です！"

// greeting opens every post.
const greeting = "こんにちは皆さん！\n今日も CNCF の Landscape の中から素晴らしいプロダクトやメンバーを紹介します ✨"

// placeholder fills fields the landscape has no data for.
const placeholder = "-"

// Post bundles everything the poster needs for one message.
type Post struct {
	Item        landscape.Item
	Translated  string // Japanese description, "" when translation failed
	IconBaseURL string // rendered-icon bucket base, "" disables the image block
	SiteBaseURL string // landscape site base, "" uses the public site
}

// Blocks lays out the Block Kit message for a post.
func Blocks(p Post) []slack.Block {
	item := p.Item

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, greeting, false, false),
			nil, nil,
		),
	}

	if iconURL := item.IconURL(p.IconBaseURL); iconURL != "" {
		blocks = append(blocks, slack.NewImageBlock(iconURL, item.Name, "", nil))
	}

	blocks = append(blocks,
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, orDash(item.Name), false, false)),
		detailFields(item, p.Translated),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, ":link: 各種リンク", false, false),
			nil, nil,
		),
		linkList(item, p.SiteBaseURL),
	)

	return blocks
}

// detailFields renders the label/value field grid.
func detailFields(item landscape.Item, translated string) *slack.SectionBlock {
	pairs := []struct {
		label string
		value string
	}{
		{"CNCF PROJECT", item.Project},
		{"CATEGORY", item.Category},
		{"SUBCATEGORY", item.Subcategory},
		{"DESCRIPTION", item.Description},
		{"DESCRIPTION（自動翻訳）", translated},
	}

	var fields []*slack.TextBlockObject
	for _, pair := range pairs {
		fields = append(fields,
			slack.NewTextBlockObject(slack.PlainTextType, pair.label, false, false),
			slack.NewTextBlockObject(slack.PlainTextType, orDash(pair.value), false, false),
		)
	}

	return slack.NewSectionBlock(nil, fields, nil)
}

// linkList renders the landscape, homepage and repository links.
func linkList(item landscape.Item, siteBase string) *slack.SectionBlock {
	lines := ":sunrise_over_mountains: " + item.SiteURL(siteBase)
	if item.HomepageURL != "" {
		lines += "\n:globe_with_meridians: " + item.HomepageURL
	}
	if item.RepoURL != "" {
		lines += "\n:github: " + item.RepoURL
	}

	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, lines, false, false),
		nil, nil,
	)
}

// orDash substitutes the placeholder for missing values.
func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// Poster posts messages to a fixed channel.
type Poster struct {
	api     *slack.Client
	channel string
}

// NewPoster validates credentials and returns a Poster.
// Extra client options are for tests (custom API URL).
func NewPoster(token, channel string, opts ...slack.Option) (*Poster, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if channel == "" {
		return nil, ErrMissingChannel
	}
	return &Poster{
		api:     slack.New(token, opts...),
		channel: channel,
	}, nil
}

// Send posts the message. The title doubles as the notification fallback
// text on clients that don't render blocks.
func (p *Poster) Send(ctx context.Context, title string, blocks []slack.Block) error {
	_, _, err := p.api.PostMessageContext(ctx, p.channel,
		slack.MsgOptionText(title, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostFailed, err)
	}
	return nil
}
