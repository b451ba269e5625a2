package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/snona-tech/one-cloud-native-a-day/internal/workday"
)

// ErrEnvParse wraps environment parsing failures.
var ErrEnvParse = errors.New("failed to parse environment")

// DefaultDataSource is the upstream landscape catalog URL.
const DefaultDataSource = "https://raw.githubusercontent.com/cncf/landscape/master/landscape.yml"

// PostEnv is the post command's environment. A .env file in the working
// directory is merged in first, so local runs don't need exports.
type PostEnv struct {
	SlackBotToken  string `env:"SLACK_BOT_TOKEN"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID"`
	DataSource     string `env:"LANDSCAPE_DATA_SOURCE"`
	WorkdayOnly    bool   `env:"WORKDAY_ONLY"`
	ExtraHolidays  string `env:"ORIGINAL_HOLIDAYS"` // comma-separated YYYY-MM-DD
	CrunchbaseKey  string `env:"CRUNCHBASE_API_KEY"`
	IconBaseURL    string `env:"ICON_BASE_URL"`
	SiteBaseURL    string `env:"LANDSCAPE_SITE_BASE"`
}

// LoadPostEnv reads the posting environment. A missing .env file is not
// an error; exported variables alone are a valid setup.
func LoadPostEnv() (*PostEnv, error) {
	_ = godotenv.Load()

	var cfg PostEnv
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvParse, err)
	}

	if cfg.DataSource == "" {
		cfg.DataSource = DefaultDataSource
	}

	return &cfg, nil
}

// WorkdayGate builds the posting gate from the environment.
func (e *PostEnv) WorkdayGate() (workday.Gate, error) {
	extra, err := workday.ParseExtraHolidays(e.ExtraHolidays)
	if err != nil {
		return workday.Gate{}, err
	}
	return workday.Gate{Enabled: e.WorkdayOnly, ExtraHolidays: extra}, nil
}
