package telegram

import (
	"context"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/flighthub/pkg/logger"
)

const defaultListLimit = 10

func New(
	log logger.Logger,
	conf Config,
	dash dashboardApi,
	cache cacheView,
	positions liveApi,
	theme themeApi,
) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if conf.ListLimit <= 0 {
		conf.ListLimit = defaultListLimit
	}
	return &Bot{
		bot:   b,
		dash:  dash,
		cache: cache,
		live:  positions,
		theme: theme,
		limit: conf.ListLimit,
		log:   log.With("telegram"),
	}, err
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	dash  dashboardApi
	cache cacheView
	live  liveApi
	theme themeApi

	limit int
	log   logger.Logger
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.setupHandlers()
	go b.bot.Start()
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
