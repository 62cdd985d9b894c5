package app

import (
	"context"
	"flag"
	"log/slog"
	"sync"

	"github.com/Lina3386/accounting-bot/internal/closer"
	"github.com/Lina3386/accounting-bot/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config-path", ".env", "path to config file")
}

type App struct {
	serviceProvider *ServiceProvider
	bot             *tgbotapi.BotAPI
}

func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Run обрабатывает обновления до отмены ctx
func (a *App) Run(ctx context.Context) error {
	defer func() {
		closer.CloseAll()
		closer.Wait()
	}()

	scheduler := a.serviceProvider.Scheduler(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.Start(ctx)
	}()

	err := a.runTelegramBot(ctx)
	wg.Wait()
	return err
}

func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initServiceProvider,
		a.initTelegramBot,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) initConfig(context.Context) error {
	return config.Load(configPath)
}

func (a *App) initServiceProvider(context.Context) error {
	a.serviceProvider = NewServiceProvider()
	return nil
}

func (a *App) initTelegramBot(ctx context.Context) error {
	// до первого сообщения: отсутствие переменных должно остановить запуск
	a.serviceProvider.AccountingConfig()

	bot, err := a.serviceProvider.TelegramBot(ctx)
	if err != nil {
		return err
	}
	a.bot = bot
	return nil
}

// runTelegramBot запускает по горутине на каждое обновление и
// при остановке ждет, пока обработчики закончат.
func (a *App) runTelegramBot(ctx context.Context) error {
	logger := a.serviceProvider.Logger()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := a.bot.GetUpdatesChan(u)
	logger.Info("bot is running")

	botHandler := a.serviceProvider.BotHandler(ctx)

	var inFlight sync.WaitGroup
	defer inFlight.Wait()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			a.bot.StopReceivingUpdates()
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil && update.Message.From != nil {
				logger.Debug("update received",
					slog.Int("update_id", update.UpdateID),
					slog.Int64("user_id", update.Message.From.ID),
				)
			}

			inFlight.Add(1)
			go func(update tgbotapi.Update) {
				defer inFlight.Done()
				botHandler.HandleUpdate(ctx, update)
			}(update)
		}
	}
}
