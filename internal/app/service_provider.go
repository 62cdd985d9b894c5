package app

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/Lina3386/accounting-bot/internal/client"
	"github.com/Lina3386/accounting-bot/internal/closer"
	"github.com/Lina3386/accounting-bot/internal/config"
	"github.com/Lina3386/accounting-bot/internal/config/env"
	"github.com/Lina3386/accounting-bot/internal/handlers"
	"github.com/Lina3386/accounting-bot/internal/logging"
	"github.com/Lina3386/accounting-bot/internal/services"
	"github.com/Lina3386/accounting-bot/internal/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceProvider struct {
	botConfig        config.BotConfig
	accountingConfig config.AccountingConfig
	logConfig        config.LogConfig
	digestConfig     config.DigestConfig

	logger *slog.Logger

	// Clients
	accountingClient *client.AccountingClient
	chatClient       *client.ChatClient

	// State
	sessionStore *state.InMemorySessionStore

	// Services
	scheduler *services.Scheduler

	// Handlers
	botHandler *handlers.BotHandler

	// Bot
	bot *tgbotapi.BotAPI
}

func NewServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (s *ServiceProvider) BotConfig() config.BotConfig {
	if s.botConfig == nil {
		botConfig, err := env.NewBotConfig()
		if err != nil {
			log.Fatalf("failed to get bot config: %v", err)
		}
		s.botConfig = botConfig
	}
	return s.botConfig
}

func (s *ServiceProvider) AccountingConfig() config.AccountingConfig {
	if s.accountingConfig == nil {
		accountingConfig, err := env.NewAccountingConfig()
		if err != nil {
			log.Fatalf("failed to get accounting config: %v", err)
		}
		s.accountingConfig = accountingConfig
	}
	return s.accountingConfig
}

func (s *ServiceProvider) LogConfig() config.LogConfig {
	if s.logConfig == nil {
		logConfig, err := env.NewLogConfig()
		if err != nil {
			log.Fatalf("failed to get log config: %v", err)
		}
		s.logConfig = logConfig
	}
	return s.logConfig
}

func (s *ServiceProvider) DigestConfig() config.DigestConfig {
	if s.digestConfig == nil {
		digestConfig, err := env.NewDigestConfig()
		if err != nil {
			log.Fatalf("failed to get digest config: %v", err)
		}
		s.digestConfig = digestConfig
	}
	return s.digestConfig
}

func (s *ServiceProvider) Logger() *slog.Logger {
	if s.logger == nil {
		logger, logCloser, err := logging.New(s.LogConfig())
		if err != nil {
			log.Fatalf("failed to init logger: %v", err)
		}
		closer.Add(logCloser.Close)
		s.logger = logger
	}
	return s.logger
}

func (s *ServiceProvider) AccountingClient() *client.AccountingClient {
	if s.accountingClient == nil {
		s.accountingClient = client.NewAccountingClient(s.AccountingConfig(), &http.Client{})
	}
	return s.accountingClient
}

func (s *ServiceProvider) SessionStore() *state.InMemorySessionStore {
	if s.sessionStore == nil {
		s.sessionStore = state.NewInMemorySessionStore()
	}
	return s.sessionStore
}

func (s *ServiceProvider) TelegramBot(ctx context.Context) (*tgbotapi.BotAPI, error) {
	if s.bot == nil {
		bot, err := tgbotapi.NewBotAPI(s.BotConfig().Token())
		if err != nil {
			return nil, err
		}
		bot.Debug = s.BotConfig().Debug()
		s.Logger().Info("bot authorized", slog.String("bot", bot.Self.UserName))
		s.bot = bot
	}
	return s.bot, nil
}

func (s *ServiceProvider) ChatClient(ctx context.Context) *client.ChatClient {
	if s.chatClient == nil {
		bot, err := s.TelegramBot(ctx)
		if err != nil {
			log.Fatalf("failed to create bot: %v", err)
		}
		s.chatClient = client.NewChatClient(bot)
	}
	return s.chatClient
}

func (s *ServiceProvider) Scheduler(ctx context.Context) *services.Scheduler {
	if s.scheduler == nil {
		s.scheduler = services.NewScheduler(
			s.ChatClient(ctx),
			s.AccountingClient(),
			s.SessionStore(),
			s.DigestConfig(),
			s.Logger().With(slog.String("component", "scheduler")),
		)
	}
	return s.scheduler
}

func (s *ServiceProvider) BotHandler(ctx context.Context) *handlers.BotHandler {
	if s.botHandler == nil {
		s.botHandler = handlers.NewBotHandler(
			s.ChatClient(ctx),
			s.AccountingClient(),
			s.SessionStore(),
			s.Logger().With(slog.String("component", "bot_handler")),
		)
	}
	return s.botHandler
}
