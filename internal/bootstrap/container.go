package bootstrap

import (
	"log"

	"astro-chat-be/internal/config"
	"astro-chat-be/internal/controller"
	"astro-chat-be/internal/pkg/logger"
	"astro-chat-be/internal/repository/memory"
	"astro-chat-be/internal/repository/unitofwork"
	"astro-chat-be/internal/service"
	"astro-chat-be/pkg/astro"
	"astro-chat-be/pkg/events"
	"astro-chat-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController  controller.IUserController
	ChartController controller.IChartController
	BotController   controller.IBotController
	ChatController  controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain Infrastructure
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	chartEngine := astro.NewScriptEngine(
		cfg.Engine.Interpreter,
		cfg.Engine.ScriptPath,
		cfg.Engine.Timeout,
	)

	botCatalog := memory.NewBotCatalog()

	// 4. Services
	publisherService := service.NewPublisherService(events.UserActivityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		events.UserActivityTopic,
		uowFactory,
		sysLogger,
	)

	userService := service.NewUserService(uowFactory, publisherService, sysLogger)
	chartService := service.NewChartService(uowFactory, chartEngine, publisherService, sysLogger)
	botService := service.NewBotService(botCatalog)
	chatService := service.NewChatService(uowFactory, botCatalog, llmProvider, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		UserController:  controller.NewUserController(userService),
		ChartController: controller.NewChartController(chartService),
		BotController:   controller.NewBotController(botService),
		ChatController:  controller.NewChatController(chatService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
