package bootstrap

import (
	"context"
	"errors"
	"log"

	"micro-automation-hub/internal/config"
	"micro-automation-hub/internal/controller"
	"micro-automation-hub/internal/handler"
	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/mailer"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/repository/memory"
	"micro-automation-hub/internal/repository/unitofwork"
	"micro-automation-hub/internal/service"
	"micro-automation-hub/internal/websocket"
	"micro-automation-hub/pkg/llm"
	"micro-automation-hub/pkg/llm/factory"
	pktNats "micro-automation-hub/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	activitySubject = "events.>"
	activityDurable = "activity-feed"
)

type Container struct {
	// Controllers
	AutomationController   controller.IAutomationController
	InsightController      controller.IInsightController
	RoadmapController      controller.IRoadmapController
	FeedbackController     controller.IFeedbackController
	FailureAtlasController controller.IFailureAtlasController
	ChatController         controller.IChatController
	WizardController       controller.IWizardController

	// Live feed
	LiveHandler  *handler.LiveHandler
	WebSocketHub *websocket.Hub

	// Background Services (started by Start)
	BroadcasterService service.IBroadcasterService
	ActivityService    service.IActivityService

	Logger logger.ILogger

	pubSub   *gochannel.GoChannel
	natsConn *pktNats.Conn
	natsSub  *pktNats.Subscriber
	rdb      *redis.Client
	wsLogger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
		)
	} else {
		sysLogger.Warn("Bootstrap", "SMTP not configured, steward notifications disabled", nil)
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. Infrastructure (all optional)
	natsConn, err := pktNats.Connect(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS, activity feed disabled", map[string]interface{}{"error": err.Error()})
	}

	// A nil *Publisher must not reach the service as a non-nil interface.
	var eventBus service.EventBus
	var natsSub *pktNats.Subscriber
	if natsConn != nil {
		eventBus = pktNats.NewPublisher(natsConn)
		natsSub = pktNats.NewSubscriber(natsConn)
	}

	rdb := connectRedis(cfg.App.RedisURL, sysLogger)

	// 4. LLM
	var llmProvider llm.LLMProvider
	llmProvider, err = factory.NewLLMProvider(factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		OpenAIAPIKey:  cfg.Ai.OpenAIAPIKey,
		OpenAIBaseURL: cfg.Ai.OpenAIBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			log.Printf("[WARN] Failed to initialize LLM Provider: %v", err)
		}
		sysLogger.Warn("Bootstrap", "Chat assistant disabled", map[string]interface{}{"provider": cfg.Ai.LLMProvider, "error": err.Error()})
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.LiveLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, service.LiveTopic, eventBus, sysLogger)
	broadcasterService := service.NewBroadcasterService(pubSub, service.LiveTopic, wsHub, wsLogger)
	activityService := service.NewActivityService(uowFactory, emailService, cfg.App.FeedbackStewardEmail, sysLogger)

	automationService := service.NewAutomationService(uowFactory)
	insightService := service.NewInsightService(uowFactory)
	roadmapService := service.NewRoadmapService(uowFactory)
	feedbackService := service.NewFeedbackService(uowFactory, publisherService, sysLogger)
	failureAtlasService := service.NewFailureAtlasService(uowFactory)
	chatService := service.NewChatService(llmProvider, cfg.Ai.ChatStreamTimeout, sysLogger)

	sessionTokens := serverutils.NewSessionTokens(cfg.App.JWTSecret, cfg.Wizard.TokenTTL)
	wizardSessions := memory.NewWizardSessionRepository(cfg.Wizard.SessionTTL)
	wizardService := service.NewWizardService(wizardSessions, sessionTokens, sysLogger)

	// 7. Controllers
	return &Container{
		AutomationController:   controller.NewAutomationController(automationService),
		InsightController:      controller.NewInsightController(insightService),
		RoadmapController:      controller.NewRoadmapController(roadmapService),
		FeedbackController:     controller.NewFeedbackController(feedbackService),
		FailureAtlasController: controller.NewFailureAtlasController(failureAtlasService),
		ChatController:         controller.NewChatController(chatService),
		WizardController:       controller.NewWizardController(wizardService, sessionTokens),

		LiveHandler:  handler.NewLiveHandler(wsHub, wizardSessions, wsLogger),
		WebSocketHub: wsHub,

		BroadcasterService: broadcasterService,
		ActivityService:    activityService,

		Logger: sysLogger,

		pubSub:   pubSub,
		natsConn: natsConn,
		natsSub:  natsSub,
		rdb:      rdb,
		wsLogger: wsLogger,
	}
}

func connectRedis(url string, log logger.ILogger) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("Bootstrap", "Failed to connect to Redis, live feed is local only", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Start launches the hub, the live broadcaster and the durable activity consumer.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if err := c.BroadcasterService.Consume(ctx); err != nil {
		return err
	}

	if c.natsSub != nil {
		if err := c.natsSub.Subscribe(ctx, activitySubject, activityDurable, c.ActivityService.HandleEvent); err != nil {
			c.Logger.Warn("Bootstrap", "Failed to subscribe activity feed", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

// Close releases infrastructure in reverse start order.
func (c *Container) Close() {
	if c.natsSub != nil {
		c.natsSub.Stop()
	}
	if c.natsConn != nil {
		c.natsConn.Close()
	}
	_ = c.pubSub.Close()
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	_ = c.wsLogger.Sync()
	_ = c.Logger.Sync()
}
