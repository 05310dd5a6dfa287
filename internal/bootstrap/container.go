package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"outfix-be/internal/config"
	"outfix-be/internal/constant"
	"outfix-be/internal/controller"
	"outfix-be/internal/pkg/logger"
	"outfix-be/internal/repository/memory"
	"outfix-be/internal/service"
	"outfix-be/pkg/events"
	"outfix-be/pkg/stylist/typist"
	"outfix-be/pkg/vision"
	"outfix-be/pkg/vision/demo"
	"outfix-be/pkg/vision/gate"
	"outfix-be/pkg/vision/gemini"
)

type Container struct {
	// Controllers
	CatalogController   controller.ICatalogController
	AssistantController controller.IAssistantController
	TryOnController     controller.ITryOnController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	boxRepo := memory.NewBoxRepository()
	wardrobeRepo := memory.NewWardrobeRepository()
	testimonialRepo := memory.NewTestimonialRepository()
	sessionRepo := memory.NewSessionRepository()

	// 4. Style Provider based on Config
	var styleProvider vision.StyleProvider
	if cfg.Style.DemoMode {
		styleProvider = demo.NewProvider(constant.Categories[1:])
		log.Printf("[INFO] Using Style Provider: DEMO")
	} else {
		callGate := gate.New(cfg.Style.MinCallInterval, nil)
		styleProvider = gemini.NewProvider(cfg.Style.GeminiAPIKey, callGate, log.Default())
		if cfg.Style.GeminiAPIKey == "" {
			log.Printf("[WARN] GOOGLE_GEMINI_API_KEY not set: style analysis disabled, try-on will simulate")
		} else {
			log.Printf("[INFO] Using Style Provider: GEMINI")
		}
	}

	// 5. Services
	publisher := events.NewPublisher(pubSub)
	consumerService := service.NewConsumerService(pubSub, sessionRepo, sysLogger)

	catalogService := service.NewCatalogService(boxRepo, testimonialRepo)
	assistantService := service.NewAssistantService(
		sessionRepo,
		boxRepo,
		wardrobeRepo,
		styleProvider,
		publisher,
		typist.New(),
		sysLogger,
	)
	tryOnService := service.NewTryOnService(boxRepo, styleProvider, sysLogger)

	// 6. Controllers
	return &Container{
		CatalogController:   controller.NewCatalogController(catalogService),
		AssistantController: controller.NewAssistantController(assistantService),
		TryOnController:     controller.NewTryOnController(tryOnService),

		ConsumerService: consumerService,
	}
}
