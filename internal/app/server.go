// internal/app/server.go
package app

import (
	"log"

	"motorscout-service/internal/config"
	appointmentHandler "motorscout-service/internal/handlers/appointment"
	geocodeHandler "motorscout-service/internal/handlers/geocode"
	inventoryHandler "motorscout-service/internal/handlers/inventory"
	listingsHandler "motorscout-service/internal/handlers/listings"
	toolsHandler "motorscout-service/internal/handlers/tools"
	"motorscout-service/internal/middleware"
	"motorscout-service/internal/pkg/geo"
	"motorscout-service/internal/provider"
	appointmentUsecase "motorscout-service/internal/service/appointment"
	searchUsecase "motorscout-service/internal/service/search"
	"motorscout-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Geocoder -----
	geocoder := geo.NewNominatimGeocoder(s.cfg.NominatimURL, s.cfg.GeocodeUserAgent, logger)

	// ----- Listings Providers -----
	primary := provider.New(provider.Config{
		Provider:          s.cfg.ListingsProvider,
		MarketCheckURL:    s.cfg.MarketCheckURL,
		MarketCheckAPIKey: s.cfg.MarketCheckAPIKey,
	}, logger)
	offline := provider.NewOfflineProvider()
	logger.Info("listings provider configured",
		zap.String("provider", primary.Name()),
		zap.Bool("offline_fallback", s.cfg.OfflineFallback),
	)

	// ----- Services (Usecases) -----
	searchService := searchUsecase.NewSearchService(primary, offline, geocoder, s.cfg.OfflineFallback, logger)
	appointmentService := appointmentUsecase.NewAppointmentService(logger)

	// ----- Handlers -----
	inventoryHandlerInst := inventoryHandler.NewInventoryHandler(searchService)
	listingsHandlerInst := listingsHandler.NewListingsHandler(searchService)
	geocodeHandlerInst := geocodeHandler.NewGeocodeHandler(geocoder)
	toolsHandlerInst := toolsHandler.NewToolsHandler(searchService, appointmentService)
	appointmentHandlerInst := appointmentHandler.NewAppointmentHandler(appointmentService)
	chatHandlerInst := websocket.NewChatHandler(searchService, appointmentService, logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		InventoryHandler:   inventoryHandlerInst,
		ListingsHandler:    listingsHandlerInst,
		GeocodeHandler:     geocodeHandlerInst,
		ToolsHandler:       toolsHandlerInst,
		AppointmentHandler: appointmentHandlerInst,
		ChatHandler:        chatHandlerInst,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
