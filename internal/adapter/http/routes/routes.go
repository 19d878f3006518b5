package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "tracker_orders/docs" // generated by swag init
	"tracker_orders/internal/adapter/cache"
	"tracker_orders/internal/adapter/http/handlers"
	"tracker_orders/internal/adapter/http/middleware"
	"tracker_orders/internal/adapter/persistence/repository"
	"tracker_orders/internal/config"
	"tracker_orders/internal/infrastructure/database"
	"tracker_orders/internal/infrastructure/payments"
	"tracker_orders/internal/logging"
	"tracker_orders/internal/usecase"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const startupTimeout = 15 * time.Second

var (
	router = gin.New()
	log    = logging.For("app", "routes")
)

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	closeDeps, err := getRoutes(cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}
	defer closeDeps()

	log.Infof("listening addr=%s store=%s", cfg.App.HTTPAddr, cfg.Store.Driver)
	if err := router.Run(cfg.App.HTTPAddr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	repo, closeRepo, err := newOrderRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	orderCache, closeCache, err := newOrderCache(ctx, cfg)
	if err != nil {
		closeRepo()
		return nil, err
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		log.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(repo, orderCache, paymentGateway)
	orderHandler := handlers.NewOrderHandler(orderUseCase, cfg.Currencies)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)

	return func() {
		closeCache()
		closeRepo()
	}, nil
}

func newOrderRepository(ctx context.Context, cfg config.Config) (interfaces.IOrderRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewOrderDynamoRepository(ddb, cfg.AWS.OrdersTable), func() {}, nil
	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo, err := repository.NewOrderPostgresRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, func() { _ = db.Close() }, nil
	case config.StoreMemory:
		log.Warnf("using in-memory order store, data is lost on restart")
		return repository.NewOrderMemoryRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// newOrderCache returns a nil interface when caching is disabled so the use
// case falls back to the repository.
func newOrderCache(ctx context.Context, cfg config.Config) (interfaces.IOrderCache, func(), error) {
	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if rdb == nil {
		return nil, func() {}, nil
	}
	return cache.NewRedisOrderCache(rdb, cfg.Redis.TTL), func() { _ = rdb.Close() }, nil
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.From(c, log).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger(logging.For("http", "access")))
}
