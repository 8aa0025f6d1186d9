package cmd

import (
	"errors"
	"log/slog"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger
	now     func() time.Time

	gormDB *gorm.DB
	pool   *pgxpool.Pool

	closer     func() error
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics

	pricing  services.PricingConfig
	workflow services.WorkflowConfig
	policy   services.AccessPolicy
}

// NewCompositionRoot wires the adapters around the given connections. Order
// events go to Kafka when KAFKA_HOST is set and are dropped otherwise.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	pool *pgxpool.Pool,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	pricing, pricingErr := configs.Pricing()
	workflow, workflowErr := configs.Workflow()
	if err := errors.Join(configs.Validate(), pricingErr, workflowErr); err != nil {
		return nil, err
	}

	var publisher ports.OrderEventPublisher = kafka.NopPublisher{}
	closer := func() error { return nil }
	if p := kafka.NewOrderPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic); p != nil {
		publisher = p
		closer = p.Close
	} else {
		logger.Warn("kafka is not configured, order events will not be published")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &CompositionRoot{
		configs:    configs,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		gormDB:     gormDB,
		pool:       pool,
		closer:     closer,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    metrics.New(registry),
		pricing:    pricing,
		workflow:   workflow,
		policy:     services.NewAccessPolicy(),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderReader serves the query side. It is not bound to a transaction and
// never writes, so nothing it touches is announced.
func (c *CompositionRoot) orderReader() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) catalogReader() ports.CatalogReader {
	return catalogrepo.NewGormCatalogReader(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (*commands.CreateOrderCommandHandler, error) {
	engine, err := services.NewPricingEngine(c.pricing)
	if err != nil {
		return nil, err
	}
	factory, err := services.NewOrderFactory(c.catalogReader(), engine, c.workflow, c.now)
	if err != nil {
		return nil, err
	}
	handler := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), factory, c.logger)
	return &handler, nil
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() (*commands.UpdateOrderStatusCommandHandler, error) {
	machine, err := services.NewStatusMachine(c.policy, c.workflow, c.now)
	if err != nil {
		return nil, err
	}
	handler := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.catalogReader(), machine, c.logger)
	return &handler, nil
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader(), c.catalogReader(), c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		c.orderReader(),
		c.catalogReader(),
		userrepo.NewPgxUserDirectory(c.pool),
		c.policy,
	)
}

// CreateHTTPServer builds the echo instance serving the order API together
// with /health, /metrics and /swagger.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	createOrder, err := c.CreateCreateOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	updateStatus, err := c.CreateUpdateOrderStatusCommandHandler()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(
		createOrder,
		updateStatus,
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.metrics,
		c.logger,
	)

	return httpin.NewRouter(server, httpin.RouterConfig{
		JWTSecret: []byte(c.configs.JWTSecret),
		Metrics:   c.metrics,
		Logger:    c.logger,
	})
}

// Close flushes the event publisher. Connections are owned by the caller.
func (c *CompositionRoot) Close() error {
	return c.closer()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
