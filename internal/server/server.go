package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/eskrenkovic/product-catalog-go/internal/config"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/core"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/product"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/product/commands"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/product/queries"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server          *http.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(config config.Config) (Server, error) {
	core.SetLogger(config.Logger)

	store, err := newProductStore(config)
	if err != nil {
		return nil, err
	}

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	err = mediator.RegisterRequestHandler[queries.ListProductsQuery, queries.ListProductsResponse](
		queries.NewListProductsQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[queries.GetProductQuery, any](
		queries.NewGetProductQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[commands.CreateProductCommand, commands.CreateProductResponse](
		commands.NewCreateProductCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[commands.UpdateProductCommand, any](
		commands.NewUpdateProductCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[commands.DeleteProductCommand, core.Unit](
		commands.NewDeleteProductCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	// http

	router := chi.NewRouter()
	router.Use(core.CorrelationIDMiddleware)
	router.Use(core.RecoveryMiddleware(config.Logger))

	// Both version groups register the identical operation set; only the
	// projection differs.
	router.Route("/api/v1/products", productRoutes(product.V1))
	router.Route("/api/v2/products", productRoutes(product.V2))

	server := http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: router,
	}

	return &HTTPServer{
		server:          &server,
		logger:          config.Logger,
		shutdownTimeout: config.ShutdownTimeout,
	}, nil
}

func productRoutes(version product.APIVersion) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", queries.HandleListProducts(version))
		r.Get("/{id}", queries.HandleGetProduct(version))
		r.Post("/", commands.HandleCreateProduct(version))
		r.Put("/{id}", commands.HandleUpdateProduct(version))
		r.Delete("/{id}", commands.HandleDeleteProduct())
	}
}

func newProductStore(config config.Config) (product.ProductStore, error) {
	if config.StoreBackend == "postgres" {
		db, err := sqlx.Connect("postgres", config.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "connect to postgres")
		}

		if err := migrate.Run(context.Background(), db.DB, config.MigrationsPath); err != nil {
			return nil, errors.Wrap(err, "run migrations")
		}

		return product.NewPostgresStore(db), nil
	}

	store := product.NewMemoryStore()
	if config.SeedDemoData {
		if err := seedDemoData(store); err != nil {
			return nil, errors.Wrap(err, "seed demo data")
		}
	}

	return store, nil
}

func seedDemoData(store *product.MemoryStore) error {
	demo := []product.Product{
		{Name: "Apple", Price: 10},
		{Name: "Banana", Price: 5},
		{Name: "Laptop", Price: 600},
		{Name: "Phone", Price: 400},
	}

	for _, p := range demo {
		if _, err := store.Add(context.Background(), p); err != nil {
			return err
		}
	}

	return nil
}

func (s *HTTPServer) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
