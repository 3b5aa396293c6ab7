package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/stylesphere-storefront/internal/admin"
	"github.com/wichananm65/stylesphere-storefront/internal/auth"
	"github.com/wichananm65/stylesphere-storefront/internal/banner"
	"github.com/wichananm65/stylesphere-storefront/internal/brand"
	"github.com/wichananm65/stylesphere-storefront/internal/cart"
	"github.com/wichananm65/stylesphere-storefront/internal/category"
	"github.com/wichananm65/stylesphere-storefront/internal/config"
	"github.com/wichananm65/stylesphere-storefront/internal/mockdata"
	"github.com/wichananm65/stylesphere-storefront/internal/notification"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
	"github.com/wichananm65/stylesphere-storefront/internal/product"
	"github.com/wichananm65/stylesphere-storefront/internal/recommended"
	"github.com/wichananm65/stylesphere-storefront/internal/storefront"
	"github.com/wichananm65/stylesphere-storefront/internal/tracking"
	"github.com/wichananm65/stylesphere-storefront/internal/tryon"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
	"github.com/wichananm65/stylesphere-storefront/internal/wishlist"
	logx "github.com/wichananm65/stylesphere-storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load config")
	}
	logx.Init(logx.LoggerOpts{Production: cfg.Env().IsProduction()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to create token issuer")
	}

	productService := product.NewService(product.NewInMemoryRepository(mockdata.Products()))
	userService := user.NewService(user.NewInMemoryRepository(mockdata.Customers()))

	cartRepo, closeCart := openCartRepository(ctx, cfg)
	defer closeCart()
	orderRepo, closeOrders := openOrderRepository(ctx, cfg)
	defer closeOrders()

	sf := storefront.NewService(storefront.Deps{
		Sessions: storefront.NewInMemorySessionStore(),
		Users:    userService,
		Products: productService,
		Cart:     cart.NewService(cartRepo),
		Wishlist: wishlist.NewService(wishlist.NewInMemoryRepository(), productService),
		Orders:   order.NewService(orderRepo),
		Toasts:   notification.NewCenter(cfg.ToastDuration),
		Logs:     notification.NewLogBook(mockdata.NotificationLogs(), cfg.LogResend),
		Tracking: tracking.NewService(tracking.DefaultEvents(), cfg.TrackingResend),
		TryOn:    tryon.NewService(cfg.TryOnWarmup),
	}, storefront.Options{
		OrderPrefix:      cfg.OrderPrefix,
		DiscountDelay:    cfg.DiscountDelay,
		DiscountDuration: cfg.DiscountDuration,
	})
	sfHandler := storefront.NewHandler(sf, issuer, mockdata.PaymentMethods())

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	setupCORS(app)
	app.Use(logx.RequestLogger())
	app.Use(recover.New())

	product.NewHandler(productService).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService(productService)).RegisterPublicRoutes(app)
	banner.NewHandler(banner.NewService(productService)).RegisterPublicRoutes(app)
	sfHandler.RegisterPublicRoutes(app)

	app.Use(issuer.Middleware())

	sfHandler.RegisterProtectedRoutes(app)
	recommended.NewHandler(recommended.NewService(productService), sfHandler.CurrentUser).RegisterProtectedRoutes(app)

	// the admin order queue is its own seeded store, separate from customer orders
	adminHandler := admin.NewHandler(
		admin.NewInventory(admin.SeedInventory()),
		admin.NewCoupons(admin.SeedCoupons()),
		order.NewService(order.NewInMemoryRepository(admin.SeedOrderQueue())),
		admin.NewSettingsStore(admin.DefaultSettings(), cfg.SettingsSaved),
	)
	adminHandler.RegisterRoutes(app.Group("/api/v1/admin", sfHandler.RequireScreen(storefront.ScreenAdmin)))

	brandHandler := brand.NewHandler(brand.NewStorefronts(), brand.NewInventory(brand.SeedProducts()), sfHandler.CurrentUser)
	brandHandler.RegisterRoutes(app.Group("/api/v1/brand", sfHandler.RequireScreen(storefront.ScreenBrandPartner)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logx.Info().Str("addr", cfg.Addr).Str("env", cfg.Env().String()).Msg("starting storefront")
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		return sf.RunSweeper(gctx, cfg.SessionSweep, cfg.TokenTTL)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logx.Error().Err(err).Msg("server stopped")
	}
	logx.Info().Msg("storefront shut down")
}

// openCartRepository uses Redis when REDIS_URL is set and memory otherwise.
func openCartRepository(ctx context.Context, cfg config.Config) (cart.Repository, func()) {
	if !cfg.Redis.Enabled() {
		return cart.NewInMemoryRepository(), func() {}
	}
	client, err := cfg.Redis.New(ctx)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to connect to redis")
	}
	logx.Info().Msg("cart store: redis")
	return cart.NewRedisRepository(client, cfg.CartTTL), func() { _ = client.Close() }
}

// openOrderRepository uses Postgres when DATABASE_URL is set and memory otherwise.
// Both are seeded with the demo order history.
func openOrderRepository(ctx context.Context, cfg config.Config) (order.Repository, func()) {
	if cfg.DatabaseURL == "" {
		return order.NewInMemoryRepository(mockdata.Orders()), func() {}
	}
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to open database")
	}
	if err := db.PingContext(ctx); err != nil {
		logx.Fatal().Err(err).Msg("failed to reach database")
	}

	repo := order.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logx.Fatal().Err(err).Msg("failed to create orders schema")
	}
	if err := repo.Seed(ctx, mockdata.Orders()); err != nil {
		logx.Warn().Err(err).Msg("order seed failed")
	}
	logx.Info().Msg("order store: postgres")
	return repo, func() { _ = db.Close() }
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(code).JSON(fiber.Map{"message": "internal server error"})
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
