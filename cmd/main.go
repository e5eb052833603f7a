package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-orders/docs"
	"github.com/SergeyBogomolovv/storefront-orders/internal/app"
	"github.com/SergeyBogomolovv/storefront-orders/internal/auth"
	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/SergeyBogomolovv/storefront-orders/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-orders/internal/repo"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// @title           Storefront Orders API
// @version         1.0
// @description     Заказы, оформление и приём уведомлений платёжного провайдера
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", postgres.Migrate(db))
		logger.Info("migrations applied")
	}

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	numbers := service.NewNumberAllocator(logger, orderRepo, conf.Checkout.OrderNumberFloor, conf.Checkout.FallbackPrefix)

	orderService := service.NewOrderService(logger, txManager, orderRepo, cache, numbers, conf.Checkout.CreateAttempts)

	provider := payment.NewClient(conf.Payment.BaseURL, conf.Payment.KeyID, conf.Payment.KeySecret, conf.Payment.RequestTimeout)
	notifier := notify.NewKafkaNotifier(logger, conf.Kafka)

	checkoutService := service.NewCheckoutService(logger, orderService, provider, service.CheckoutConfig{
		Shipping: service.ShippingRule{
			FreeAbove: decimal.NewFromFloat(conf.Checkout.FreeShippingAbove),
			Fee:       decimal.NewFromFloat(conf.Checkout.ShippingFee),
		},
		Currency:    conf.Payment.Currency,
		KeyID:       provider.KeyID(),
		KeySecret:   conf.Payment.KeySecret,
		CompanyName: conf.Payment.CompanyName,
	})
	reconciler := service.NewReconciler(logger, payment.NewVerifier(conf.Payment.WebhookSecret), orderService, notifier)
	sweeper := service.NewSweeper(logger, orderRepo, orderService, service.SweeperConfig{
		Interval:   conf.Sweeper.Interval,
		PendingTTL: conf.Sweeper.PendingTTL,
		BatchSize:  conf.Sweeper.BatchSize,
	})

	handler.RegisterMetrics()

	authenticator := auth.NewTokenAuthenticator(conf.Auth.AdminToken, conf.Auth.CustomerTokenSecret)
	app := app.New(logger, conf, authenticator)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewCheckoutHandler(logger, checkoutService),
		handler.NewWebhookHandler(logger, reconciler, conf.Payment.SignatureHeader),
	)
	app.SetStarters(cache, sweeper, cacheWarmUpAdapter{logger: logger, svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

// Ошибка прогрева не должна останавливать остальные фоновые задачи.
type cacheWarmUpAdapter struct {
	logger *slog.Logger
	svc    warmUpper
	count  int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if err := a.svc.WarmUpCache(ctx, a.count); err != nil {
		a.logger.Warn("cache warm up failed", slog.Any("error", err))
	}
	return nil
}
