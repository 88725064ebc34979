package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ethiocodes/nexora/internal/config"
	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/http/handlers"
	"github.com/ethiocodes/nexora/internal/infra/http/middleware"
	"github.com/ethiocodes/nexora/internal/infra/integration/whatsapp"
	"github.com/ethiocodes/nexora/internal/infra/mail"
	"github.com/ethiocodes/nexora/internal/infra/memory"
	"github.com/ethiocodes/nexora/internal/infra/notify"
	"github.com/ethiocodes/nexora/internal/infra/queue"
	"github.com/ethiocodes/nexora/internal/infra/worker"
	"github.com/ethiocodes/nexora/internal/logger"
	"github.com/ethiocodes/nexora/internal/usecase"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Store em memória
	seed := memory.ContentSeed()
	if cfg.SeedMockData {
		seed = memory.MockSeed()
	}
	store := memory.NewStore(seed)

	// 2. Gateway de notificação
	var (
		gateway  usecase.NotificationGateway
		rabbitMQ *queue.RabbitMQ
	)
	switch cfg.NotifyDriver {
	case config.NotifySMTP:
		gateway = newChannels(cfg, logg)
	case config.NotifyRabbitMQ:
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
		if err != nil {
			logg.Fatal("rabbitmq unavailable", zap.Error(err))
		}
		defer rabbitMQ.Close()

		gateway = queue.NewProducer(rabbitMQ.Ch, logg.Named("producer"))

		consumer := queue.NewWorker(rabbitMQ.Ch, newChannels(cfg, logg), logg.Named("worker"))
		go func() {
			if err := consumer.Start(ctx, queue.QueueName); err != nil {
				logg.Error("queue worker stopped", zap.Error(err))
			}
		}()
	default:
		gateway = notify.NewSimulatedGateway(cfg.NotifyDelay, logg.Named("notify"))
	}

	// 3. UseCases
	leadUC := usecase.NewLeadUseCase(store.Leads, logg.Named("leads"))
	bookingUC := usecase.NewBookingUseCase(store.Bookings, store.Leads, logg.Named("bookings"))
	serviceUC := usecase.NewServiceUseCase(store.Services, logg.Named("services"))
	blogUC := usecase.NewBlogUseCase(store.Posts, logg.Named("blog"))
	testimonialUC := usecase.NewTestimonialUseCase(store.Testimonials, logg.Named("testimonials"))
	crmLog := usecase.NewCRMLog(store.Leads, gateway, logg.Named("crm"))
	statsUC := usecase.NewStatsUseCase(store.Leads, store.Bookings, store.Services, store.Posts)
	view := usecase.NewViewController(store.Leads)
	gate := usecase.NewAuthGate(cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL, logg.Named("auth"))

	// 4. Workers
	stale := worker.NewStaleLeadWorker(store.Leads, cfg.StaleLeadAfter, logg.Named("stale-leads"), middleware.SetStaleLeads)
	go stale.Start(ctx)

	limiter := handlers.NewRateLimiter(10, time.Minute) // 10 req/min por IP
	go limiter.Cleanup(ctx.Done())

	// 5. Handlers
	// *RabbitMQ nil dentro da interface não seria nil
	var health *handlers.HealthHandler
	if rabbitMQ != nil {
		health = handlers.NewHealthHandler(version, cfg.NotifyDriver, rabbitMQ)
	} else {
		health = handlers.NewHealthHandler(version, cfg.NotifyDriver, nil)
	}

	router := newRouter(routeHandlers{
		Health:      health,
		Auth:        handlers.NewAuthHandler(gate),
		Leads:       handlers.NewLeadHandler(leadUC, crmLog, limiter),
		CRM:         handlers.NewCRMHandler(crmLog),
		Bookings:    handlers.NewBookingHandler(bookingUC),
		Services:    handlers.NewServiceHandler(serviceUC),
		Blog:        handlers.NewBlogHandler(blogUC),
		Testimonial: handlers.NewTestimonialHandler(testimonialUC),
		Content: handlers.NewContentHandler(usecase.SiteContent{
			Features: store.Features,
			Pricing:  store.Pricing,
			FAQs:     store.FAQs,
		}),
		Calendar:  handlers.NewCalendarHandler(cfg.CalendarInviteEmail),
		Dashboard: handlers.NewDashboardHandler(statsUC),
		View:      handlers.NewViewHandler(view),
	}, gate, cfg.CORSOrigins)

	// 6. Servidor
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logg.Info("🔥 NEXORA admin API listening",
			zap.String("addr", srv.Addr),
			zap.String("notify_driver", cfg.NotifyDriver),
			zap.Bool("mock_data", cfg.SeedMockData))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("⚠️ shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newChannels liga email ao SMTP e sms ao WhatsApp (quando configurado).
func newChannels(cfg *config.Config, logg *zap.Logger) *notify.Router {
	sender := mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	router := notify.NewRouter(logg.Named("notify")).Handle(entity.InteractionEmail, sender)

	wa := whatsapp.NewClient(cfg.WhatsApp.AccessToken, cfg.WhatsApp.PhoneID, cfg.WhatsApp.BaseURL, logg.Named("whatsapp"))
	if wa.Configured() {
		router.Handle(entity.InteractionSMS, wa)
	} else {
		logg.Info("WhatsApp not configured, sms interactions are recorded only")
	}
	return router
}
