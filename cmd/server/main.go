package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gibugumi/cms/internal/config"
	"github.com/gibugumi/cms/internal/handler"
	"github.com/gibugumi/cms/internal/i18n"
	"github.com/gibugumi/cms/internal/logging"
	"github.com/gibugumi/cms/internal/mailer"
	"github.com/gibugumi/cms/internal/queue"
	"github.com/gibugumi/cms/internal/repository"
	"github.com/gibugumi/cms/internal/service"
	"github.com/gibugumi/cms/internal/spam"
	"github.com/gibugumi/cms/internal/storage"
	"github.com/gibugumi/cms/internal/web"
	"github.com/gibugumi/cms/pkg/auth"
)

func main() {
	cfg := config.Load()
	logging.Setup()

	ctx := context.Background()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("database connect failed", "error", err)
	}
	defer pool.Close()

	rdb, err := repository.NewRedis(cfg.RedisURL)
	if err != nil {
		logging.Fatal("redis connect failed", "error", err)
	}
	defer rdb.Close()

	bundle, err := i18n.Load(cfg.DefaultLocale)
	if err != nil {
		logging.Fatal("i18n load failed", "error", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logging.Fatal("template parse failed", "error", err)
	}

	// repositories
	pageRepo := repository.NewPgPageRepository(pool)
	serviceRepo := repository.NewPgServiceRepository(pool)
	testimonialRepo := repository.NewPgTestimonialRepository(pool)
	socialLinkRepo := repository.NewPgSocialLinkRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	// contact pipeline collaborators
	sessionSecret := auth.SessionSecretBytes(cfg.SessionSecret)
	gate := spam.NewGate(sessionSecret, cfg.Spam.Threshold)

	var dispatcher mailer.Dispatcher
	if cfg.Mail.Enabled() {
		dispatcher = mailer.NewMailgunDispatcher(cfg.Mail, bundle, nil)
	} else {
		slog.Warn("mailgun not configured; outbound mail is logged only")
		dispatcher = mailer.LogDispatcher{}
	}

	confirmationQueue := queue.NewRedisQueue(rdb)
	worker := queue.NewWorker(confirmationQueue, dispatcher)

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	go worker.Run(workerCtx)

	// services
	contactService := service.NewContactService(contactRepo, gate, dispatcher, confirmationQueue)
	contentService := service.NewContentService(serviceRepo, testimonialRepo, pageRepo, socialLinkRepo)
	authService := service.NewAuthService(adminRepo)

	store := storage.NewLocalStorage(cfg.UploadsDir, "/uploads")

	// handlers
	views := handler.NewViewBuilder(renderer, bundle, socialLinkRepo)
	publicHandler := handler.NewPublicHandler(contentService, views)
	contactHandler := handler.NewContactHandler(contactService, gate, views)
	healthHandler := handler.NewHealthHandler(pool, rdb, cfg.Version)
	adminAuthHandler := handler.NewAdminAuthHandler(authService, sessionSecret, views)
	dashboardHandler := handler.NewAdminDashboardHandler(pageRepo, serviceRepo, testimonialRepo, contactRepo, views)
	adminPagesHandler := handler.NewAdminPagesHandler(pageRepo, views)
	adminServicesHandler := handler.NewAdminServicesHandler(serviceRepo, store, views)
	adminTestimonialsHandler := handler.NewAdminTestimonialsHandler(testimonialRepo, store, views)
	adminSocialLinksHandler := handler.NewAdminSocialLinksHandler(socialLinkRepo, views)
	adminContactsHandler := handler.NewAdminContactsHandler(contactRepo, views)

	contactLimiter := handler.NewRateLimiter(cfg.ContactRateLimit)

	mux := http.NewServeMux()

	// public site
	mux.HandleFunc("GET /{$}", publicHandler.Home)
	mux.HandleFunc("GET /about", publicHandler.About)
	mux.HandleFunc("GET /services", publicHandler.Services)
	mux.HandleFunc("GET /testimonials", publicHandler.Testimonials)
	mux.HandleFunc("GET /pages/{slug}", publicHandler.Page)

	// contact flow
	mux.HandleFunc("GET /contact-form", contactHandler.New)
	mux.Handle("POST /contact-messages", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Create)))

	// health
	mux.HandleFunc("GET /health", healthHandler.Show)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health/live", healthHandler.Live)

	// admin session
	mux.HandleFunc("GET /admin/login", adminAuthHandler.LoginForm)
	mux.HandleFunc("POST /admin/login", adminAuthHandler.Login)
	mux.HandleFunc("POST /admin/logout", adminAuthHandler.Logout)

	// admin back-office（セッション必須）
	wrapAdmin := auth.RequireAdmin(sessionSecret)
	mux.Handle("GET /admin", wrapAdmin(http.HandlerFunc(dashboardHandler.Index)))

	mux.Handle("GET /admin/pages", wrapAdmin(http.HandlerFunc(adminPagesHandler.Index)))
	mux.Handle("GET /admin/pages/new", wrapAdmin(http.HandlerFunc(adminPagesHandler.New)))
	mux.Handle("POST /admin/pages", wrapAdmin(http.HandlerFunc(adminPagesHandler.Create)))
	mux.Handle("GET /admin/pages/{id}/edit", wrapAdmin(http.HandlerFunc(adminPagesHandler.Edit)))
	mux.Handle("POST /admin/pages/{id}", wrapAdmin(http.HandlerFunc(adminPagesHandler.Update)))
	mux.Handle("POST /admin/pages/{id}/delete", wrapAdmin(http.HandlerFunc(adminPagesHandler.Delete)))

	mux.Handle("GET /admin/services", wrapAdmin(http.HandlerFunc(adminServicesHandler.Index)))
	mux.Handle("GET /admin/services/new", wrapAdmin(http.HandlerFunc(adminServicesHandler.New)))
	mux.Handle("POST /admin/services", wrapAdmin(http.HandlerFunc(adminServicesHandler.Create)))
	mux.Handle("GET /admin/services/{id}/edit", wrapAdmin(http.HandlerFunc(adminServicesHandler.Edit)))
	mux.Handle("POST /admin/services/{id}", wrapAdmin(http.HandlerFunc(adminServicesHandler.Update)))
	mux.Handle("POST /admin/services/{id}/delete", wrapAdmin(http.HandlerFunc(adminServicesHandler.Delete)))

	mux.Handle("GET /admin/testimonials", wrapAdmin(http.HandlerFunc(adminTestimonialsHandler.Index)))
	mux.Handle("GET /admin/testimonials/new", wrapAdmin(http.HandlerFunc(adminTestimonialsHandler.New)))
	mux.Handle("POST /admin/testimonials", wrapAdmin(http.HandlerFunc(adminTestimonialsHandler.Create)))
	mux.Handle("GET /admin/testimonials/{id}/edit", wrapAdmin(http.HandlerFunc(adminTestimonialsHandler.Edit)))
	mux.Handle("POST /admin/testimonials/{id}", wrapAdmin(http.HandlerFunc(adminTestimonialsHandler.Update)))
	mux.Handle("POST /admin/testimonials/{id}/delete", wrapAdmin(http.HandlerFunc(adminTestimonialsHandler.Delete)))

	mux.Handle("GET /admin/social-links", wrapAdmin(http.HandlerFunc(adminSocialLinksHandler.Index)))
	mux.Handle("GET /admin/social-links/new", wrapAdmin(http.HandlerFunc(adminSocialLinksHandler.New)))
	mux.Handle("POST /admin/social-links", wrapAdmin(http.HandlerFunc(adminSocialLinksHandler.Create)))
	mux.Handle("GET /admin/social-links/{id}/edit", wrapAdmin(http.HandlerFunc(adminSocialLinksHandler.Edit)))
	mux.Handle("POST /admin/social-links/{id}", wrapAdmin(http.HandlerFunc(adminSocialLinksHandler.Update)))
	mux.Handle("POST /admin/social-links/{id}/delete", wrapAdmin(http.HandlerFunc(adminSocialLinksHandler.Delete)))

	mux.Handle("GET /admin/contact-messages", wrapAdmin(http.HandlerFunc(adminContactsHandler.Index)))

	// uploaded icons/avatars and static assets
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("./static"))))

	chain := handler.RequestLogger(
		handler.SecurityHeaders(
			handler.ResolveLocale(bundle)(mux),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorker()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
