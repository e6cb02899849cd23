package wire

import (
	"net/http"

	"hotel-management/internal/adaptor"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/usecase"
	"hotel-management/pkg/cache"
	"hotel-management/pkg/events"
	"hotel-management/pkg/metrics"
	"hotel-management/pkg/middleware"
	"hotel-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of the repositories
// and the optional cache and event publisher.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	statsCache cache.Cache,
	publisher events.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, statsCache, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Middleware)

	wireAuth(r, handler.Auth, repo, logger)

	// every hotel route sits behind the login gate
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, logger))

		wireCustomer(r, handler.Customer)
		wireRoom(r, handler.Room)
		wireReservation(r, handler.Reservation)
		wirePayment(r, handler.Payment)
		wireStaff(r, handler.Staff)

		r.Get("/api/dashboard", handler.Dashboard.Stats)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
