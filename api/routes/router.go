package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foodexpress/foodexpress-backend/api/controllers"
	"github.com/foodexpress/foodexpress-backend/api/middleware"
	deliverysvc "github.com/foodexpress/foodexpress-backend/internal/delivery"
	menusvc "github.com/foodexpress/foodexpress-backend/internal/menu"
	ordersvc "github.com/foodexpress/foodexpress-backend/internal/orders"
	"github.com/foodexpress/foodexpress-backend/pkg/config"
	"github.com/foodexpress/foodexpress-backend/pkg/logger"
	"github.com/foodexpress/foodexpress-backend/pkg/metrics"
	pkgredis "github.com/foodexpress/foodexpress-backend/pkg/redis"
)

// Deps bundles everything the router needs. Redis is optional; when
// nil the idempotency middleware passes requests straight through.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	Redis       *pkgredis.Client
	Metrics     *metrics.HTTPMetrics
	Registry    *prometheus.Registry
	MenuSvc     menusvc.Service
	OrderSvc    ordersvc.Service
	DeliverySvc deliverysvc.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DBPinger, redisPinger(deps.Redis)))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/menu", controllers.MenuList(deps.MenuSvc, deps.Logger))
	r.With(middleware.Idempotency(idempotencyStore(deps.Redis), deps.Logger)).
		Post("/order", controllers.OrderCreate(deps.OrderSvc, deps.Logger))
	r.Get("/delivery-time", controllers.DeliveryTime(deps.DeliverySvc, deps.Logger))

	return r
}

// Keep typed nils out of the interface values.

func redisPinger(client *pkgredis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func idempotencyStore(client *pkgredis.Client) pkgredis.IdempotencyStore {
	if client == nil {
		return nil
	}
	return client
}
