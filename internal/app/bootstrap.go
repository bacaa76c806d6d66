package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	v1 "talent-match/internal/delivery/http/routes/v1"
	"talent-match/internal/pkg/metrics"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const opsReadHeaderTimeout = 5 * time.Second

type App struct {
	Fiber *fiber.App
	// Ops serves /metrics and the /ws event stream on its own port.
	Ops *http.Server
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger, c.Metrics)
	registerRoutes(f, c)

	return &App{Fiber: f, Ops: newOpsServer(c)}
}

// Bootstrap builds the container and both servers. The returned cleanup
// closes the container.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, *Container, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return New(c), c, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger, m *metrics.Manager) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger, m)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(
		map[string]handler.Pinger{"database": c.DB},
		map[string]handler.Pinger{"redis": c.Cache},
	)

	routes.NewRegistry(health, v1.Handlers{
		Auth:           handler.NewAuthHandler(c.Usecases.Auth),
		HR:             handler.NewHRHandler(c.Usecases.HR, c.Usecases.JobOffers, c.Usecases.Matching),
		Supervisor:     handler.NewSupervisorHandler(c.Usecases.Reviews, c.Usecases.Objectives),
		Employee:       handler.NewEmployeeHandler(c.Usecases.Employee, c.Usecases.Applications, c.Usecases.Objectives),
		AuthMiddleware: middleware.NewAuthMiddleware(c.JWT),
	}).Register(app)
}

func newOpsServer(c *Container) *http.Server {
	addr, err := ListenAddr(c.Config.App.OpsPort)
	if err != nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.Handle("/ws", ws.NewHandler(c.Hub, c.Logger))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: opsReadHeaderTimeout,
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
