package middleware

import (
	"strconv"
	"time"

	"talent-match/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger  *zap.Logger
	metrics *metrics.Manager
}

func NewAccessLogMiddleware(logger *zap.Logger, m *metrics.Manager) *AccessLogMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.Default()
	}
	return &AccessLogMiddleware{logger: logger.Named("http"), metrics: m}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()
		// Error responses are rendered by ErrorMiddleware further in, so the
		// status here is already final.

		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		m.metrics.RecordHTTPRequest(route, c.Method(), strconv.Itoa(status), float64(dur.Microseconds())/1000)

		m.logger.Info("HTTP access",
			zap.String("rid", rid),
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", dur),
			zap.Int("resp_bytes", len(c.Response().Body())),
			zap.String("ua", c.Get(fiber.HeaderUserAgent)),
		)

		return err
	}
}
