package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "status"},
	)
	uploadsStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_uploads_stored_total",
			Help: "Total number of uploaded files persisted, by field",
		},
		[]string{"field"},
	)
	uploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_uploads_rejected_total",
			Help: "Total number of uploaded files rejected before persistence",
		},
		[]string{"field", "reason"},
	)
	messagesAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_chat_messages_total",
			Help: "Total number of chat messages appended",
		},
	)
)

func UploadStored(field string) {
	uploadsStored.WithLabelValues(field).Inc()
}

func UploadRejected(field, reason string) {
	uploadsRejected.WithLabelValues(field, reason).Inc()
}

func MessageAppended() {
	messagesAppended.Inc()
}

// Middleware counts every handled request by method and status.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		requestsTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		return err
	}
}
