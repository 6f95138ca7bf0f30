// Package metrics expone contadores Prometheus del dominio del portafolio.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una llamada al proveedor de IA.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

var (
	aiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "ai_calls_total",
		Help:      "Llamadas al proveedor de IA por operación y resultado.",
	}, []string{"operation", "outcome"})

	activityMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "activity_mutations_total",
		Help:      "Altas, ediciones y bajas de actividades.",
	}, []string{"operation"})

	logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "auth_attempts_total",
		Help:      "Intentos de login y registro por resultado.",
	}, []string{"operation", "outcome"})
)

// AICall registra una llamada a IA ("extract" o "advice").
func AICall(operation, outcome string) {
	aiCalls.WithLabelValues(operation, outcome).Inc()
}

// ActivityMutation registra "create", "update" o "delete".
func ActivityMutation(operation string) {
	activityMutations.WithLabelValues(operation).Inc()
}

// AuthAttempt registra un login/registro con su resultado.
func AuthAttempt(operation string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "rejected"
	}
	logins.WithLabelValues(operation, outcome).Inc()
}

// Handler sirve /metrics dentro de Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
