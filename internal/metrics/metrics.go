// Package metrics exposes Prometheus collectors for the auth service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	LoginAttempts  *prometheus.CounterVec
	TokensRevoked  prometheus.Counter
	SignupAttempts *prometheus.CounterVec
}

// New registers and returns the service metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Login attempts by result (success, failure, error).",
		}, []string{"result"}),
		TokensRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auth_tokens_revoked_total",
			Help: "Tokens revoked via logout.",
		}),
		SignupAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_signup_attempts_total",
			Help: "Signup attempts by result (success, rejected, error).",
		}, []string{"result"}),
	}
}
