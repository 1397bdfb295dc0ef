package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	rootservices "github.com/tomazdalcortivo/sdpe_mid/services"
)

var coverResults = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sdpe_mid",
	Name:      "capas_total",
	Help:      "Capas servidas, por estado final (image ou fallback).",
}, []string{"estado"})

var (
	coverLimiter     *rate.Limiter
	coverLimiterOnce sync.Once
)

// CoverLimiter é o limite global de buscas de capa, configurado em COVER_RPS.
// Zero ou negativo desliga o limite.
func CoverLimiter() *rate.Limiter {
	coverLimiterOnce.Do(func() {
		rps := rootservices.GetConfig().CoverRPS
		if rps <= 0 {
			coverLimiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		coverLimiter = rate.NewLimiter(rate.Limit(rps), 2*rps)
	})
	return coverLimiter
}
