package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "picshare_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PicturesCreated counts pictures created through the API.
	PicturesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "picshare_pictures_created_total",
		Help: "Total number of pictures created",
	})

	// FavoriteToggles counts favorite toggles by resulting action.
	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "picshare_favorite_toggles_total",
		Help: "Total number of favorite toggles by action (added or removed)",
	}, []string{"action"})

	// LoginsTotal counts logins by whether a new user row was created.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "picshare_logins_total",
		Help: "Total number of logins by outcome (created or existing)",
	}, []string{"outcome"})
)
