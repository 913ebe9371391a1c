// Package metrics defines and registers the custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts authentication attempts on /api/authenticate.
// Label:
//   - result: "success", "failure" (bad credentials) or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the bearer-token
// authenticator before reaching any handler.
// Label:
//   - reason: "missing_header", "token_invalid", "token_expired", "user_not_found"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the token authenticator.",
	},
	[]string{"reason"},
)

// VehiclesCreatedTotal counts newly registered vehicles.
// Label:
//   - renewal_month: numeric month of the computed due date ("1".."12")
var VehiclesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vehicles_created_total",
		Help:      "Total number of vehicles registered, by renewal month.",
	},
	[]string{"renewal_month"},
)
