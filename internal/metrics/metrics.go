// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	signups       prometheus.Counter
	logins        *prometheus.CounterVec
	likeToggles   *prometheus.CounterVec
	followToggles *prometheus.CounterVec
	comments      prometheus.Counter
	notifications *prometheus.CounterVec
}

// New builds a Metrics on its own registry so tests can create as many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inko", Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inko", Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inko", Name: "signups_total",
			Help: "Accounts created.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inko", Name: "logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		likeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inko", Name: "like_toggles_total",
			Help: "Like toggles by resulting state.",
		}, []string{"state"}),
		followToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inko", Name: "follow_toggles_total",
			Help: "Follow toggles by resulting state.",
		}, []string{"state"}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inko", Name: "comments_total",
			Help: "Comments added.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inko", Name: "notifications_created_total",
			Help: "Notifications written by type.",
		}, []string{"type"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.signups, m.logins,
		m.likeToggles, m.followToggles, m.comments, m.notifications,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records one request count and latency sample per request,
// labelled with the matched route template rather than the raw path.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !c.Response().Committed {
					status = apperrors.KindOf(err).Status()
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func (m *Metrics) Signup() { m.signups.Inc() }

func (m *Metrics) Login(ok bool) {
	if ok {
		m.logins.WithLabelValues("success").Inc()
		return
	}
	m.logins.WithLabelValues("failure").Inc()
}

func (m *Metrics) LikeToggled(liked bool) { m.likeToggles.WithLabelValues(state(liked, "liked", "unliked")).Inc() }

func (m *Metrics) FollowToggled(followed bool) {
	m.followToggles.WithLabelValues(state(followed, "followed", "unfollowed")).Inc()
}

func (m *Metrics) CommentAdded() { m.comments.Inc() }

func (m *Metrics) NotificationCreated(kind string) { m.notifications.WithLabelValues(kind).Inc() }

func state(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
