// Package metrics defines and registers all custom Prometheus metrics for
// the blog platform API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// PostsCreatedTotal counts created posts.
// Label:
//   - status: "draft" or "published"
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of blog posts created, by initial status.",
	},
	[]string{"status"},
)

// CommentsAddedTotal counts comments appended to posts.
var CommentsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_added_total",
		Help:      "Total number of comments added to posts.",
	},
)

// LikeTogglesTotal counts like toggles.
// Label:
//   - action: "like" or "unlike"
var LikeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_toggles_total",
		Help:      "Total number of like toggles, by resulting action.",
	},
	[]string{"action"},
)

// BookmarkTogglesTotal counts bookmark toggles.
// Label:
//   - action: "bookmark" or "unbookmark"
var BookmarkTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_toggles_total",
		Help:      "Total number of bookmark toggles, by resulting action.",
	},
	[]string{"action"},
)

// PremiumPreviewsTotal counts premium posts served truncated to anonymous
// requesters.
var PremiumPreviewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "premium_previews_total",
		Help:      "Total number of premium posts served as truncated previews.",
	},
)
