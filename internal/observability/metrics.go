package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikeToggles counts like-toggle operations by resulting state.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barkbook_like_toggles_total",
		Help: "Total number of like toggles by resulting state (liked/unliked)",
	}, []string{"result"})

	// PostsCreated counts created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barkbook_posts_created_total",
		Help: "Total number of posts created",
	})

	// AvatarUploads counts avatar asset uploads by outcome.
	AvatarUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barkbook_avatar_uploads_total",
		Help: "Total number of avatar uploads by outcome",
	}, []string{"outcome"})
)
