package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"foodfest/internal/notify"
)

// AdminEvents streams order events to the admin dashboard over SSE. Delivery
// is best-effort: a dashboard that falls behind misses events and should
// keep its periodic refresh as the source of truth.
func AdminEvents(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := hub.Subscribe()
		defer hub.Unsubscribe(sub)

		c.Header("Cache-Control", "no-cache")

		c.Stream(func(w io.Writer) bool {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return false
				}
				c.SSEvent(ev.Name, ev.Payload)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
