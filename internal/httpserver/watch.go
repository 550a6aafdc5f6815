package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wahibashop/internal/catalog"
)

// watchCollection streams snapshots of a collection as server-sent
// events. The first event is the current contents; every later event
// is the full snapshot after a change. Closing the connection cancels
// the store subscription.
func (h *handlers) watchCollection(c *gin.Context) {
	col := catalog.Collection(c.Param("collection"))

	snapshots := make(chan []json.RawMessage, 8)
	cancel, err := h.deps.Store.Subscribe(c.Request.Context(), col, func(records []json.RawMessage) {
		select {
		case snapshots <- records:
		default:
			// A slow client skips an intermediate snapshot; the next
			// one it receives is still the full current state.
		}
	})
	if err != nil {
		writeError(c, err)
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case records := <-snapshots:
			c.SSEvent("snapshot", records)
			return true
		}
	})
}
