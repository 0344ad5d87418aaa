package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hqzhou/webchat/internal/common"
)

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"message": "pong"})
}

// Chat relays one streamed reply as incrementally flushed plain text.
// The response is not committed until the provider produces its first chunk,
// so early upstream failures still get a real status code.
func (h *Handler) Chat(c *gin.Context) {
	prompt := strings.TrimSpace(c.Query("prompt"))

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx := c.Request.Context()
	chunks, errs := h.ChatSvc.AskStream(ctx, prompt)

	wrote := false
	commit := func() {
		if wrote {
			return
		}
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no") // helpful if behind nginx
		c.Status(http.StatusOK)
		wrote = true
	}

	for chunks != nil || errs != nil {
		// Chunks produced before a failure must reach the client; with both
		// channels ready, a bare select could pick the error first and drop
		// them, so pending output is always forwarded before acting on errs.
		if chunks != nil {
			select {
			case ch, ok := <-chunks:
				if !ok {
					chunks = nil
				} else {
					commit()
					io.WriteString(c.Writer, ch)
					flusher.Flush()
				}
				continue
			default:
			}
		}

		select {
		case ch, ok := <-chunks:
			if !ok {
				chunks = nil
				continue
			}
			commit()
			io.WriteString(c.Writer, ch)
			flusher.Flush()

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err == nil {
				continue
			}
			log.Printf("chat stream failed: %v", err)
			if !wrote {
				c.String(http.StatusBadGateway, "upstream chat request failed")
			}
			return

		case <-ctx.Done():
			// client went away
			return
		}
	}

	// empty reply still deserves a 200
	commit()
}
