package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hqzhou/webchat/internal/common"
	"github.com/hqzhou/webchat/internal/config"
	"github.com/hqzhou/webchat/internal/httpapi/handlers"
	"github.com/hqzhou/webchat/internal/httpapi/middleware"
	"github.com/hqzhou/webchat/web"
)

func NewRouter(cfg config.Config) (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})

	r.GET("/ping", h.Ping)
	r.GET("/chat", h.Chat)

	return r, nil
}
