package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-kdms/handlers"
	"go-kdms/kdms"
	"go-kdms/overlay"
	"go-kdms/poller"
	ws "go-kdms/websocket"
)

func SetupRouter(store *overlay.Store, p *poller.Poller, client *kdms.Client, hub *ws.Hub, openaiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "go-kdms overlay",
			"status":  "operational",
		})
	})

	// api routes
	api := r.Group("/api")
	{
		api.GET("/overlay", func(c *gin.Context) {
			handlers.GetOverlay(c, store, p)
		})
		api.POST("/overlay/disasters/:id/resolve", func(c *gin.Context) {
			handlers.ResolveDisaster(c, store)
		})
		api.GET("/overlay/status", func(c *gin.Context) {
			handlers.OverlayStatus(c, store, p)
		})
		api.GET("/overlay/brief", func(c *gin.Context) {
			handlers.GetBrief(c, store, openaiClient)
		})

		// backend passthroughs
		api.GET("/workers", func(c *gin.Context) {
			handlers.GetWorkers(c, client)
		})
		api.GET("/alerts", func(c *gin.Context) {
			handlers.GetAlerts(c, client)
		})
		api.GET("/stats", func(c *gin.Context) {
			handlers.GetStats(c, client)
		})
		api.POST("/dispatch", func(c *gin.Context) {
			handlers.DispatchWorker(c, client)
		})
	}

	r.GET("/ws/overlay", func(c *gin.Context) {
		handlers.ListenOverlay(c, hub)
	})

	return r
}
