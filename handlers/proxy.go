package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-kdms/kdms"
)

// Passthrough handlers for the backend's simple list views. No fusion
// logic here; the overlay service just saves the surface a second host.

func GetWorkers(c *gin.Context, client *kdms.Client) {
	workers, err := client.Workers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workers)
}

func GetAlerts(c *gin.Context, client *kdms.Client) {
	alerts, err := client.Alerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func GetStats(c *gin.Context, client *kdms.Client) {
	stats, err := client.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

type dispatchRequest struct {
	WorkerID   int `json:"worker_id" binding:"required"`
	DisasterID int `json:"disaster_id" binding:"required"`
}

// DispatchWorker forwards a worker assignment to the backend.
func DispatchWorker(c *gin.Context, client *kdms.Client) {
	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := client.DispatchWorker(c.Request.Context(), req.WorkerID, req.DisasterID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"worker_id":   req.WorkerID,
		"disaster_id": req.DisasterID,
	})
}
