package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-kdms/overlay"
	"go-kdms/poller"
)

// GetOverlay returns the current fused view set plus the polling flags the
// surface needs for its loading and warning indicators.
func GetOverlay(c *gin.Context, store *overlay.Store, p *poller.Poller) {
	disasterSeq, riskSeq := store.Sequences()
	c.JSON(http.StatusOK, gin.H{
		"views":        store.Views(),
		"is_polling":   p.IsPolling(),
		"degraded":     p.Degraded(),
		"disaster_seq": disasterSeq,
		"risk_seq":     riskSeq,
	})
}

// ResolveDisaster applies an optimistic resolve. The response reflects the
// local state change; backend confirmation happens via later polls.
func ResolveDisaster(c *gin.Context, store *overlay.Store) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster id"})
		return
	}

	if err := store.SubmitEdit(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success":     true,
		"disaster_id": id,
		"message":     "Disaster marked resolved, awaiting backend confirmation",
	})
}

// OverlayStatus reports poller and store health for the warning banner.
func OverlayStatus(c *gin.Context, store *overlay.Store, p *poller.Poller) {
	disasterSeq, riskSeq := store.Sequences()
	c.JSON(http.StatusOK, gin.H{
		"is_polling":    p.IsPolling(),
		"degraded":      p.Degraded(),
		"pending_edits": store.PendingEditCount(),
		"disaster_seq":  disasterSeq,
		"risk_seq":      riskSeq,
	})
}
