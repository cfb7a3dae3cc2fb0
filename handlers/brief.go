package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-kdms/overlay"
	"go-kdms/summarization"
)

// GetBrief generates an AI situation brief from the current fused overlay.
func GetBrief(c *gin.Context, store *overlay.Store, openaiClient *openai.Client) {
	if openaiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "situation briefs are not configured"})
		return
	}

	brief, err := summarization.GenerateBrief(c.Request.Context(), openaiClient, store.Views())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brief":        brief,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}
