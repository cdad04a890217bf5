package handlers

import (
	"net/http"

	"scopex/models"
	advisorService "scopex/services/advisor"
	"scopex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdvisorHandler proxies the public chat widget to the advisor service.
type AdvisorHandler struct {
	Advisor advisorService.AdvisorService
}

func NewAdvisorHandler(advisor advisorService.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{Advisor: advisor}
}

// ChatHandler handles POST /api/advisor/chat. The reply is always 200; a
// backend failure surfaces as the advisor's canned unavailability message.
func (h *AdvisorHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	reply := h.Advisor.Chat(c.Request.Context(), req.SessionID, req.Text)
	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

type resetInput struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ResetHandler handles POST /api/advisor/reset: the widget's "new
// conversation" button.
func (h *AdvisorHandler) ResetHandler(c *gin.Context) {
	var req resetInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reset request", err.Error())
		return
	}

	if err := h.Advisor.Reset(c.Request.Context(), req.SessionID); err != nil {
		utils.GetLogger().Warn("advisor reset failed", zap.String("session", req.SessionID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
