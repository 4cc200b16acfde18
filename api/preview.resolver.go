package api

import (
	"emailgenie/internal/domain"
	"emailgenie/internal/service"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) updatePreview(c *gin.Context) {
	var requestBody domain.DraftEdit
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.SessionApp.UpdateDraft(m.Session, requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, m.sessionResponse())
}

type sendResponse struct {
	Success bool   `json:"success"`
	EmailID string `json:"emailId,omitempty"`
	Message string `json:"message"`
}

func newSendResponse(r service.SendResult) sendResponse {
	return sendResponse{
		Success: r.Ok(),
		EmailID: r.EmailID,
		Message: r.Message,
	}
}

// sendPreview returns 200 with success=false when delivery fails. Only
// validation problems are reported as errors.
func (m ApiHandler) sendPreview(c *gin.Context) {
	result, err := m.SessionApp.Send(c.Request.Context(), m.Session)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newSendResponse(*result))
}
