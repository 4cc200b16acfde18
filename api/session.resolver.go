package api

import (
	"emailgenie/internal/domain"

	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	ActiveTab           domain.Tab       `json:"activeTab"`
	Tabs                []domain.Tab     `json:"tabs"`
	Purposes            []domain.Purpose `json:"purposes"`
	SelectedProfileName string           `json:"selectedProfileName"`
	Draft               domain.Draft     `json:"draft"`
	From                string           `json:"from"`
}

// sessionResponse reads a locked copy; gin serves requests concurrently.
func (m ApiHandler) sessionResponse() sessionResponse {
	session := m.SessionApp.Snapshot(m.Session)
	return sessionResponse{
		ActiveTab:           session.ActiveTab,
		Tabs:                domain.Tabs,
		Purposes:            domain.Purposes,
		SelectedProfileName: session.SelectedProfileName,
		Draft:               session.Draft,
		From:                session.Draft.FromLine(),
	}
}

func (m ApiHandler) getSession(c *gin.Context) {
	c.JSON(200, m.sessionResponse())
}

type navigateRequest struct {
	Tab string `json:"tab"`
}

func (m ApiHandler) navigate(c *gin.Context) {
	var requestBody navigateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.SessionApp.Navigate(m.Session, requestBody.Tab); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, m.sessionResponse())
}
