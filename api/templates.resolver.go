package api

import (
	"encoding/json"
	"time"

	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/domain"

	"github.com/gin-gonic/gin"
)

type templateResponse struct {
	ID        int32           `json:"id"`
	Name      string          `json:"name"`
	Content   string          `json:"content"`
	Profile   *domain.Profile `json:"profile"`
	CreatedAt time.Time       `json:"createdAt"`
}

func newTemplateResponse(m model.EmailTemplates) templateResponse {
	out := templateResponse{
		ID:        m.ID,
		Name:      m.Name,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	profile := domain.Profile{}
	if err := json.Unmarshal([]byte(m.ProfileJSON), &profile); err == nil {
		out.Profile = &profile
	}
	return out
}

func (m ApiHandler) listTemplates(c *gin.Context) {
	templates, err := m.SessionApp.ListTemplates()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []templateResponse{}
	for _, t := range templates {
		out = append(out, newTemplateResponse(t))
	}

	c.JSON(200, out)
}

type saveTemplateRequest struct {
	Name string `json:"name"`
}

func (m ApiHandler) saveTemplate(c *gin.Context) {
	var requestBody saveTemplateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	template, err := m.SessionApp.SaveTemplate(m.Session, requestBody.Name)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newTemplateResponse(*template))
}
