package api

import (
	"emailgenie/internal/app"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) generate(c *gin.Context) {
	var requestBody app.GenerateInput
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.SessionApp.Generate(c.Request.Context(), m.Session, requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, m.sessionResponse())
}
