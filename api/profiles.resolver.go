package api

import (
	"fmt"
	"strings"

	"emailgenie/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listProfiles(c *gin.Context) {
	profiles, err := m.SessionApp.ListProfiles()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, profiles)
}

func (m ApiHandler) saveProfile(c *gin.Context) {
	var requestBody domain.Profile
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.SessionApp.SaveProfile(requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "Profile saved successfully!",
	})
}

func (m ApiHandler) deleteProfile(c *gin.Context) {
	// catch-all param so names containing "/" can be addressed
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		returnErrorJsonCode(fmt.Errorf("profile name is required"), c, 400)
		return
	}
	if err := m.SessionApp.DeleteProfile(name); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "Profile deleted successfully!",
	})
}
