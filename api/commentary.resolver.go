package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) commentary(c *gin.Context) {
	result, err := m.runAnalysis(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	response, err := m.AlignmentApp.Commentary(c.Request.Context(), *result)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, response)
}
