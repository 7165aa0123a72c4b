package api

import (
	"fmt"
	"strategyalign/internal/domain"
	"strings"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) export(c *gin.Context) {
	table, err := domain.NewExportTable(c.DefaultQuery("table", string(domain.ExportTable_Summary)))
	if err != nil {
		returnErrorJson(requestError{err}, c)
		return
	}

	result, err := m.runAnalysis(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	csv, err := m.AlignmentApp.Export(*result, *table)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, strings.ToLower(string(*table))))
	c.Data(200, "text/csv; charset=utf-8", []byte(csv))
}
