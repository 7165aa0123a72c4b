package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strategyalign/internal/domain"
	"strings"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Portfolio domain.Table `json:"portfolio"`
	Reference domain.Table `json:"reference"`
}

func (m ApiHandler) analyze(c *gin.Context) {
	result, err := m.runAnalysis(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

// runAnalysis accepts either a json body of two tables or a multipart form
// with "portfolio" and "reference" csv files
func (m ApiHandler) runAnalysis(c *gin.Context) (*domain.AlignmentResult, error) {
	result, err := m.analyzeRequest(c)
	if err != nil {
		return nil, err
	}
	if m.Metrics != nil {
		m.Metrics.ObserveResult(*result)
	}
	return result, nil
}

func (m ApiHandler) analyzeRequest(c *gin.Context) (*domain.AlignmentResult, error) {
	ctx := c.Request.Context()

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if m.MaxUploadBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.MaxUploadBytes)
		}

		portfolio, err := openFormFile(c, "portfolio")
		if err != nil {
			return nil, err
		}
		defer portfolio.Close()

		reference, err := openFormFile(c, "reference")
		if err != nil {
			return nil, err
		}
		defer reference.Close()

		return m.AlignmentApp.AnalyzeCsv(ctx, portfolio, reference)
	}

	var requestBody analyzeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		return nil, requestError{fmt.Errorf("failed to parse request body: %w", err)}
	}

	return m.AlignmentApp.Analyze(ctx, requestBody.Portfolio, requestBody.Reference)
}

func openFormFile(c *gin.Context, name string) (multipart.File, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, requestError{fmt.Errorf("missing %s file: %w", name, err)}
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file: %w", name, err)
	}
	return f, nil
}
