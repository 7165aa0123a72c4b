package integration_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strategyalign/api"
	"strategyalign/cmd"
	"strategyalign/internal/domain"
	"strategyalign/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"
)

type portfolioRow struct {
	Ticker string `csv:"Ticker"`
	Shares string `csv:"Shares"`
}

type referenceRow struct {
	Symbol   string `csv:"Symbol"`
	Name     string `csv:"Name"`
	Value    string `csv:"Value"`
	Growth   string `csv:"Growth"`
	Dividend string `csv:"Dividend"`
}

func seedPortfolio() ([]byte, error) {
	rows := []portfolioRow{
		{Ticker: "RY.TO", Shares: "100"},
		{Ticker: "TD", Shares: "50"},
		{Ticker: "ENB", Shares: "1,000"},
		{Ticker: "SHOP", Shares: "25"},
		{Ticker: "XYZ", Shares: "n/a"},
	}
	return gocsv.MarshalBytes(&rows)
}

func seedReference() ([]byte, error) {
	rows := []referenceRow{
		{Symbol: "TSX:RY", Name: "Royal Bank", Value: "YES", Growth: "NO", Dividend: "TRUE"},
		{Symbol: "TSX:TD", Name: "TD Bank", Value: "YES", Growth: "NO", Dividend: "TRUE"},
		{Symbol: "TSX:ENB", Name: "Enbridge", Value: "NO", Growth: "NO", Dividend: "TRUE"},
		{Symbol: "TSX:SHOP", Name: "Shopify", Value: "NO", Growth: "YES", Dividend: "FALSE"},
	}
	return gocsv.MarshalBytes(&rows)
}

func newTestServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)

	cfg := util.DefaultConfig()
	cfg.Engine.PortfolioSymbolProfile = domain.SymbolProfile_Full
	cfg.Engine.ReferenceSymbolProfile = domain.SymbolProfile_Full

	alignmentApp, err := cmd.InitializeAlignmentApp(cfg)
	require.NoError(t, err)
	handler := api.ApiHandler{
		AlignmentApp:   alignmentApp,
		MaxUploadBytes: cfg.Api.MaxUploadBytes,
	}

	server := httptest.NewServer(handler.InitializeRouterEngine())
	t.Cleanup(server.Close)
	return server
}

func hitEndpoint(server *httptest.Server, route string, files map[string][]byte) (*http.Response, []byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, contents := range files {
		part, err := writer.CreateFormFile(name, name+".csv")
		if err != nil {
			return nil, nil, err
		}
		if _, err := part.Write(contents); err != nil {
			return nil, nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequest(http.MethodPost, server.URL+"/"+route, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := server.Client().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != 200 {
		return resp, responseBody, fmt.Errorf("failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	return resp, responseBody, nil
}

func Test_alignmentFlow(t *testing.T) {
	server := newTestServer(t)

	portfolio, err := seedPortfolio()
	require.NoError(t, err)
	reference, err := seedReference()
	require.NoError(t, err)
	files := map[string][]byte{
		"portfolio": portfolio,
		"reference": reference,
	}

	_, body, err := hitEndpoint(server, "analyze", files)
	require.NoError(t, err)

	result := domain.AlignmentResult{}
	require.NoError(t, json.Unmarshal(body, &result))

	// shares: RY 100, TD 50, ENB 1000, SHOP 25, XYZ 0
	require.Equal(t, domain.WeightSource_Shares, result.WeightSource)
	require.Equal(t, 5, result.TotalHoldings)
	require.Equal(t, 1175.0, result.TotalWeight)
	require.Equal(t, []string{"Value", "Growth", "Dividend"}, result.StrategyColumns)
	require.Equal(t, []domain.Holding{{Symbol: "XYZ", Weight: 0}}, result.Unmatched)

	require.Equal(t, "Dividend", result.Dominant.Strategy)
	require.Equal(t, 3, result.Dominant.QualifyingCount)
	require.Equal(t, 60.0, result.Dominant.QualifyingPercent)
	require.Equal(t, 97.87, result.Dominant.WeightedPercent)
	require.Equal(t, map[int]int{0: 1, 1: 2, 2: 2, 3: 0}, result.Overlap.AsMap())
	require.NotNil(t, result.Insight)

	_, body, err = hitEndpoint(server, "analyze/export?table=unmatched", files)
	require.NoError(t, err)
	require.Equal(t, "symbol,weight\nXYZ,0\n", string(body))

	resp, _, err := hitEndpoint(server, "analyze", map[string][]byte{"portfolio": portfolio})
	require.Error(t, err)
	require.Equal(t, 400, resp.StatusCode)
}
