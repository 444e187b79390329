package testfixtures

import (
	"encoding/json"

	"github.com/mark3labs/sitewizard/internal/site"
)

// Fixed test values for consistent assertions
const (
	ShopURL     = "https://shop.example/products/123"
	ShopTestURL = "https://shop.example/products/456"
	ShopDomain  = "shop.example"
	ShopName    = "Shop"
)

// ShopAnalysisJSON is an analysis response as the service sends it.
const ShopAnalysisJSON = `{
	"domain": "shop.example",
	"site_name": "Shop",
	"suggested_config": {"name": "Shop", "domain": "shop.example", "use_javascript": false},
	"suggested_selectors": {
		"price": ["div.price", ".amount", "[itemprop=price]"],
		"currency": ["span.currency"],
		"stock_status": [],
		"product_name": ["h1.title"]
	},
	"requires_javascript": false,
	"confidence_score": 0.82,
	"notes": ["Prices are rendered server side."],
	"analysis_successful": true
}`

// ShopAnalysis returns a fresh copy of the canonical analysis result.
func ShopAnalysis() *site.AnalysisResult {
	var a site.AnalysisResult
	if err := json.Unmarshal([]byte(ShopAnalysisJSON), &a); err != nil {
		panic(err)
	}
	return &a
}

// PassingTest returns a successful test result.
func PassingTest() *site.TestResult {
	status := 200
	ms := 812
	return &site.TestResult{
		Success: true,
		ExtractedData: map[string]any{
			"price":        "19.99",
			"currency":     "EUR",
			"product_name": "Blue Mug",
		},
		ResponseTimeMS: &ms,
		HTTPStatus:     &status,
		Suggestions:    []string{"stock_status has no selector"},
	}
}

// FailingTest returns a test result that reports failure. It is still a
// successful round trip.
func FailingTest() *site.TestResult {
	status := 404
	return &site.TestResult{
		Success:       false,
		ExtractedData: map[string]any{},
		HTTPStatus:    &status,
		Issues:        []string{"Page returned 404"},
	}
}

// Created returns the create response for the shop.
func Created() *site.CreateResult {
	return &site.CreateResult{
		Message: "Site created",
		SiteID:  42,
		Domain:  ShopDomain,
	}
}
