package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/sitewizard/internal/site"
)

// fakeService is a stand-in for the site service. Each handler records the
// raw body it received.
type fakeService struct {
	server *httptest.Server
	calls  map[string]int
	bodies map[string]string
}

func newFakeService(t *testing.T, routes map[string]gin.HandlerFunc) *fakeService {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fakeService{calls: map[string]int{}, bodies: map[string]string{}}
	router := gin.New()
	group := router.Group("/api/v1/site-wizard")
	for path, handler := range routes {
		h := handler
		p := path
		group.POST(p, func(c *gin.Context) {
			body, _ := io.ReadAll(c.Request.Body)
			f.calls[p]++
			f.bodies[p] = string(body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			h(c)
		})
	}

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeService) client() *Client {
	return New(f.server.URL+"/api/v1/", 5*time.Second)
}

func TestAnalyze_Success(t *testing.T) {
	svc := newFakeService(t, map[string]gin.HandlerFunc{
		"/analyze-site": func(c *gin.Context) {
			var req analyzeRequest
			if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid URL"})
				return
			}
			c.Data(http.StatusOK, "application/json", []byte(`{
				"domain": "shop.example",
				"site_name": "Shop",
				"suggested_config": {"name": "Shop", "domain": "shop.example", "use_javascript": false},
				"suggested_selectors": {"price": ["div.price", ".amount"], "stock_status": []},
				"requires_javascript": false,
				"analysis_successful": true
			}`))
		},
	})

	result, err := svc.client().Analyze(context.Background(), " https://shop.example/p/1 ")
	require.NoError(t, err)
	assert.Equal(t, "shop.example", result.Domain)
	assert.Equal(t, []string{"price", "stock_status"}, result.SuggestedFields())
	assert.JSONEq(t, `{"url":"https://shop.example/p/1"}`, svc.bodies["/analyze-site"])
}

func TestAnalyze_EmptyURLSkipsNetwork(t *testing.T) {
	svc := newFakeService(t, map[string]gin.HandlerFunc{
		"/analyze-site": func(c *gin.Context) { c.Status(http.StatusOK) },
	})

	_, err := svc.client().Analyze(context.Background(), "   ")
	require.ErrorIs(t, err, site.ErrEmpty)
	assert.Zero(t, svc.calls["/analyze-site"])
}

func TestAnalyze_Failures(t *testing.T) {
	tests := []struct {
		name        string
		handler     gin.HandlerFunc
		wantStatus  int
		wantMessage string
	}{
		{
			name: "detail string",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Site shop.example already exists in the system"})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Site shop.example already exists in the system",
		},
		{
			name: "validation list",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []gin.H{
					{"loc": []any{"body", "url"}, "msg": "invalid or missing URL scheme"},
				}})
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "url: invalid or missing URL scheme",
		},
		{
			name: "error key",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "upstream timeout"})
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "upstream timeout",
		},
		{
			name: "no message",
			handler: func(c *gin.Context) {
				c.String(http.StatusBadGateway, "<html>bad gateway</html>")
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "malformed payload",
			handler: func(c *gin.Context) {
				c.Data(http.StatusOK, "application/json", []byte(`{"domain": `))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "analysis not successful",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"domain": "shop.example", "analysis_successful": false})
			},
			wantMessage: "The service could not analyze this page.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(t, map[string]gin.HandlerFunc{"/analyze-site": tt.handler})

			_, err := svc.client().Analyze(context.Background(), "https://shop.example/p/1")
			require.Error(t, err)

			var remote *site.RemoteError
			require.True(t, errors.As(err, &remote), "expected RemoteError, got %T", err)
			assert.Equal(t, "analyze", remote.Op)
			assert.Equal(t, tt.wantStatus, remote.Status)
			assert.Equal(t, tt.wantMessage, remote.Message)
			assert.True(t, IsRemote(err))

			if tt.wantMessage == "" {
				assert.NotEmpty(t, site.UserMessage(err), "generic message expected")
			} else {
				assert.Equal(t, tt.wantMessage, site.UserMessage(err))
			}
		})
	}
}

func TestAnalyze_TransportError(t *testing.T) {
	c := New("http://127.0.0.1:1/api/v1", time.Second)
	_, err := c.Analyze(context.Background(), "https://shop.example/p/1")

	var remote *site.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Zero(t, remote.Status)
	assert.Empty(t, remote.Message)
	assert.Error(t, remote.Err)
}

func TestTest_SendsOrderedConfig(t *testing.T) {
	svc := newFakeService(t, map[string]gin.HandlerFunc{
		"/test-configuration": func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"test_successful":  true,
				"extracted_data":   gin.H{"price": 19.9, "currency": "TRY"},
				"response_time_ms": 812,
				"issues":           []string{},
				"suggestions":      []string{},
				"http_status_code": 200,
			})
		},
	})

	cfg := site.NewConfig()
	cfg.Name = "Shop"
	cfg.Domain = "shop.example"
	cfg.UseJavaScript = false
	cfg.Selectors = site.DefaultSelectorMap()
	require.NoError(t, cfg.Selectors.SetValue("price", "div.price"))
	require.NoError(t, cfg.Selectors.Rename("stock_status", "availability"))

	result, err := svc.client().Test(context.Background(), "shop.example", "https://shop.example/p/2", cfg)
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.ResponseTimeMS)
	assert.Equal(t, 812, *result.ResponseTimeMS)

	body := svc.bodies["/test-configuration"]
	assert.Contains(t, body, `"selectors":{"price":"div.price","currency":"","availability":"","stock_quantity":"","product_name":""}`)

	var sent struct {
		Domain  string `json:"domain"`
		TestURL string `json:"test_url"`
		Config  struct {
			Name         string  `json:"name"`
			RequestDelay float64 `json:"request_delay"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &sent))
	assert.Equal(t, "shop.example", sent.Domain)
	assert.Equal(t, "https://shop.example/p/2", sent.TestURL)
	assert.Equal(t, "Shop", sent.Config.Name)
	assert.Equal(t, 2.0, sent.Config.RequestDelay)
}

func TestTest_EmptyURLSkipsNetwork(t *testing.T) {
	svc := newFakeService(t, map[string]gin.HandlerFunc{
		"/test-configuration": func(c *gin.Context) { c.Status(http.StatusOK) },
	})

	_, err := svc.client().Test(context.Background(), "shop.example", "", site.NewConfig())
	require.ErrorIs(t, err, site.ErrEmpty)
	assert.Zero(t, svc.calls["/test-configuration"])
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newFakeService(t, map[string]gin.HandlerFunc{
			"/create-site": func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "Site created successfully", "site_id": 42, "domain": "shop.example"})
			},
		})

		cfg := site.NewConfig()
		cfg.Name = "Shop"
		cfg.Domain = "shop.example"
		cfg.Headers = map[string]string{"Referer": "https://shop.example/"}

		result, err := svc.client().Create(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.SiteID)
		assert.Equal(t, "shop.example", result.Domain)
		assert.Contains(t, svc.bodies["/create-site"], `"headers":{"Referer":"https://shop.example/"}`)
		assert.Contains(t, svc.bodies["/create-site"], `"selectors":{}`)
	})

	t.Run("reason surfaced verbatim", func(t *testing.T) {
		svc := newFakeService(t, map[string]gin.HandlerFunc{
			"/create-site": func(c *gin.Context) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "Site already exists"})
			},
		})

		_, err := svc.client().Create(context.Background(), site.NewConfig())
		require.Error(t, err)
		assert.Equal(t, "Site already exists", site.UserMessage(err))
	})
}
