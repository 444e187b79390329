package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayInRange(t *testing.T) {
	tests := []struct {
		delay float64
		want  bool
	}{
		{0.4, false},
		{0.5, true},
		{2.0, true},
		{10.0, true},
		{10.1, false},
		{-1, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.delay), func(t *testing.T) {
			assert.Equal(t, tt.want, DelayInRange(tt.delay))
		})
	}
}

func TestConfig_CloneIsIndependent(t *testing.T) {
	cfg := NewConfig()
	cfg.Selectors = DefaultSelectorMap()
	cfg.Headers = map[string]string{"Accept": "text/html"}

	c := cfg.Clone()
	require.NoError(t, c.Selectors.SetValue("price", ".p"))
	c.Headers["Accept"] = "*/*"

	v, _ := cfg.Selectors.Get("price")
	assert.Empty(t, v)
	assert.Equal(t, "text/html", cfg.Headers["Accept"])
}

func TestConfig_JSON(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "Shop"
	cfg.Domain = "shop.example"
	cfg.Selectors = DefaultSelectorMap()
	require.NoError(t, cfg.Selectors.SetValue("price", "div.price"))

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Shop",
		"domain": "shop.example",
		"use_javascript": true,
		"requires_proxy": false,
		"request_delay": 2,
		"selectors": {"price": "div.price", "currency": "", "stock_status": "", "stock_quantity": "", "product_name": ""}
	}`, string(data))
	assert.Contains(t, string(data), `"selectors":{"price":"div.price","currency":""`)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"remote with message", &RemoteError{Op: "create", Status: 400, Message: "Site already exists"}, "Site already exists"},
		{"remote without message", &RemoteError{Op: "analyze", Err: errors.New("dial tcp: refused")}, genericMessages["analyze"]},
		{"wrapped remote", fmt.Errorf("step: %w", &RemoteError{Op: "test", Status: 502}), genericMessages["test"]},
		{"validation", Invalid("test URL", ErrEmpty), "test URL cannot be empty"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
