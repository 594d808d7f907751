package main

import (
	"testing"
	"time"

	"addressbook/config"

	"github.com/stretchr/testify/assert"
)

func TestRefreshHint(t *testing.T) {
	tests := []struct {
		name      string
		searchCfg *config.SearchConfig
		want      string
	}{
		{
			name:      "configured ttl",
			searchCfg: &config.SearchConfig{CacheTTL: 90 * time.Second},
			want:      "within 1m30s",
		},
		{
			name:      "default ttl",
			searchCfg: &config.SearchConfig{},
			want:      "within 5m0s",
		},
		{
			name:      "expiry disabled",
			searchCfg: &config.SearchConfig{CacheTTL: -1},
			want:      "until it is evicted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := refreshHint(tt.searchCfg)

			assert.Contains(t, hint, tt.want)
			assert.Contains(t, hint, "/api/v1/addresses/refresh")
		})
	}
}
