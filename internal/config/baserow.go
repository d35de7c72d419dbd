package config

import (
	"os"
	"sync"
)

type BaserowConfig struct {
	APIKey          string
	BaseURL         string
	CandidatesTable string
}

var (
	baserowConfig *BaserowConfig
	baserowOnce   sync.Once
)

// LoadBaserowConfig reads the record store settings. APIKey may come
// back empty; main treats that as a fatal configuration error before
// any listener starts.
func LoadBaserowConfig() *BaserowConfig {
	baserowOnce.Do(func() {
		baseURL := os.Getenv("BASEROW_BASE_URL")
		if baseURL == "" {
			baseURL = "https://dados.focoserv.com.br/api"
		}
		table := os.Getenv("BASEROW_CANDIDATES_TABLE")
		if table == "" {
			table = "702"
		}
		baserowConfig = &BaserowConfig{
			APIKey:          os.Getenv("BASEROW_API_KEY"),
			BaseURL:         baseURL,
			CandidatesTable: table,
		}
	})
	return baserowConfig
}
