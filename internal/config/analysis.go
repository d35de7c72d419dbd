package config

import (
	"os"
	"sync"
	"time"
)

type AnalysisConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

var (
	analysisConfig *AnalysisConfig
	analysisOnce   sync.Once
)

func LoadAnalysisConfig() *AnalysisConfig {
	analysisOnce.Do(func() {
		url := os.Getenv("ANALYSIS_WEBHOOK_URL")
		if url == "" {
			url = "https://n8n.focoserv.com.br/webhook/recrutamento"
		}
		timeout := 5 * time.Minute
		if raw := os.Getenv("ANALYSIS_TIMEOUT"); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil {
				timeout = d
			}
		}
		analysisConfig = &AnalysisConfig{
			WebhookURL: url,
			Timeout:    timeout,
		}
	})
	return analysisConfig
}
