package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/focoserv/triagem/internal/config"
	"github.com/focoserv/triagem/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, files []model.SubmissionFile, jobID int64) ([]model.AnalysisResult, error)
}

// AnalysisService submits a résumé batch to the recruitment webhook and
// decodes the per-candidate results. The order of the returned slice is
// authoritative: position i describes the file submitted at position i,
// and nothing else does.
type AnalysisService struct {
	client     *resty.Client
	webhookURL string
}

func NewAnalysisService() *AnalysisService {
	cfg := config.LoadAnalysisConfig()
	return &AnalysisService{
		client:     resty.New().SetTimeout(cfg.Timeout),
		webhookURL: cfg.WebhookURL,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, files []model.SubmissionFile, jobID int64) ([]model.AnalysisResult, error) {
	req := s.client.R().SetContext(ctx)
	for _, f := range files {
		req.SetFileReader(fmt.Sprintf("curriculo_%d", f.Ordinal), f.Name, bytes.NewReader(f.Content))
	}
	req.SetFormData(map[string]string{
		"job_id":    fmt.Sprintf("%d", jobID),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})

	resp, err := req.Post(s.webhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrAnalysisUnavailable, resp.StatusCode())
	}

	return decodeAnalysisResponse(resp.Body())
}

// decodeAnalysisResponse unwraps the webhook payload. The automation
// tool answers either with the result object directly or with a
// single-element array whose element carries the real payload as an
// encoded JSON string under "output", so the body may need a second
// decode pass.
func decodeAnalysisResponse(body []byte) ([]model.AnalysisResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrAnalysisMalformed)
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		arr := root.Array()
		if len(arr) == 0 {
			return nil, fmt.Errorf("%w: empty response array", ErrAnalysisMalformed)
		}
		root = arr[0]
	}

	if out := root.Get("output"); out.Type == gjson.String {
		if !gjson.Valid(out.Str) {
			return nil, fmt.Errorf("%w: nested output is not valid JSON", ErrAnalysisMalformed)
		}
		root = gjson.Parse(out.Str)
	}

	if !root.IsObject() {
		return nil, fmt.Errorf("%w: unexpected payload shape", ErrAnalysisMalformed)
	}

	if !root.Get("success").Bool() {
		msg := root.Get("message").String()
		if msg == "" {
			msg = "analysis reported failure"
		}
		return nil, fmt.Errorf("%w: %s", ErrAnalysisUnavailable, msg)
	}

	candidates := root.Get("candidates")
	if !candidates.Exists() || !candidates.IsArray() {
		return nil, fmt.Errorf("%w: missing candidates list", ErrAnalysisMalformed)
	}

	results := make([]model.AnalysisResult, 0, len(candidates.Array()))
	for _, c := range candidates.Array() {
		results = append(results, model.AnalysisResult{
			Name:    c.Get("name").String(),
			Score:   c.Get("score").String(),
			Summary: c.Get("summary").String(),
			Phone:   c.Get("Telefone").String(),
		})
	}

	log.Printf("analysis returned %d candidate(s)", len(results))
	return results, nil
}
