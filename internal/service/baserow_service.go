package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/focoserv/triagem/internal/config"
	"github.com/focoserv/triagem/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// PlaceholderName is stored when the analysis returned no name for a
// candidate.
const PlaceholderName = "Candidato sem nome"

type RecordStoreInterface interface {
	Persist(ctx context.Context, pair model.CorrelatedPair, jobID, userID int64) (model.Candidate, error)
	ListCandidates(ctx context.Context, userID int64) ([]model.Candidate, error)
}

// BaserowService talks to the Baserow record store: résumé uploads go
// to user-files storage, candidate rows to the candidatos table.
type BaserowService struct {
	client  *resty.Client
	baseURL string
	table   string
}

func NewBaserowService() *BaserowService {
	cfg := config.LoadBaserowConfig()
	return &BaserowService{
		client:  resty.New().SetHeader("Authorization", "Token "+cfg.APIKey),
		baseURL: cfg.BaseURL,
		table:   cfg.CandidatesTable,
	}
}

// Persist uploads the résumé and then creates the candidate row. The
// two calls are strictly sequential: an upload failure means no row is
// ever created, while a row failure after a good upload leaves the
// uploaded file orphaned and is reported as such.
func (s *BaserowService) Persist(ctx context.Context, pair model.CorrelatedPair, jobID, userID int64) (model.Candidate, error) {
	fileRef, err := s.uploadFile(ctx, pair.File)
	if err != nil {
		return model.Candidate{}, err
	}
	return s.createRow(ctx, pair.Result, fileRef, jobID, userID)
}

func (s *BaserowService) uploadFile(ctx context.Context, file model.SubmissionFile) (map[string]any, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Name, bytes.NewReader(file.Content)).
		Post(s.baseURL + "/user-files/upload-file/")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode())
	}

	parsed := gjson.ParseBytes(resp.Body())
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: unexpected upload response", ErrUploadFailed)
	}
	// The row API takes the upload response object back verbatim.
	return parsed.Value().(map[string]any), nil
}

func (s *BaserowService) createRow(ctx context.Context, result *model.AnalysisResult, fileRef map[string]any, jobID, userID int64) (model.Candidate, error) {
	payload := map[string]any{
		"nome":      candidateName(result.Name),
		"vaga":      []int64{jobID},
		"usuario":   []int64{userID},
		"score":     coerceScore(result.Score),
		"resumo_ia": result.Summary,
		"telefone":  digitsOnly(result.Phone),
		"curriculo": []map[string]any{fileRef},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("%s/database/rows/table/%s/?user_field_names=true", s.baseURL, s.table))
	if err != nil {
		return model.Candidate{}, fmt.Errorf("%w: %v", ErrRecordCreateFailed, err)
	}
	if resp.IsError() {
		return model.Candidate{}, fmt.Errorf("%w: status %d", ErrRecordCreateFailed, resp.StatusCode())
	}

	return decodeCandidate(gjson.ParseBytes(resp.Body())), nil
}

// ListCandidates fetches candidate rows filtered server-side by user.
// Job filtering is deliberately left to the caller: the store's link
// filter on vaga is not trusted as ground truth.
func (s *BaserowService) ListCandidates(ctx context.Context, userID int64) ([]model.Candidate, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("user_field_names", "true").
		SetQueryParam("filter__field_usuario__contains", strconv.FormatInt(userID, 10)).
		Get(fmt.Sprintf("%s/database/rows/table/%s/", s.baseURL, s.table))
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list candidates: status %d", resp.StatusCode())
	}

	rows := gjson.GetBytes(resp.Body(), "results")
	candidates := make([]model.Candidate, 0, len(rows.Array()))
	for _, row := range rows.Array() {
		candidates = append(candidates, decodeCandidate(row))
	}
	return candidates, nil
}

func decodeCandidate(row gjson.Result) model.Candidate {
	c := model.Candidate{
		ID:      row.Get("id").Int(),
		Name:    row.Get("nome").String(),
		Phone:   row.Get("telefone").String(),
		Score:   int(row.Get("score").Int()),
		Summary: row.Get("resumo_ia").String(),
	}
	for _, ref := range row.Get("vaga").Array() {
		c.Job = append(c.Job, model.RowRef{ID: ref.Get("id").Int(), Value: ref.Get("value").String()})
	}
	for _, ref := range row.Get("usuario").Array() {
		c.User = append(c.User, model.RowRef{ID: ref.Get("id").Int(), Value: ref.Get("value").String()})
	}
	for _, f := range row.Get("curriculo").Array() {
		c.Resume = append(c.Resume, model.FileRef{Name: f.Get("name").String(), URL: f.Get("url").String()})
	}
	return c
}

func candidateName(name string) string {
	if name == "" {
		return PlaceholderName
	}
	return name
}

// coerceScore turns the webhook's raw score into an int, defaulting to
// 0 for absent or non-numeric input. Out-of-range values pass through
// unclamped, matching the store's observed contents.
func coerceScore(raw string) int {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
