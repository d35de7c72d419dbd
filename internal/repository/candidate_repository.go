package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/focoserv/triagem/internal/model"
	"github.com/focoserv/triagem/internal/service"
)

const (
	SortByName  = "nome"
	SortByScore = "score"

	Ascending  = "ascending"
	Descending = "descending"
)

// CandidateRepository is the read path for persisted candidates. The
// store is queried broadly (server-side filter on user only) and the
// job membership check happens here: the store's own link filter on
// vaga is not assumed reliable, so this filter is the ground truth for
// "belongs to this job".
type CandidateRepository struct {
	store service.RecordStoreInterface
}

func NewCandidateRepository(store service.RecordStoreInterface) *CandidateRepository {
	return &CandidateRepository{store: store}
}

func (r *CandidateRepository) Fetch(ctx context.Context, jobID, userID int64) ([]model.Candidate, error) {
	rows, err := r.store.ListCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(rows))
	for _, c := range rows {
		if belongsToJob(c, jobID) {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func belongsToJob(c model.Candidate, jobID int64) bool {
	for _, ref := range c.Job {
		if ref.ID == jobID {
			return true
		}
	}
	return false
}

// Sort orders candidates in place by name (case-insensitive) or score.
// Unknown keys fall back to score, unknown directions to descending,
// matching the product's default view. Ties keep input order.
func Sort(candidates []model.Candidate, key, direction string) {
	if key != SortByName {
		key = SortByScore
	}
	asc := direction == Ascending

	sort.SliceStable(candidates, func(i, j int) bool {
		var less bool
		if key == SortByName {
			less = strings.ToLower(candidates[i].Name) < strings.ToLower(candidates[j].Name)
		} else {
			less = candidates[i].Score < candidates[j].Score
		}
		if asc {
			return less
		}
		if key == SortByName {
			return strings.ToLower(candidates[i].Name) > strings.ToLower(candidates[j].Name)
		}
		return candidates[i].Score > candidates[j].Score
	})
}
