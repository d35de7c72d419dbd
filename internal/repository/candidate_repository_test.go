package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/focoserv/triagem/internal/model"
)

type stubLister struct {
	rows []model.Candidate
	err  error
}

func (s *stubLister) ListCandidates(ctx context.Context, userID int64) ([]model.Candidate, error) {
	return s.rows, s.err
}

func (s *stubLister) Persist(ctx context.Context, pair model.CorrelatedPair, jobID, userID int64) (model.Candidate, error) {
	return model.Candidate{}, errors.New("not implemented")
}

func job(id int64) []model.RowRef {
	return []model.RowRef{{ID: id, Value: "Vaga"}}
}

func TestFetchKeepsOnlyRequestedJob(t *testing.T) {
	lister := &stubLister{rows: []model.Candidate{
		{ID: 1, Name: "Ana", Job: job(7)},
		{ID: 2, Name: "Bruno", Job: job(8)}, // server filter let this through anyway
		{ID: 3, Name: "Carla", Job: append(job(8), model.RowRef{ID: 7})},
		{ID: 4, Name: "Duda"}, // no job relation at all
	}}

	got, err := NewCandidateRepository(lister).Fetch(context.Background(), 7, 11)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("got ids %d,%d, want 1,3", got[0].ID, got[1].ID)
	}
}

func TestFetchPropagatesStoreError(t *testing.T) {
	lister := &stubLister{err: errors.New("store down")}
	if _, err := NewCandidateRepository(lister).Fetch(context.Background(), 7, 11); err == nil {
		t.Fatal("Fetch() should propagate the store error")
	}
}

func candidates() []model.Candidate {
	return []model.Candidate{
		{ID: 1, Name: "bruno", Score: 40},
		{ID: 2, Name: "Ana", Score: 90},
		{ID: 3, Name: "carla", Score: 60},
	}
}

func ids(cs []model.Candidate) []int64 {
	out := make([]int64, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		direction string
		want      []int64
	}{
		{"score descending", SortByScore, Descending, []int64{2, 3, 1}},
		{"score ascending", SortByScore, Ascending, []int64{1, 3, 2}},
		{"name ascending is case-insensitive", SortByName, Ascending, []int64{2, 1, 3}},
		{"name descending", SortByName, Descending, []int64{3, 1, 2}},
		{"unknown key falls back to score desc", "telefone", "", []int64{2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := candidates()
			Sort(cs, tt.key, tt.direction)
			got := ids(cs)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortTiesKeepInputOrder(t *testing.T) {
	cs := []model.Candidate{
		{ID: 1, Score: 50},
		{ID: 2, Score: 50},
		{ID: 3, Score: 50},
	}
	Sort(cs, SortByScore, Descending)
	if cs[0].ID != 1 || cs[1].ID != 2 || cs[2].ID != 3 {
		t.Errorf("tied order = %v, want stable 1,2,3", ids(cs))
	}
}

func TestSortMissingValuesSortAsZero(t *testing.T) {
	cs := []model.Candidate{
		{ID: 1, Name: "Ana", Score: 10},
		{ID: 2}, // unscored, unnamed
	}

	Sort(cs, SortByScore, Descending)
	if cs[1].ID != 2 {
		t.Errorf("unscored candidate should sort last on descending score, got %v", ids(cs))
	}

	Sort(cs, SortByName, Ascending)
	if cs[0].ID != 2 {
		t.Errorf("unnamed candidate should sort first on ascending name, got %v", ids(cs))
	}
}
