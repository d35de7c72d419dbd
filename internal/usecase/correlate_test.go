package usecase

import (
	"testing"

	"github.com/focoserv/triagem/internal/model"
)

func makeFiles(n int) []model.SubmissionFile {
	files := make([]model.SubmissionFile, n)
	for i := range files {
		files[i] = model.SubmissionFile{Ordinal: i, Name: "cv.pdf", Content: []byte{byte(i)}}
	}
	return files
}

func TestCorrelateOneResultPerFile(t *testing.T) {
	files := makeFiles(3)
	results := []model.AnalysisResult{{Name: "Ana"}, {Name: "Bruno"}, {Name: "Carla"}}

	pairs := correlate(files, results)

	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3", len(pairs))
	}
	for i, p := range pairs {
		if p.File.Ordinal != i {
			t.Errorf("pair %d has file ordinal %d", i, p.File.Ordinal)
		}
		if p.Result == nil || p.Result.Name != results[i].Name {
			t.Errorf("pair %d result = %v, want %q", i, p.Result, results[i].Name)
		}
	}
}

func TestCorrelateFewerResults(t *testing.T) {
	files := makeFiles(4)
	results := []model.AnalysisResult{{Name: "Ana"}, {Name: "Bruno"}}

	pairs := correlate(files, results)

	if len(pairs) != 4 {
		t.Fatalf("len(pairs) = %d, want 4", len(pairs))
	}
	for i := 0; i < 2; i++ {
		if pairs[i].Result == nil {
			t.Errorf("pair %d should have a result", i)
		}
	}
	for i := 2; i < 4; i++ {
		if pairs[i].Result != nil {
			t.Errorf("trailing pair %d should have no result, got %v", i, pairs[i].Result)
		}
	}
}

func TestCorrelateExtraResultsDiscarded(t *testing.T) {
	files := makeFiles(2)
	results := []model.AnalysisResult{{Name: "Ana"}, {Name: "Bruno"}, {Name: "Extra"}}

	pairs := correlate(files, results)

	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	for _, p := range pairs {
		if p.Result != nil && p.Result.Name == "Extra" {
			t.Error("extra result should have been discarded")
		}
	}
}

// Pairing is order-determined, never content-determined: swapping two
// files' content must change which result each payload is bound to.
func TestCorrelateIsPositionalNotContentBased(t *testing.T) {
	results := []model.AnalysisResult{{Name: "First"}, {Name: "Second"}}

	files := makeFiles(2)
	swapped := makeFiles(2)
	swapped[0].Content, swapped[1].Content = files[1].Content, files[0].Content

	pairs := correlate(files, results)
	swappedPairs := correlate(swapped, results)

	if pairs[0].Result.Name != swappedPairs[0].Result.Name {
		t.Error("position 0 must always bind to result 0, regardless of content")
	}
	if string(pairs[0].File.Content) == string(swappedPairs[0].File.Content) {
		t.Fatal("test setup broken: contents were not swapped")
	}
}

func TestCorrelateEmptyResults(t *testing.T) {
	pairs := correlate(makeFiles(2), nil)
	for i, p := range pairs {
		if p.Result != nil {
			t.Errorf("pair %d should be unmatched", i)
		}
	}
}
