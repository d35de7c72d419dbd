package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/focoserv/triagem/internal/model"
	"github.com/focoserv/triagem/internal/progress"
	"github.com/focoserv/triagem/internal/repository"
	"github.com/focoserv/triagem/internal/service"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ScreeningUsecase drives one batch end to end: analyze all files in a
// single webhook call, correlate results by position, then persist
// every correlated pair concurrently and aggregate the outcomes.
type ScreeningUsecase struct {
	taskRepo *repository.ScreeningTaskRepository
	analysis service.AnalysisServiceInterface
	store    service.RecordStoreInterface

	mu         sync.Mutex
	estimators map[uuid.UUID]*progress.Estimator
}

func NewScreeningUsecase(taskRepo *repository.ScreeningTaskRepository, analysis service.AnalysisServiceInterface, store service.RecordStoreInterface) *ScreeningUsecase {
	return &ScreeningUsecase{
		taskRepo:   taskRepo,
		analysis:   analysis,
		store:      store,
		estimators: make(map[uuid.UUID]*progress.Estimator),
	}
}

// Submit records a processing task and runs the batch in the
// background. The returned id is the handle for polling status and
// progress.
func (uc *ScreeningUsecase) Submit(files []model.SubmissionFile, jobID, userID int64) (string, error) {
	task := model.ScreeningTask{
		JobID:     jobID,
		UserID:    userID,
		Status:    "processing",
		FileCount: len(files),
		Result:    "{}",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.taskRepo.CreateTask(&task); err != nil {
		return "", err
	}

	est := progress.NewEstimator()
	uc.mu.Lock()
	uc.estimators[task.ID] = est
	uc.mu.Unlock()

	go uc.runTask(&task, files, est)

	return task.ID.String(), nil
}

func (uc *ScreeningUsecase) runTask(task *model.ScreeningTask, files []model.SubmissionFile, est *progress.Estimator) {
	result, err := uc.Run(context.Background(), files, task.JobID, task.UserID, est)

	defer func() {
		uc.mu.Lock()
		delete(uc.estimators, task.ID)
		uc.mu.Unlock()
	}()

	if err != nil {
		log.Printf("screening task %s failed: %v", task.ID, err)
		task.Status = "failed"
		task.Error = err.Error()
		task.UpdatedAt = time.Now()
		_ = uc.taskRepo.UpdateTask(task)
		return
	}

	task.Status = "completed"
	task.CreatedCount = len(result.Created)
	task.SkippedCount = len(result.Skipped)
	task.FailedCount = len(result.Failures)
	task.Result = encodeResult(result)
	task.UpdatedAt = time.Now()
	_ = uc.taskRepo.UpdateTask(task)
}

// Run is the synchronous core of a batch. A single analysis failure
// aborts everything with no partial state; after correlation succeeds,
// each pair persists independently and one pair's failure never blocks
// or cancels the others. Every input file ends up in exactly one of
// created, skipped or failures.
func (uc *ScreeningUsecase) Run(ctx context.Context, files []model.SubmissionFile, jobID, userID int64, est *progress.Estimator) (*model.BatchResult, error) {
	est.Start()
	results, err := uc.analysis.Analyze(ctx, files, jobID)
	est.Finish()
	if err != nil {
		return nil, err
	}

	if len(results) != len(files) {
		log.Printf("analysis returned %d result(s) for %d file(s); unmatched files will be skipped", len(results), len(files))
	}

	pairs := correlate(files, results)

	type outcome struct {
		candidate model.Candidate
		err       error
	}

	outcomes := make([]*outcome, len(pairs))
	g := new(errgroup.Group)
	for i, pair := range pairs {
		if pair.Result == nil {
			continue
		}
		i, pair := i, pair
		g.Go(func() error {
			// Persist errors land in the outcome slot so that one
			// failing pair cannot cancel its siblings.
			c, err := uc.store.Persist(ctx, pair, jobID, userID)
			outcomes[i] = &outcome{candidate: c, err: err}
			return nil
		})
	}
	_ = g.Wait()

	batch := &model.BatchResult{}
	for i, pair := range pairs {
		switch {
		case pair.Result == nil:
			batch.Skipped = append(batch.Skipped, pair.File)
		case outcomes[i].err != nil:
			batch.Failures = append(batch.Failures, model.PairFailure{File: pair.File, Err: outcomes[i].err})
		default:
			batch.Created = append(batch.Created, outcomes[i].candidate)
		}
	}
	return batch, nil
}

// GetTask returns the stored task plus the live progress estimate: the
// estimator value while the batch is in flight, 100 once it settled.
func (uc *ScreeningUsecase) GetTask(id string) (*model.ScreeningTask, int, error) {
	task, err := uc.taskRepo.FindTaskByID(id)
	if err != nil {
		return nil, 0, err
	}

	uc.mu.Lock()
	est, running := uc.estimators[task.ID]
	uc.mu.Unlock()

	if running {
		return task, est.Value(), nil
	}
	if task.Status == "processing" {
		return task, 0, nil
	}
	return task, 100, nil
}

func encodeResult(result *model.BatchResult) string {
	type failureJSON struct {
		File  string `json:"file"`
		Error string `json:"error"`
	}
	summary := struct {
		Created  []model.Candidate `json:"created"`
		Skipped  []string          `json:"skipped"`
		Failures []failureJSON     `json:"failures"`
	}{Created: result.Created}
	for _, f := range result.Skipped {
		summary.Skipped = append(summary.Skipped, f.Name)
	}
	for _, f := range result.Failures {
		summary.Failures = append(summary.Failures, failureJSON{File: f.File.Name, Error: f.Err.Error()})
	}
	encoded, err := json.Marshal(summary)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
