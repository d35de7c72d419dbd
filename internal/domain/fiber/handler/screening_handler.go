package handler

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/focoserv/triagem/internal/dto"
	"github.com/focoserv/triagem/internal/middleware"
	"github.com/focoserv/triagem/internal/model"
	"github.com/focoserv/triagem/internal/repository"
	"github.com/focoserv/triagem/internal/response"
	"github.com/focoserv/triagem/internal/usecase"
	"github.com/focoserv/triagem/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 10 * 1024 * 1024

type ScreeningHandler struct {
	uc         *usecase.ScreeningUsecase
	candidates *repository.CandidateRepository
}

func NewScreeningHandler(uc *usecase.ScreeningUsecase, candidates *repository.CandidateRepository) *ScreeningHandler {
	return &ScreeningHandler{uc: uc, candidates: candidates}
}

func (h *ScreeningHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/screenings", middleware.RateLimiter(2, 10*time.Second), h.Submit)
	app.Get("/screenings/:id", h.Status)
	app.Get("/candidates", h.Candidates)
}

func (h *ScreeningHandler) Submit(c *fiber.Ctx) error {
	jobID, err := formID(c, "job_id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "job_id is required",
		}, err)
	}
	userID, err := formID(c, "user_id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "user_id is required",
		}, err)
	}

	files, err := h.collectFiles(c)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "at least one curriculos file is required",
		}, nil)
	}

	id, err := h.uc.Submit(files, jobID, userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit screening",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Screening submitted",
		Data:    fiber.Map{"id": id, "status": "processing"},
	})
}

// collectFiles reads the multipart parts in form order; that order is
// the correlation contract with the analysis service, so it is fixed
// here and never reshuffled downstream.
func (h *ScreeningHandler) collectFiles(c *fiber.Ctx) ([]model.SubmissionFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "multipart form is required",
		}, err)
	}

	var files []model.SubmissionFile
	for _, fh := range form.File["curriculos"] {
		if fh.Size > maxResumeSize {
			return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "curriculos file size is too large (max 10MB)",
			}, nil)
		}
		src, err := fh.Open()
		if err != nil {
			return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot read curriculos file",
			}, err)
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot read curriculos file",
			}, err)
		}
		files = append(files, model.SubmissionFile{
			Ordinal: len(files),
			Name:    fh.Filename,
			Content: content,
		})
	}
	return files, nil
}

func (h *ScreeningHandler) Status(c *fiber.Ctx) error {
	id := c.Params("id")
	task, progress, err := h.uc.GetTask(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "screening not found",
		}, nil)
	}

	data := dto.ScreeningTaskDTO{
		ID:           task.ID,
		JobID:        task.JobID,
		UserID:       task.UserID,
		Status:       task.Status,
		Progress:     progress,
		FileCount:    task.FileCount,
		CreatedCount: task.CreatedCount,
		SkippedCount: task.SkippedCount,
		FailedCount:  task.FailedCount,
		Error:        task.Error,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
	if task.Result != "" {
		data.Result = json.RawMessage(task.Result)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get screening status",
		Data:    data,
	})
}

func (h *ScreeningHandler) Candidates(c *fiber.Ctx) error {
	jobID, err := strconv.ParseInt(c.Query("job_id"), 10, 64)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "job_id is required",
		}, err)
	}
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "user_id is required",
		}, err)
	}

	candidates, err := h.candidates.Fetch(c.Context(), jobID, userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch candidates",
		}, err)
	}

	repository.Sort(candidates, c.Query("sort", repository.SortByScore), c.Query("direction", repository.Descending))

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidates",
		Data:    candidates,
		Pagination: &response.Pagination{
			Page:       1,
			PageSize:   len(candidates),
			TotalPages: 1,
			TotalItems: int64(len(candidates)),
			From:       1,
			To:         len(candidates),
		},
	})
}

func formID(c *fiber.Ctx, field string) (int64, error) {
	return strconv.ParseInt(c.FormValue(field), 10, 64)
}
