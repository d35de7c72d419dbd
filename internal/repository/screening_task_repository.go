package repository

import (
	"github.com/focoserv/triagem/internal/model"
	"gorm.io/gorm"
)

type ScreeningTaskRepository struct {
	db *gorm.DB
}

func NewScreeningTaskRepository(db *gorm.DB) *ScreeningTaskRepository {
	return &ScreeningTaskRepository{db}
}

func (r *ScreeningTaskRepository) CreateTask(task *model.ScreeningTask) error {
	return r.db.Create(task).Error
}

func (r *ScreeningTaskRepository) UpdateTask(task *model.ScreeningTask) error {
	return r.db.Save(task).Error
}

func (r *ScreeningTaskRepository) FindTaskByID(id string) (*model.ScreeningTask, error) {
	var task model.ScreeningTask
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}
