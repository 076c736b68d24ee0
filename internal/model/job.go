package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	Name        string                 `gorm:"type:varchar(255);not null" json:"name"`
	Description string                 `gorm:"type:text" json:"description"`
	Type        string                 `gorm:"type:varchar(50);not null" json:"type"`
	Payload     datatypes.JSON         `gorm:"type:jsonb;not null" json:"payload"`
	Timeout     int                    `gorm:"default:60" json:"timeout"`
	CreatedAt   time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
	Schedules   []TaskSchedule         `gorm:"foreignKey:JobID" json:"schedules,omitempty"`
	Histories   []TaskExecutionHistory `gorm:"foreignKey:JobID" json:"histories,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}

// DecodePayload unmarshals the job's JSON payload into v.
func (j *Job) DecodePayload(v interface{}) error {
	if len(j.Payload) == 0 {
		return fmt.Errorf("job %d has an empty payload", j.ID)
	}
	if err := json.Unmarshal(j.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal job payload: %w", err)
	}
	return nil
}

type GetJobParam struct {
	IDs             []uint                        `json:"ids"`
	IsActive        *bool                         `json:"is_active"`
	Limit           *int                          `json:"limit"`
	WithTaskHistory *GetTaskExecutionHistoryParam `json:"with_task_history"`
}

type GetTaskExecutionHistoryParam struct {
	Limit *int `json:"limit"`
}
