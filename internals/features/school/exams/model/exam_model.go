// internals/features/school/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NOTE:
// - an exam grades against its class's LIVE subject list, never a snapshot
//   taken at creation time
// - exams_is_published gates all public visibility of this exam's marks
type ExamModel struct {
	ExamsID uuid.UUID `gorm:"column:exams_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exams_id"`

	ExamsName    string         `gorm:"column:exams_name;type:varchar(120);not null" json:"exams_name"`
	ExamsDate    datatypes.Date `gorm:"column:exams_date;not null" json:"exams_date"`
	ExamsClassID uuid.UUID      `gorm:"column:exams_class_id;type:uuid;not null;index" json:"exams_class_id"`

	ExamsIsPublished bool `gorm:"column:exams_is_published;not null;default:false" json:"exams_is_published"`

	ExamsCreatedAt time.Time      `gorm:"column:exams_created_at;not null;autoCreateTime" json:"exams_created_at"`
	ExamsUpdatedAt time.Time      `gorm:"column:exams_updated_at;not null;autoUpdateTime" json:"exams_updated_at"`
	ExamsDeletedAt gorm.DeletedAt `gorm:"column:exams_deleted_at;index" json:"exams_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }
