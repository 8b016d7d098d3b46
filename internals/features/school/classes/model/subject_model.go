// internals/features/school/classes/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - subject identity is stable once created; rename is not supported,
//   only add/remove (marks reference subjects_id)
// - subjects_position records insertion order within the class
type SubjectModel struct {
	SubjectsID      uuid.UUID `gorm:"column:subjects_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subjects_id"`
	SubjectsClassID uuid.UUID `gorm:"column:subjects_class_id;type:uuid;not null;index" json:"subjects_class_id"`

	SubjectsName     string `gorm:"column:subjects_name;type:varchar(120);not null" json:"subjects_name"`
	SubjectsPosition int    `gorm:"column:subjects_position;not null" json:"subjects_position"`

	SubjectsCreatedAt time.Time      `gorm:"column:subjects_created_at;not null;autoCreateTime" json:"subjects_created_at"`
	SubjectsDeletedAt gorm.DeletedAt `gorm:"column:subjects_deleted_at;index" json:"subjects_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
