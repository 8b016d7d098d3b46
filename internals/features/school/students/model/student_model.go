// internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NOTE:
// - students_id is the small human-facing roll number; auto-increment,
//   never reused (soft delete keeps the row)
// - students_dob is a plain calendar date; the portal matches it exactly
// - students_class_id nullable: a student may be unassigned at any time
type StudentModel struct {
	StudentsID int `gorm:"column:students_id;primaryKey;autoIncrement" json:"students_id"`

	StudentsName string         `gorm:"column:students_name;type:varchar(120);not null" json:"students_name"`
	StudentsDOB  datatypes.Date `gorm:"column:students_dob;not null" json:"students_dob"`

	StudentsProfilePictureURL *string    `gorm:"column:students_profile_picture_url;type:text" json:"students_profile_picture_url,omitempty"`
	StudentsClassID           *uuid.UUID `gorm:"column:students_class_id;type:uuid;index" json:"students_class_id,omitempty"`

	StudentsCreatedAt time.Time      `gorm:"column:students_created_at;not null;autoCreateTime" json:"students_created_at"`
	StudentsUpdatedAt time.Time      `gorm:"column:students_updated_at;not null;autoUpdateTime" json:"students_updated_at"`
	StudentsDeletedAt gorm.DeletedAt `gorm:"column:students_deleted_at;index" json:"students_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
