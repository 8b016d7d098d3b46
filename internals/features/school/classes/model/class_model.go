// internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassesID   uuid.UUID `gorm:"column:classes_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classes_id"`
	ClassesName string    `gorm:"column:classes_name;type:varchar(120);not null" json:"classes_name"`

	ClassesCreatedAt time.Time      `gorm:"column:classes_created_at;not null;autoCreateTime" json:"classes_created_at"`
	ClassesUpdatedAt time.Time      `gorm:"column:classes_updated_at;not null;autoUpdateTime" json:"classes_updated_at"`
	ClassesDeletedAt gorm.DeletedAt `gorm:"column:classes_deleted_at;index" json:"classes_deleted_at,omitempty"`

	// Ordered by subjects_position; insertion order is the canonical
	// display and report order.
	Subjects []SubjectModel `gorm:"foreignKey:SubjectsClassID;references:ClassesID" json:"subjects"`
}

func (ClassModel) TableName() string { return "classes" }
