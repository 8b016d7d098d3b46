// internals/features/school/marks/model/mark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// NOTE:
// - logical key is the composite (student, exam, subject); writes are
//   upserts against uq_marks_student_exam_subject, last write wins
// - marks_value NULL means "Not Graded"; absence of a row means the same
// - no soft delete: a mark whose student/exam/subject disappears is simply
//   orphaned and ignored by the aggregator
type MarkModel struct {
	MarksID uuid.UUID `gorm:"column:marks_id;type:uuid;default:gen_random_uuid();primaryKey" json:"marks_id"`

	MarksStudentID int       `gorm:"column:marks_student_id;not null;uniqueIndex:uq_marks_student_exam_subject" json:"marks_student_id"`
	MarksExamID    uuid.UUID `gorm:"column:marks_exam_id;type:uuid;not null;uniqueIndex:uq_marks_student_exam_subject;index" json:"marks_exam_id"`
	MarksSubjectID uuid.UUID `gorm:"column:marks_subject_id;type:uuid;not null;uniqueIndex:uq_marks_student_exam_subject" json:"marks_subject_id"`

	// 0..100, NULL = not graded
	MarksValue *int `gorm:"column:marks_value" json:"marks_value"`

	MarksCreatedAt time.Time `gorm:"column:marks_created_at;not null;autoCreateTime" json:"marks_created_at"`
	MarksUpdatedAt time.Time `gorm:"column:marks_updated_at;not null;autoUpdateTime" json:"marks_updated_at"`
}

func (MarkModel) TableName() string { return "marks" }
