package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "nilaiku_backend/internals/features/school/marks/model"
)

/* =========================================================
   UPSERT
   ========================================================= */

// Value nil clears the mark back to "Not Graded".
type UpsertMarkRequest struct {
	StudentID int       `json:"marks_student_id" validate:"required,gt=0"`
	ExamID    uuid.UUID `json:"marks_exam_id" validate:"required"`
	SubjectID uuid.UUID `json:"marks_subject_id" validate:"required"`
	Value     *int      `json:"marks_value"`
}

// ValidateValue enforces the closed [0,100] range for non-null marks.
// Kept separate from struct-tag validation so the rule is testable and
// reusable (`omitempty` tags skip zero, which is a valid mark here).
func ValidateValue(value *int) error {
	if value == nil {
		return nil
	}
	if *value < 0 || *value > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "Mark must be between 0 and 100")
	}
	return nil
}

func (r UpsertMarkRequest) ToModel() m.MarkModel {
	return m.MarkModel{
		MarksStudentID: r.StudentID,
		MarksExamID:    r.ExamID,
		MarksSubjectID: r.SubjectID,
		MarksValue:     r.Value,
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type MarkResponse struct {
	MarksID        uuid.UUID `json:"marks_id"`
	MarksStudentID int       `json:"marks_student_id"`
	MarksExamID    uuid.UUID `json:"marks_exam_id"`
	MarksSubjectID uuid.UUID `json:"marks_subject_id"`
	MarksValue     *int      `json:"marks_value"`
	MarksUpdatedAt time.Time `json:"marks_updated_at"`
}

func FromMarkModel(mo m.MarkModel) MarkResponse {
	return MarkResponse{
		MarksID:        mo.MarksID,
		MarksStudentID: mo.MarksStudentID,
		MarksExamID:    mo.MarksExamID,
		MarksSubjectID: mo.MarksSubjectID,
		MarksValue:     mo.MarksValue,
		MarksUpdatedAt: mo.MarksUpdatedAt,
	}
}

func FromMarkModels(rows []m.MarkModel) []MarkResponse {
	out := make([]MarkResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromMarkModel(rows[i]))
	}
	return out
}
