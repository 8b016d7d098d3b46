// internals/features/school/marks/controller/mark_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "nilaiku_backend/internals/features/school/classes/model"
	examModel "nilaiku_backend/internals/features/school/exams/model"
	markDTO "nilaiku_backend/internals/features/school/marks/dto"
	markModel "nilaiku_backend/internals/features/school/marks/model"
	studentModel "nilaiku_backend/internals/features/school/students/model"
	helper "nilaiku_backend/internals/helpers"
)

type MarksController struct {
	DB *gorm.DB
}

// LIST BY EXAM
// GET /api/a/marks/exam/:exam_id
// Returns every mark row for the exam (all students, all subjects),
// published or not — admins are exempt from the publication gate.
func (h *MarksController) ListMarksForExam(c *fiber.Ctx) error {
	examID, err := uuid.Parse(strings.TrimSpace(c.Params("exam_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
	}

	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&examModel.ExamModel{}).
		Where("exams_id = ?", examID).
		Count(&cnt).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}

	var rows []markModel.MarkModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("marks_exam_id = ?", examID).
		Find(&rows).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonOK(c, "", markDTO.FromMarkModels(rows))
}

// UPSERT
// POST /api/a/marks
// Last write wins on the composite (student, exam, subject) key. Writes
// against a subject no longer in the exam's class are rejected, not
// accepted as orphans.
func (h *MarksController) UpsertMark(c *fiber.Ctx) error {
	var req markDTO.UpsertMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := markDTO.ValidateValue(req.Value); err != nil {
		return err
	}

	var saved markModel.MarkModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var exam examModel.ExamModel
		if err := tx.First(&exam, "exams_id = ?", req.ExamID).Error; err != nil {
			return helper.FromDBError(err, "Exam not found")
		}

		// subject must be in the exam's class RIGHT NOW (live roster)
		var subjCnt int64
		if err := tx.Model(&classModel.SubjectModel{}).
			Where("subjects_id = ? AND subjects_class_id = ?", req.SubjectID, exam.ExamsClassID).
			Count(&subjCnt).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		if subjCnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Subject is not part of this exam's class")
		}

		var studCnt int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("students_id = ?", req.StudentID).
			Count(&studCnt).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		if studCnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Student does not exist")
		}

		m := req.ToModel()
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "marks_student_id"},
				{Name: "marks_exam_id"},
				{Name: "marks_subject_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"marks_value":      req.Value,
				"marks_updated_at": time.Now(),
			}),
		}).Create(&m).Error; err != nil {
			return helper.FromDBError(err, "")
		}

		// re-read so the response carries the stored row (id, timestamps)
		if err := tx.
			Where("marks_student_id = ? AND marks_exam_id = ? AND marks_subject_id = ?",
				req.StudentID, req.ExamID, req.SubjectID).
			First(&saved).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonOK(c, "Mark saved", markDTO.FromMarkModel(saved))
}
