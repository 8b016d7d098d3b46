// internals/features/school/exams/controller/exam_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "nilaiku_backend/internals/features/school/classes/model"
	examDTO "nilaiku_backend/internals/features/school/exams/dto"
	examModel "nilaiku_backend/internals/features/school/exams/model"
	helper "nilaiku_backend/internals/helpers"
)

type ExamsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/a/exams
func (h *ExamsController) CreateExam(c *fiber.Ctx) error {
	var req examDTO.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.classExists(c, req.ClassID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonCreated(c, "Exam created", examDTO.FromExamModel(m))
}

// GET BY ID
// GET /api/a/exams/:id
func (h *ExamsController) GetExam(c *fiber.Ctx) error {
	id, err := parseExamID(c)
	if err != nil {
		return err
	}

	var m examModel.ExamModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "exams_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Exam not found")
	}

	return helper.JsonOK(c, "Exam found", examDTO.FromExamModel(m))
}

// LIST
// GET /api/a/exams?class_id=&is_published=&page=&per_page=
// Admin surface: lists unpublished exams too — the publication gate only
// applies to the public portal.
func (h *ExamsController) ListExams(c *fiber.Ctx) error {
	var q examDTO.ListExamQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.WithContext(c.UserContext()).Model(&examModel.ExamModel{})
	if q.ClassID != nil {
		tx = tx.Where("exams_class_id = ?", *q.ClassID)
	}
	if q.IsPublished != nil {
		tx = tx.Where("exams_is_published = ?", *q.IsPublished)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	var rows []examModel.ExamModel
	if err := tx.
		Order("exams_date DESC, exams_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonList(c, "",
		examDTO.FromExamModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage),
	)
}

// UPDATE (partial, incl. publish/unpublish toggle)
// PUT /api/a/exams/:id
func (h *ExamsController) UpdateExam(c *fiber.Ctx) error {
	id, err := parseExamID(c)
	if err != nil {
		return err
	}

	var req examDTO.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.ClassID != nil {
		if err := h.classExists(c, *req.ClassID); err != nil {
			return err
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m examModel.ExamModel
		if err := tx.First(&m, "exams_id = ?", id).Error; err != nil {
			return helper.FromDBError(err, "Exam not found")
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			return helper.FromDBError(err, "")
		}

		c.Locals("updated_exam", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_exam").(examModel.ExamModel)
	return helper.JsonUpdated(c, "Exam updated", examDTO.FromExamModel(m))
}

// DELETE (soft)
// DELETE /api/a/exams/:id
// Marks of a deleted exam stay in place as orphans.
func (h *ExamsController) DeleteExam(c *fiber.Ctx) error {
	id, err := parseExamID(c)
	if err != nil {
		return err
	}

	var m examModel.ExamModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "exams_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Exam not found")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&examModel.ExamModel{}, "exams_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonDeleted(c, "Exam deleted", examDTO.FromExamModel(m))
}

func (h *ExamsController) classExists(c *fiber.Ctx, classID uuid.UUID) error {
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&classModel.ClassModel{}).
		Where("classes_id = ?", classID).
		Count(&cnt).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Class does not exist")
	}
	return nil
}

func parseExamID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid exam ID")
	}
	return id, nil
}
