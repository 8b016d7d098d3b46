// internals/features/school/students/controller/student_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "nilaiku_backend/internals/features/school/classes/model"
	studentDTO "nilaiku_backend/internals/features/school/students/dto"
	studentModel "nilaiku_backend/internals/features/school/students/model"
	helper "nilaiku_backend/internals/helpers"
)

type StudentsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/a/students
func (h *StudentsController) CreateStudent(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// class must exist when assigned
	if req.ClassID != nil {
		if err := h.classExists(c, *req.ClassID); err != nil {
			return err
		}
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonCreated(c, "Student created", studentDTO.FromStudentModel(m))
}

// GET BY ID
// GET /api/a/students/:id
func (h *StudentsController) GetStudent(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return err
	}

	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "students_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Student not found")
	}

	return helper.JsonOK(c, "Student found", studentDTO.FromStudentModel(m))
}

// LIST
// GET /api/a/students?q=&class_id=&page=&per_page=
func (h *StudentsController) ListStudents(c *fiber.Ctx) error {
	var q studentDTO.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{})
	if q.ClassID != nil {
		tx = tx.Where("students_class_id = ?", *q.ClassID)
	}
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		kw := "%" + strings.ToLower(strings.TrimSpace(*q.Q)) + "%"
		tx = tx.Where("LOWER(students_name) LIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	var rows []studentModel.StudentModel
	if err := tx.
		Order("students_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonList(c, "",
		studentDTO.FromStudentModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage),
	)
}

// UPDATE (partial)
// PUT /api/a/students/:id
func (h *StudentsController) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return err
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.ClassID.Present && req.ClassID.Value != nil {
		if err := h.classExists(c, *req.ClassID.Value); err != nil {
			return err
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m studentModel.StudentModel
		if err := tx.First(&m, "students_id = ?", id).Error; err != nil {
			return helper.FromDBError(err, "Student not found")
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			return helper.FromDBError(err, "")
		}

		c.Locals("updated_student", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_student").(studentModel.StudentModel)
	return helper.JsonUpdated(c, "Student updated", studentDTO.FromStudentModel(m))
}

// DELETE (soft)
// DELETE /api/a/students/:id
// Marks referencing the student stay in place and become orphaned; the
// aggregator ignores them.
func (h *StudentsController) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return err
	}

	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "students_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Student not found")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&studentModel.StudentModel{}, "students_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonDeleted(c, "Student deleted", studentDTO.FromStudentModel(m))
}

func (h *StudentsController) classExists(c *fiber.Ctx, classID uuid.UUID) error {
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

func parseStudentID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}
	return id, nil
}
