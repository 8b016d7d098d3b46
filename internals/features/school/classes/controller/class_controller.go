// internals/features/school/classes/controller/class_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "nilaiku_backend/internals/features/school/classes/dto"
	classModel "nilaiku_backend/internals/features/school/classes/model"
	examModel "nilaiku_backend/internals/features/school/exams/model"
	studentModel "nilaiku_backend/internals/features/school/students/model"
	helper "nilaiku_backend/internals/helpers"
)

type ClassesController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/a/classes
func (h *ClassesController) CreateClass(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	m.Subjects = []classModel.SubjectModel{}

	return helper.JsonCreated(c, "Class created", classDTO.FromClassModel(m))
}

// GET BY ID
// GET /api/a/classes/:id
func (h *ClassesController) GetClass(c *fiber.Ctx) error {
	id, err := parseClassID(c)
	if err != nil {
		return err
	}

	var m classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Subjects", subjectOrder).
		First(&m, "classes_id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Class not found")
	}

	return helper.JsonOK(c, "Class found", classDTO.FromClassModel(m))
}

// LIST
// GET /api/a/classes?page=&per_page=
func (h *ClassesController) ListClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.WithContext(c.UserContext()).Model(&classModel.ClassModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	var rows []classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Subjects", subjectOrder).
		Order("classes_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonList(c, "",
		classDTO.FromClassModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage),
	)
}

// UPDATE
// PUT /api/a/classes/:id
// Renames the class and/or reconciles its subject list: entries with an
// id must match an existing subject (unchanged name — rename is not
// supported), entries without an id are appended in request order,
// existing subjects missing from the list are removed.
func (h *ClassesController) UpdateClass(c *fiber.Ctx) error {
	id, err := parseClassID(c)
	if err != nil {
		return err
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m classModel.ClassModel
		if err := tx.Preload("Subjects", subjectOrder).
			First(&m, "classes_id = ?", id).Error; err != nil {
			return helper.FromDBError(err, "Class not found")
		}

		if req.Name != nil {
			m.ClassesName = *req.Name
			if err := tx.Model(&classModel.ClassModel{}).
				Where("classes_id = ?", m.ClassesID).
				Update("classes_name", m.ClassesName).Error; err != nil {
				return helper.FromDBError(err, "")
			}
		}

		if req.Subjects != nil {
			if err := reconcileSubjects(tx, &m, *req.Subjects); err != nil {
				return err
			}
		}

		c.Locals("updated_class", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_class").(classModel.ClassModel)
	return helper.JsonUpdated(c, "Class updated", classDTO.FromClassModel(m))
}

// ADD SUBJECT
// POST /api/a/classes/:id/subjects
func (h *ClassesController) AddSubject(c *fiber.Ctx) error {
	id, err := parseClassID(c)
	if err != nil {
		return err
	}

	var req classDTO.AddSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var created classModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("classes_id = ?", id).Count(&cnt).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}

		pos, err := nextSubjectPosition(tx, id)
		if err != nil {
			return helper.FromDBError(err, "")
		}

		created = classModel.SubjectModel{
			SubjectsClassID:  id,
			SubjectsName:     req.Name,
			SubjectsPosition: pos,
		}
		if err := tx.Create(&created).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Subject added", classDTO.FromSubjectModel(created))
}

// REMOVE SUBJECT
// DELETE /api/a/classes/:id/subjects/:subject_id
// Marks against the removed subject become orphaned; the aggregator stops
// reporting them on the next computation.
func (h *ClassesController) RemoveSubject(c *fiber.Ctx) error {
	id, err := parseClassID(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("subject_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("subjects_id = ? AND subjects_class_id = ?", subjectID, id).
		Delete(&classModel.SubjectModel{})
	if res.Error != nil {
		return helper.FromDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}

	return helper.JsonDeleted(c, "Subject removed", fiber.Map{"subjects_id": subjectID})
}

// DELETE
// DELETE /api/a/classes/:id
// Cascade in one transaction: students unassigned, exams and subjects
// soft-deleted. Mark rows are left orphaned.
func (h *ClassesController) DeleteClass(c *fiber.Ctx) error {
	id, err := parseClassID(c)
	if err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m classModel.ClassModel
		if err := tx.First(&m, "classes_id = ?", id).Error; err != nil {
			return helper.FromDBError(err, "Class not found")
		}

		if err := tx.Model(&studentModel.StudentModel{}).
			Where("students_class_id = ?", id).
			Update("students_class_id", nil).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		if err := tx.Where("exams_class_id = ?", id).
			Delete(&examModel.ExamModel{}).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		if err := tx.Where("subjects_class_id = ?", id).
			Delete(&classModel.SubjectModel{}).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		if err := tx.Delete(&classModel.ClassModel{}, "classes_id = ?", id).Error; err != nil {
			return helper.FromDBError(err, "")
		}

		c.Locals("deleted_class", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_class").(classModel.ClassModel)
	return helper.JsonDeleted(c, "Class deleted", classDTO.FromClassModel(m))
}

/* =========================================================
   Helpers
   ========================================================= */

func subjectOrder(db *gorm.DB) *gorm.DB {
	return db.Order("subjects_position ASC")
}

func nextSubjectPosition(tx *gorm.DB, classID uuid.UUID) (int, error) {
	var maxPos *int
	if err := tx.Model(&classModel.SubjectModel{}).
		Where("subjects_class_id = ?", classID).
		Select("MAX(subjects_position)").
		Scan(&maxPos).Error; err != nil {
		return 0, err
	}
	if maxPos == nil {
		return 1, nil
	}
	return *maxPos + 1, nil
}

// reconcileSubjects applies the requested subject list to the class inside
// tx and refreshes m.Subjects to the resulting ordered roster.
func reconcileSubjects(tx *gorm.DB, m *classModel.ClassModel, inputs []classDTO.SubjectInput) error {
	existing := make(map[uuid.UUID]classModel.SubjectModel, len(m.Subjects))
	for _, s := range m.Subjects {
		existing[s.SubjectsID] = s
	}

	keep := make(map[uuid.UUID]bool, len(inputs))
	var toAdd []string
	for _, in := range inputs {
		if in.ID == nil {
			toAdd = append(toAdd, in.Name)
			continue
		}
		cur, ok := existing[*in.ID]
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown subject in list")
		}
		if cur.SubjectsName != in.Name {
			return fiber.NewError(fiber.StatusBadRequest, "Subject rename is not supported")
		}
		keep[*in.ID] = true
	}

	// remove subjects dropped from the list
	for id := range existing {
		if keep[id] {
			continue
		}
		if err := tx.Where("subjects_id = ?", id).
			Delete(&classModel.SubjectModel{}).Error; err != nil {
			return helper.FromDBError(err, "")
		}
	}

	// append new subjects in request order
	pos, err := nextSubjectPosition(tx, m.ClassesID)
	if err != nil {
		return helper.FromDBError(err, "")
	}
	for _, name := range toAdd {
		s := classModel.SubjectModel{
			SubjectsClassID:  m.ClassesID,
			SubjectsName:     name,
			SubjectsPosition: pos,
		}
		if err := tx.Create(&s).Error; err != nil {
			return helper.FromDBError(err, "")
		}
		pos++
	}

	var refreshed []classModel.SubjectModel
	if err := tx.Where("subjects_class_id = ?", m.ClassesID).
		Order("subjects_position ASC").
		Find(&refreshed).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	m.Subjects = refreshed
	return nil
}

func parseClassID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}
	return id, nil
}
