// internals/features/school/results/controller/portal_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nilaiku_backend/internals/configs"
	classModel "nilaiku_backend/internals/features/school/classes/model"
	examModel "nilaiku_backend/internals/features/school/exams/model"
	resultDTO "nilaiku_backend/internals/features/school/results/dto"
	resultService "nilaiku_backend/internals/features/school/results/service"
	settingModel "nilaiku_backend/internals/features/school/settings/model"
	studentModel "nilaiku_backend/internals/features/school/students/model"
	helper "nilaiku_backend/internals/helpers"
)

type PortalController struct {
	DB      *gorm.DB
	Results *resultService.ResultService
}

func NewPortalController(db *gorm.DB) *PortalController {
	return &PortalController{
		DB:      db,
		Results: &resultService.ResultService{DB: db},
	}
}

// FIND RESULT
// POST /api/portal/result  (public)
// One generic "not found" for every miss — wrong id, wrong dob, no class,
// nothing published. Store timeouts surface as 503, never as 404.
func (h *PortalController) FindResult(c *fiber.Ctx) error {
	var req resultDTO.FindResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Student ID and date of birth are required")
	}
	dob, err := req.ParseDOB()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date of birth")
	}

	result, err := h.Results.FindResult(c.UserContext(), req.StudentID, dob)
	if err != nil {
		if errors.Is(err, resultService.ErrResultNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No result found")
		}
		return helper.FromDBError(err, "No result found")
	}

	return helper.JsonOK(c, "Result found", resultDTO.FromResult(*result))
}

// COLLEGE NAME (read)
// GET /api/portal/college-name  (public)
func (h *PortalController) GetCollegeName(c *fiber.Ctx) error {
	var s settingModel.SettingModel
	err := h.DB.WithContext(c.UserContext()).
		First(&s, "settings_key = ?", settingModel.KeyCollegeName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "", fiber.Map{"name": configs.CollegeNameEnv})
		}
		return helper.FromDBError(err, "")
	}
	return helper.JsonOK(c, "", fiber.Map{"name": s.SettingsValue})
}

// COLLEGE NAME (write)
// POST /api/portal/college-name  (admin)
func (h *PortalController) SetCollegeName(c *fiber.Ctx) error {
	var req resultDTO.SetCollegeNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	s := settingModel.SettingModel{
		SettingsKey:   settingModel.KeyCollegeName,
		SettingsValue: req.Name,
	}
	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "settings_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"settings_value", "settings_updated_at"}),
		}).Create(&s).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonUpdated(c, "College name saved", fiber.Map{"name": s.SettingsValue})
}

// DASHBOARD STATS
// GET /api/portal/stats  (admin)
func (h *PortalController) GetDashboardStats(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext())
	var stats resultDTO.DashboardStatsResponse

	if err := db.Model(&studentModel.StudentModel{}).Count(&stats.TotalStudents).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	if err := db.Model(&classModel.ClassModel{}).Count(&stats.TotalClasses).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	if err := db.Model(&examModel.ExamModel{}).Count(&stats.TotalExams).Error; err != nil {
		return helper.FromDBError(err, "")
	}
	if err := db.Model(&examModel.ExamModel{}).
		Where("exams_is_published = ?", true).
		Count(&stats.PublishedResults).Error; err != nil {
		return helper.FromDBError(err, "")
	}

	return helper.JsonOK(c, "", stats)
}
