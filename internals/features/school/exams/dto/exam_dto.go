package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "nilaiku_backend/internals/features/school/exams/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
   CREATE
   ========================================================= */

// Exams are created unpublished; publishing is an explicit separate step.
type CreateExamRequest struct {
	Name    string    `json:"exams_name" validate:"required,min=1,max=120"`
	Date    string    `json:"exams_date" validate:"required,datetime=2006-01-02"`
	ClassID uuid.UUID `json:"exams_class_id" validate:"required"`
}

func (r *CreateExamRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Date = strings.TrimSpace(r.Date)
}

func (r CreateExamRequest) ToModel() m.ExamModel {
	d, _ := time.Parse(dateLayout, r.Date) // validated upstream
	return m.ExamModel{
		ExamsName:        r.Name,
		ExamsDate:        datatypes.Date(d),
		ExamsClassID:     r.ClassID,
		ExamsIsPublished: false,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateExamRequest struct {
	Name        *string    `json:"exams_name" validate:"omitempty,min=1,max=120"`
	Date        *string    `json:"exams_date" validate:"omitempty,datetime=2006-01-02"`
	ClassID     *uuid.UUID `json:"exams_class_id"`
	IsPublished *bool      `json:"exams_is_published"`
}

func (p UpdateExamRequest) Apply(mo *m.ExamModel) {
	if p.Name != nil {
		mo.ExamsName = strings.TrimSpace(*p.Name)
	}
	if p.Date != nil {
		if d, err := time.Parse(dateLayout, strings.TrimSpace(*p.Date)); err == nil {
			mo.ExamsDate = datatypes.Date(d)
		}
	}
	if p.ClassID != nil {
		mo.ExamsClassID = *p.ClassID
	}
	if p.IsPublished != nil {
		mo.ExamsIsPublished = *p.IsPublished
	}
}

/* =========================================================
   QUERIES & RESPONSES
   ========================================================= */

type ListExamQuery struct {
	ClassID     *uuid.UUID `query:"class_id"`
	IsPublished *bool      `query:"is_published"`
}

type ExamResponse struct {
	ExamsID          uuid.UUID `json:"exams_id"`
	ExamsName        string    `json:"exams_name"`
	ExamsDate        string    `json:"exams_date"`
	ExamsClassID     uuid.UUID `json:"exams_class_id"`
	ExamsIsPublished bool      `json:"exams_is_published"`
	ExamsCreatedAt   time.Time `json:"exams_created_at"`
	ExamsUpdatedAt   time.Time `json:"exams_updated_at"`
}

func FromExamModel(mo m.ExamModel) ExamResponse {
	return ExamResponse{
		ExamsID:          mo.ExamsID,
		ExamsName:        mo.ExamsName,
		ExamsDate:        time.Time(mo.ExamsDate).Format(dateLayout),
		ExamsClassID:     mo.ExamsClassID,
		ExamsIsPublished: mo.ExamsIsPublished,
		ExamsCreatedAt:   mo.ExamsCreatedAt,
		ExamsUpdatedAt:   mo.ExamsUpdatedAt,
	}
}

func FromExamModels(rows []m.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromExamModel(rows[i]))
	}
	return out
}
