package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "nilaiku_backend/internals/features/school/classes/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateClassRequest struct {
	Name string `json:"classes_name" validate:"required,min=1,max=120"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{ClassesName: r.Name}
}

/* =========================================================
   UPDATE
   ========================================================= */

// SubjectInput: entry with an id refers to an existing subject (kept as
// is; rename is not supported), entry without an id is appended as a new
// subject. Existing subjects absent from the list are removed.
type SubjectInput struct {
	ID   *uuid.UUID `json:"subjects_id"`
	Name string     `json:"subjects_name" validate:"required,min=1,max=120"`
}

type UpdateClassRequest struct {
	Name     *string         `json:"classes_name" validate:"omitempty,min=1,max=120"`
	Subjects *[]SubjectInput `json:"subjects" validate:"omitempty,dive"`
}

func (r *UpdateClassRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Subjects != nil {
		for i := range *r.Subjects {
			(*r.Subjects)[i].Name = strings.TrimSpace((*r.Subjects)[i].Name)
		}
	}
}

/* =========================================================
   SUBJECT ADD
   ========================================================= */

type AddSubjectRequest struct {
	Name string `json:"subjects_name" validate:"required,min=1,max=120"`
}

func (r *AddSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* =========================================================
   RESPONSES
   ========================================================= */

type SubjectResponse struct {
	SubjectsID       uuid.UUID `json:"subjects_id"`
	SubjectsClassID  uuid.UUID `json:"subjects_class_id"`
	SubjectsName     string    `json:"subjects_name"`
	SubjectsPosition int       `json:"subjects_position"`
}

type ClassResponse struct {
	ClassesID        uuid.UUID         `json:"classes_id"`
	ClassesName      string            `json:"classes_name"`
	Subjects         []SubjectResponse `json:"subjects"`
	ClassesCreatedAt time.Time         `json:"classes_created_at"`
	ClassesUpdatedAt time.Time         `json:"classes_updated_at"`
}

func FromSubjectModel(mo m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectsID:       mo.SubjectsID,
		SubjectsClassID:  mo.SubjectsClassID,
		SubjectsName:     mo.SubjectsName,
		SubjectsPosition: mo.SubjectsPosition,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubjectModel(rows[i]))
	}
	return out
}

func FromClassModel(mo m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassesID:        mo.ClassesID,
		ClassesName:      mo.ClassesName,
		Subjects:         FromSubjectModels(mo.Subjects),
		ClassesCreatedAt: mo.ClassesCreatedAt,
		ClassesUpdatedAt: mo.ClassesUpdatedAt,
	}
}

func FromClassModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromClassModel(rows[i]))
	}
	return out
}
