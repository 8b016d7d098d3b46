package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "nilaiku_backend/internals/features/school/students/model"
)

const dobLayout = "2006-01-02"

/* =========================================================
   PATCH FIELD — tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateStudentRequest struct {
	Name string `json:"students_name" validate:"required,min=1,max=120"`
	DOB  string `json:"students_dob" validate:"required,datetime=2006-01-02"`

	ProfilePictureURL *string    `json:"students_profile_picture_url"`
	ClassID           *uuid.UUID `json:"students_class_id"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.DOB = strings.TrimSpace(r.DOB)
	if r.ProfilePictureURL != nil {
		v := strings.TrimSpace(*r.ProfilePictureURL)
		if v == "" {
			r.ProfilePictureURL = nil
		} else {
			r.ProfilePictureURL = &v
		}
	}
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	dob, _ := time.Parse(dobLayout, r.DOB) // validated upstream
	return m.StudentModel{
		StudentsName:              r.Name,
		StudentsDOB:               datatypes.Date(dob),
		StudentsProfilePictureURL: r.ProfilePictureURL,
		StudentsClassID:           r.ClassID,
	}
}

/* =========================================================
   UPDATE (partial, tri-state on nullable columns)
   ========================================================= */

type UpdateStudentRequest struct {
	Name *string `json:"students_name" validate:"omitempty,min=1,max=120"`
	DOB  *string `json:"students_dob" validate:"omitempty,datetime=2006-01-02"`

	ProfilePictureURL PatchField[string]    `json:"students_profile_picture_url"`
	ClassID           PatchField[uuid.UUID] `json:"students_class_id"`
}

func (p UpdateStudentRequest) Apply(mo *m.StudentModel) {
	if p.Name != nil {
		mo.StudentsName = strings.TrimSpace(*p.Name)
	}
	if p.DOB != nil {
		if dob, err := time.Parse(dobLayout, strings.TrimSpace(*p.DOB)); err == nil {
			mo.StudentsDOB = datatypes.Date(dob)
		}
	}
	if p.ProfilePictureURL.Present {
		if p.ProfilePictureURL.Value == nil {
			mo.StudentsProfilePictureURL = nil
		} else {
			v := strings.TrimSpace(*p.ProfilePictureURL.Value)
			mo.StudentsProfilePictureURL = &v
		}
	}
	if p.ClassID.Present {
		mo.StudentsClassID = p.ClassID.Value
	}
}

/* =========================================================
   QUERIES & RESPONSES
   ========================================================= */

type ListStudentQuery struct {
	Q       *string    `query:"q"`
	ClassID *uuid.UUID `query:"class_id"`
}

type StudentResponse struct {
	StudentsID                int        `json:"students_id"`
	StudentsName              string     `json:"students_name"`
	StudentsDOB               string     `json:"students_dob"`
	StudentsProfilePictureURL *string    `json:"students_profile_picture_url,omitempty"`
	StudentsClassID           *uuid.UUID `json:"students_class_id,omitempty"`
	StudentsCreatedAt         time.Time  `json:"students_created_at"`
	StudentsUpdatedAt         time.Time  `json:"students_updated_at"`
}

func FromStudentModel(mo m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentsID:                mo.StudentsID,
		StudentsName:              mo.StudentsName,
		StudentsDOB:               time.Time(mo.StudentsDOB).Format(dobLayout),
		StudentsProfilePictureURL: mo.StudentsProfilePictureURL,
		StudentsClassID:           mo.StudentsClassID,
		StudentsCreatedAt:         mo.StudentsCreatedAt,
		StudentsUpdatedAt:         mo.StudentsUpdatedAt,
	}
}

func FromStudentModels(rows []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromStudentModel(rows[i]))
	}
	return out
}
