// internals/features/school/results/service/result_service.go
package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "nilaiku_backend/internals/features/school/classes/model"
	examModel "nilaiku_backend/internals/features/school/exams/model"
	markModel "nilaiku_backend/internals/features/school/marks/model"
	studentModel "nilaiku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
)

// ErrResultNotFound is the single "no" answer of the public lookup. It
// covers wrong id, wrong dob, unassigned student and no published exam
// alike, so an unauthenticated caller cannot probe which part matched.
var ErrResultNotFound = errors.New("result not found")

// Result bundles everything the portal page and the certificate renderer
// need. Derived, never persisted: recomputed from the store on every call
// so it always reflects the live subject roster and mark values.
type Result struct {
	Student   studentModel.StudentModel
	Exam      examModel.ExamModel
	Class     classModel.ClassModel
	Aggregate Aggregate
}

type ResultService struct {
	DB *gorm.DB
}

// FindResult implements the public lookup. Read-only; any store error
// other than "row missing" is returned verbatim so the caller can map
// timeouts to a retryable failure instead of NotFound.
func (s *ResultService) FindResult(ctx context.Context, studentID int, dob time.Time) (*Result, error) {
	db := s.DB.WithContext(ctx)

	// 1) student + exact-date DOB second factor, matched in SQL
	var student studentModel.StudentModel
	if err := db.
		Where("students_id = ? AND students_dob = ?", studentID, datatypes.Date(dob)).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	// 2) unassigned students have no results
	if student.StudentsClassID == nil {
		return nil, ErrResultNotFound
	}

	// 3) class with live, ordered subject roster
	var class classModel.ClassModel
	if err := db.
		Preload("Subjects", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("subjects_position ASC")
		}).
		First(&class, "classes_id = ?", *student.StudentsClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}

	// 4) published exams only; deterministic pick when several exist
	var exams []examModel.ExamModel
	if err := db.
		Where("exams_class_id = ? AND exams_is_published = ?", class.ClassesID, true).
		Find(&exams).Error; err != nil {
		return nil, err
	}
	exam := SelectPublishedExam(exams)
	if exam == nil {
		return nil, ErrResultNotFound
	}

	// 5) this student's marks for the chosen exam
	var marks []markModel.MarkModel
	if err := db.
		Where("marks_exam_id = ? AND marks_student_id = ?", exam.ExamsID, studentID).
		Find(&marks).Error; err != nil {
		return nil, err
	}
	bySubject := make(map[uuid.UUID]*int, len(marks))
	for i := range marks {
		bySubject[marks[i].MarksSubjectID] = marks[i].MarksValue
	}

	return &Result{
		Student:   student,
		Exam:      *exam,
		Class:     class,
		Aggregate: ComputeAggregate(class.Subjects, bySubject),
	}, nil
}
