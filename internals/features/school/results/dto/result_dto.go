package dto

import (
	"strings"
	"time"

	classDTO "nilaiku_backend/internals/features/school/classes/dto"
	examDTO "nilaiku_backend/internals/features/school/exams/dto"
	resultService "nilaiku_backend/internals/features/school/results/service"
	studentDTO "nilaiku_backend/internals/features/school/students/dto"
)

const dobLayout = "2006-01-02"

/* =========================================================
   PORTAL LOOKUP
   ========================================================= */

type FindResultRequest struct {
	StudentID int    `json:"studentId" validate:"required,gt=0"`
	DOB       string `json:"dob" validate:"required,datetime=2006-01-02"`
}

func (r *FindResultRequest) Normalize() {
	r.DOB = strings.TrimSpace(r.DOB)
}

// ParseDOB is strict: anything but an exact calendar date is rejected
// before any store lookup happens.
func (r FindResultRequest) ParseDOB() (time.Time, error) {
	return time.Parse(dobLayout, r.DOB)
}

/* =========================================================
   RESPONSE
   Field names follow what the portal page and the certificate
   renderer consume.
   ========================================================= */

type ResultResponse struct {
	Student            studentDTO.StudentResponse      `json:"student"`
	Exam               examDTO.ExamResponse            `json:"exam"`
	Class              classDTO.ClassResponse          `json:"class"`
	Marks              []resultService.SubjectMarkRow  `json:"marks"`
	TotalMarks         int                             `json:"totalMarks"`
	Percentage         float64                         `json:"percentage"`
	AllSubjectsPerfect bool                            `json:"allSubjectsPerfect"`
}

func FromResult(r resultService.Result) ResultResponse {
	return ResultResponse{
		Student:            studentDTO.FromStudentModel(r.Student),
		Exam:               examDTO.FromExamModel(r.Exam),
		Class:              classDTO.FromClassModel(r.Class),
		Marks:              r.Aggregate.Rows,
		TotalMarks:         r.Aggregate.TotalMarks,
		Percentage:         r.Aggregate.Percentage,
		AllSubjectsPerfect: r.Aggregate.AllSubjectsPerfect,
	}
}

/* =========================================================
   COLLEGE NAME / DASHBOARD
   ========================================================= */

type SetCollegeNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (r *SetCollegeNameRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type DashboardStatsResponse struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalClasses     int64 `json:"totalClasses"`
	TotalExams       int64 `json:"totalExams"`
	PublishedResults int64 `json:"publishedResults"`
}
