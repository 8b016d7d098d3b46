// internals/features/school/results/service/aggregate.go
package service

import (
	"time"

	"github.com/google/uuid"

	classModel "nilaiku_backend/internals/features/school/classes/model"
	examModel "nilaiku_backend/internals/features/school/exams/model"
)

// SubjectMarkRow is one line of the report, in class roster order.
// Marks nil renders as "Not Graded".
type SubjectMarkRow struct {
	SubjectID   uuid.UUID `json:"-"`
	SubjectName string    `json:"subjectName"`
	Marks       *int      `json:"marks"`
}

type Aggregate struct {
	Rows               []SubjectMarkRow
	TotalMarks         int
	Percentage         float64
	AllSubjectsPerfect bool
}

// ComputeAggregate reconciles the class's live subject roster against the
// entered marks. Subjects without a mark row count as null: they
// contribute 0 to the total but still count in the percentage
// denominator, matching the "Not Graded" display convention. Marks keyed
// by subjects no longer in the roster are ignored.
func ComputeAggregate(subjects []classModel.SubjectModel, marksBySubject map[uuid.UUID]*int) Aggregate {
	rows := make([]SubjectMarkRow, 0, len(subjects))
	total := 0
	allPerfect := len(subjects) > 0

	for _, s := range subjects {
		v := marksBySubject[s.SubjectsID]
		rows = append(rows, SubjectMarkRow{
			SubjectID:   s.SubjectsID,
			SubjectName: s.SubjectsName,
			Marks:       v,
		})
		if v == nil {
			allPerfect = false
			continue
		}
		total += *v
		if *v != 100 {
			allPerfect = false
		}
	}

	return Aggregate{
		Rows:               rows,
		TotalMarks:         total,
		Percentage:         RoundPercentage(total, len(subjects)),
		AllSubjectsPerfect: allPerfect,
	}
}

// RoundPercentage computes totalMarks / (numSubjects*100) * 100 with pure
// integer arithmetic (hundredths, round half up) so repeated calls are
// bit-identical and free of float drift. Zero subjects is defined as 0%.
func RoundPercentage(totalMarks, numSubjects int) float64 {
	if numSubjects <= 0 {
		return 0
	}
	// percentage == totalMarks / numSubjects; keep two decimals
	hundredths := (totalMarks*100*2 + numSubjects) / (2 * numSubjects)
	return float64(hundredths) / 100
}

// SelectPublishedExam picks the exam the public portal reports when a
// class has several published exams: latest by exams_date, ties broken by
// earliest exams_created_at, then by id string. Deterministic by
// construction; unpublished exams are never candidates.
func SelectPublishedExam(exams []examModel.ExamModel) *examModel.ExamModel {
	var best *examModel.ExamModel
	for i := range exams {
		e := &exams[i]
		if !e.ExamsIsPublished {
			continue
		}
		if best == nil || examLess(best, e) {
			best = e
		}
	}
	return best
}

// examLess reports whether b wins over a under the selection rule.
func examLess(a, b *examModel.ExamModel) bool {
	ad, bd := time.Time(a.ExamsDate), time.Time(b.ExamsDate)
	if !ad.Equal(bd) {
		return bd.After(ad)
	}
	if !a.ExamsCreatedAt.Equal(b.ExamsCreatedAt) {
		return b.ExamsCreatedAt.Before(a.ExamsCreatedAt)
	}
	return b.ExamsID.String() < a.ExamsID.String()
}
