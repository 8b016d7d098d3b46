package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	classModel "nilaiku_backend/internals/features/school/classes/model"
	examModel "nilaiku_backend/internals/features/school/exams/model"
)

func intPtr(v int) *int { return &v }

func subject(name string, pos int) classModel.SubjectModel {
	return classModel.SubjectModel{
		SubjectsID:       uuid.New(),
		SubjectsName:     name,
		SubjectsPosition: pos,
	}
}

func TestComputeAggregatePerfectScore(t *testing.T) {
	math := subject("Math", 1)
	science := subject("Science", 2)
	subjects := []classModel.SubjectModel{math, science}
	marks := map[uuid.UUID]*int{
		math.SubjectsID:    intPtr(100),
		science.SubjectsID: intPtr(100),
	}

	agg := ComputeAggregate(subjects, marks)

	if agg.TotalMarks != 200 {
		t.Errorf("TotalMarks = %d, want 200", agg.TotalMarks)
	}
	if agg.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100", agg.Percentage)
	}
	if !agg.AllSubjectsPerfect {
		t.Error("AllSubjectsPerfect = false, want true")
	}
}

func TestComputeAggregateMissingMarkCountsAsNotGraded(t *testing.T) {
	math := subject("Math", 1)
	science := subject("Science", 2)
	subjects := []classModel.SubjectModel{math, science}
	// Science never written: no row, no map entry
	marks := map[uuid.UUID]*int{
		math.SubjectsID: intPtr(100),
	}

	agg := ComputeAggregate(subjects, marks)

	if agg.TotalMarks != 100 {
		t.Errorf("TotalMarks = %d, want 100", agg.TotalMarks)
	}
	if agg.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", agg.Percentage)
	}
	if agg.AllSubjectsPerfect {
		t.Error("AllSubjectsPerfect = true, want false")
	}
	if agg.Rows[1].SubjectName != "Science" || agg.Rows[1].Marks != nil {
		t.Errorf("Science row = %+v, want nil marks (Not Graded)", agg.Rows[1])
	}
}

func TestComputeAggregateNullRowEqualsAbsentRow(t *testing.T) {
	math := subject("Math", 1)
	science := subject("Science", 2)
	subjects := []classModel.SubjectModel{math, science}

	absent := ComputeAggregate(subjects, map[uuid.UUID]*int{
		math.SubjectsID: intPtr(70),
	})
	explicitNull := ComputeAggregate(subjects, map[uuid.UUID]*int{
		math.SubjectsID:    intPtr(70),
		science.SubjectsID: nil,
	})

	if !reflect.DeepEqual(absent, explicitNull) {
		t.Errorf("absent row %+v != explicit null row %+v", absent, explicitNull)
	}
}

func TestComputeAggregateIgnoresOrphanedMarks(t *testing.T) {
	math := subject("Math", 1)
	subjects := []classModel.SubjectModel{math}
	removed := uuid.New() // subject no longer in the roster
	marks := map[uuid.UUID]*int{
		math.SubjectsID: intPtr(80),
		removed:         intPtr(100),
	}

	agg := ComputeAggregate(subjects, marks)

	if agg.TotalMarks != 80 {
		t.Errorf("TotalMarks = %d, want 80 (orphan ignored)", agg.TotalMarks)
	}
	if len(agg.Rows) != 1 {
		t.Errorf("len(Rows) = %d, want 1", len(agg.Rows))
	}
}

func TestComputeAggregateNewSubjectShowsNotGraded(t *testing.T) {
	// subject added to the class after marks were entered must appear as
	// Not Graded, not be silently dropped
	math := subject("Math", 1)
	agg := ComputeAggregate([]classModel.SubjectModel{math}, map[uuid.UUID]*int{
		math.SubjectsID: intPtr(100),
	})
	if !agg.AllSubjectsPerfect {
		t.Fatal("precondition: single perfect subject")
	}

	added := subject("History", 2)
	agg = ComputeAggregate([]classModel.SubjectModel{math, added}, map[uuid.UUID]*int{
		math.SubjectsID: intPtr(100),
	})

	if len(agg.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(agg.Rows))
	}
	if agg.Rows[1].Marks != nil {
		t.Error("added subject should be Not Graded")
	}
	if agg.AllSubjectsPerfect {
		t.Error("AllSubjectsPerfect must drop to false once a subject is ungraded")
	}
	if agg.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", agg.Percentage)
	}
}

func TestComputeAggregateZeroSubjects(t *testing.T) {
	agg := ComputeAggregate(nil, nil)
	if agg.TotalMarks != 0 || agg.Percentage != 0 {
		t.Errorf("empty roster: total=%d pct=%v, want 0/0", agg.TotalMarks, agg.Percentage)
	}
	if agg.AllSubjectsPerfect {
		t.Error("AllSubjectsPerfect must be false with no subjects")
	}
}

func TestComputeAggregateZeroIsAValidMark(t *testing.T) {
	math := subject("Math", 1)
	agg := ComputeAggregate([]classModel.SubjectModel{math}, map[uuid.UUID]*int{
		math.SubjectsID: intPtr(0),
	})
	if agg.Rows[0].Marks == nil {
		t.Error("a written 0 must not render as Not Graded")
	}
	if agg.TotalMarks != 0 || agg.Percentage != 0 {
		t.Errorf("total=%d pct=%v, want 0/0", agg.TotalMarks, agg.Percentage)
	}
}

func TestComputeAggregateIdempotent(t *testing.T) {
	math := subject("Math", 1)
	science := subject("Science", 2)
	subjects := []classModel.SubjectModel{math, science}
	marks := map[uuid.UUID]*int{
		math.SubjectsID:    intPtr(33),
		science.SubjectsID: intPtr(67),
	}

	first := ComputeAggregate(subjects, marks)
	second := ComputeAggregate(subjects, marks)
	if !reflect.DeepEqual(first, second) {
		t.Error("same inputs must yield identical aggregates")
	}
}

func TestRoundPercentage(t *testing.T) {
	tests := []struct {
		total, subjects int
		want            float64
	}{
		{200, 2, 100},
		{100, 2, 50},
		{0, 2, 0},
		{100, 3, 33.33},   // 33.333... rounds down
		{200, 3, 66.67},   // 66.666... rounds up
		{50, 3, 16.67},    // 16.666...
		{1, 8, 0.13},      // 0.125 rounds half up
		{0, 0, 0},         // zero subjects defined as 0%, no division
		{77, 1, 77},
	}
	for _, tt := range tests {
		if got := RoundPercentage(tt.total, tt.subjects); got != tt.want {
			t.Errorf("RoundPercentage(%d, %d) = %v, want %v", tt.total, tt.subjects, got, tt.want)
		}
	}
}

func examOn(date string, published bool, created time.Time) examModel.ExamModel {
	d, _ := time.Parse("2006-01-02", date)
	return examModel.ExamModel{
		ExamsID:          uuid.New(),
		ExamsName:        "Exam " + date,
		ExamsDate:        datatypes.Date(d),
		ExamsIsPublished: published,
		ExamsCreatedAt:   created,
	}
}

func TestSelectPublishedExamSkipsUnpublished(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	unpublished := examOn("2024-06-01", false, base)

	if got := SelectPublishedExam([]examModel.ExamModel{unpublished}); got != nil {
		t.Errorf("unpublished-only list must select nothing, got %v", got.ExamsName)
	}
	if got := SelectPublishedExam(nil); got != nil {
		t.Error("empty list must select nothing")
	}
}

func TestSelectPublishedExamPicksLatestDate(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := examOn("2024-03-01", true, base)
	newest := examOn("2024-06-01", true, base)
	newerButUnpublished := examOn("2024-09-01", false, base)

	got := SelectPublishedExam([]examModel.ExamModel{older, newerButUnpublished, newest})
	if got == nil || got.ExamsID != newest.ExamsID {
		t.Errorf("selected %+v, want the latest published exam", got)
	}
}

func TestSelectPublishedExamTieBreaksDeterministically(t *testing.T) {
	created1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created2 := created1.Add(time.Hour)
	a := examOn("2024-06-01", true, created1)
	b := examOn("2024-06-01", true, created2)

	// same date: earliest created_at wins, regardless of slice order
	first := SelectPublishedExam([]examModel.ExamModel{a, b})
	second := SelectPublishedExam([]examModel.ExamModel{b, a})
	if first == nil || second == nil || first.ExamsID != second.ExamsID {
		t.Fatal("tie-break must not depend on input order")
	}
	if first.ExamsID != a.ExamsID {
		t.Error("earliest created_at must win the tie")
	}

	// identical created_at as well: id ordering decides, still stable
	c := examOn("2024-06-01", true, created1)
	d := examOn("2024-06-01", true, created1)
	x := SelectPublishedExam([]examModel.ExamModel{c, d})
	y := SelectPublishedExam([]examModel.ExamModel{d, c})
	if x == nil || y == nil || x.ExamsID != y.ExamsID {
		t.Error("full tie must still resolve identically for any input order")
	}
}
