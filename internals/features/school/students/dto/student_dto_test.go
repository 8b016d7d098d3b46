package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	m "nilaiku_backend/internals/features/school/students/model"
)

func TestCreateStudentToModelParsesDOB(t *testing.T) {
	req := CreateStudentRequest{Name: "Asha", DOB: "2010-05-01"}
	mo := req.ToModel()

	if got := time.Time(mo.StudentsDOB).Format("2006-01-02"); got != "2010-05-01" {
		t.Errorf("DOB = %s, want 2010-05-01", got)
	}
	if mo.StudentsClassID != nil {
		t.Error("class must stay unassigned when not supplied")
	}
}

func TestUpdateStudentClassIDTriState(t *testing.T) {
	classID := uuid.New()
	base := func() m.StudentModel {
		return m.StudentModel{StudentsName: "Asha", StudentsClassID: &classID}
	}

	// absent: class assignment untouched
	var absent UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"students_name":"Asha B"}`), &absent); err != nil {
		t.Fatal(err)
	}
	mo := base()
	absent.Apply(&mo)
	if mo.StudentsClassID == nil || *mo.StudentsClassID != classID {
		t.Error("absent field must not change the class assignment")
	}

	// explicit null: unassign
	var clear UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"students_class_id":null}`), &clear); err != nil {
		t.Fatal(err)
	}
	mo = base()
	clear.Apply(&mo)
	if mo.StudentsClassID != nil {
		t.Error("explicit null must clear the class assignment")
	}

	// new value: reassign
	next := uuid.New()
	var assign UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"students_class_id":"`+next.String()+`"}`), &assign); err != nil {
		t.Fatal(err)
	}
	mo = base()
	assign.Apply(&mo)
	if mo.StudentsClassID == nil || *mo.StudentsClassID != next {
		t.Error("value must reassign the class")
	}
}

func TestFromStudentModelFormatsDOB(t *testing.T) {
	req := CreateStudentRequest{Name: "Asha", DOB: "2010-05-01"}
	mo := req.ToModel()
	resp := FromStudentModel(mo)
	if resp.StudentsDOB != "2010-05-01" {
		t.Errorf("response DOB = %q, want 2010-05-01", resp.StudentsDOB)
	}
}
