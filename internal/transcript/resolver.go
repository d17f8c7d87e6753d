package transcript

import (
	"strconv"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

const (
	// DefaultMajor is used when a caller supplies no major name.
	DefaultMajor = "소프트웨어전공"

	// baselineCohort is the requirement version applied to cohorts that
	// have no row of their own.
	baselineCohort = 2023

	// fallbackStudentID stands in when the upstream reported no student
	// identifier; its prefix yields the baseline cohort.
	fallbackStudentID = "2023000000"
)

// RequirementTable is an immutable view over the graduation requirement
// rows, loaded once at process start and injected into callers. Absence
// of a matching row is a normal outcome, not an error.
type RequirementTable struct {
	rows []model.GraduationRequirement
}

// NewRequirementTable copies the given rows into a read-only table.
func NewRequirementTable(rows []model.GraduationRequirement) *RequirementTable {
	copied := make([]model.GraduationRequirement, len(rows))
	copy(copied, rows)
	return &RequirementTable{rows: copied}
}

// Len returns the number of requirement rows.
func (t *RequirementTable) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table's rows.
func (t *RequirementTable) Rows() []model.GraduationRequirement {
	copied := make([]model.GraduationRequirement, len(t.rows))
	copy(copied, t.rows)
	return copied
}

// Resolve looks up the requirement row for (cohort, major). When the
// exact cohort has no row, the baseline cohort's row for the same major
// is used instead. The second return value is false when neither exists;
// the progress reporter then degrades to all-zero percentages.
func (t *RequirementTable) Resolve(cohort int, major string) (*model.GraduationRequirement, bool) {
	if major == "" {
		major = DefaultMajor
	}
	if req := t.find(cohort, major); req != nil {
		return req, true
	}
	if req := t.find(baselineCohort, major); req != nil {
		return req, true
	}
	return nil, false
}

func (t *RequirementTable) find(cohort int, major string) *model.GraduationRequirement {
	for i := range t.rows {
		if t.rows[i].Cohort == cohort && t.rows[i].Major == major {
			row := t.rows[i]
			return &row
		}
	}
	return nil
}

// AdmissionYear derives the matriculation cohort from a student
// identifier: its first four characters read as a year. Empty identifiers
// fall back to the default identifier's prefix; malformed prefixes yield
// zero, which no cohort row matches.
func AdmissionYear(studentID string) int {
	if studentID == "" {
		studentID = fallbackStudentID
	}
	if len(studentID) < 4 {
		return 0
	}
	year, err := strconv.Atoi(studentID[:4])
	if err != nil {
		return 0
	}
	return year
}
