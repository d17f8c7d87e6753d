package transcript

import (
	"fmt"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

// Aggregates holds the engine-wide credit and grade-point totals computed
// from a normalized record.
type Aggregates struct {
	TotalCredits     int     `json:"total_credits"`
	GeneralEducation int     `json:"general_education_credits"`
	MajorRequired    int     `json:"major_required_credits"`
	MajorElective    int     `json:"major_elective_credits"`
	AverageGPA       float64 `json:"average_gpa"`
}

// MajorTotal is the combined major credit count.
func (a Aggregates) MajorTotal() int {
	return a.MajorRequired + a.MajorElective
}

// FormatGPA renders a grade-point value for display, two decimal places.
func FormatGPA(gpa float64) string {
	return fmt.Sprintf("%.2f", gpa)
}

// creditProvider yields a semester's credit count from one possible
// source, reporting whether that source was present.
type creditProvider func(s model.SemesterRecord) (int, bool)

// semesterCreditProviders is the ordered fallback chain for a semester's
// earned credits. The first present value wins, even when a later source
// would disagree: reported credits, then the earned-credits field under
// either of its two upstream spellings, then the sum of subject credits.
var semesterCreditProviders = []creditProvider{
	func(s model.SemesterRecord) (int, bool) {
		if s.Credits != nil {
			return *s.Credits, true
		}
		return 0, false
	},
	func(s model.SemesterRecord) (int, bool) {
		if s.EarnedCredits != nil {
			return *s.EarnedCredits, true
		}
		if s.EarnedCreditsAlt != nil {
			return *s.EarnedCreditsAlt, true
		}
		return 0, false
	},
	func(s model.SemesterRecord) (int, bool) {
		sum := 0
		for _, sub := range s.Subjects {
			sum += sub.Credits
		}
		return sum, true
	},
}

// semesterCredits resolves one semester's credits through the fallback
// chain. The final provider always yields, so this cannot miss.
func semesterCredits(s model.SemesterRecord) int {
	for _, provide := range semesterCreditProviders {
		if credits, ok := provide(s); ok {
			return credits
		}
	}
	return 0
}

// Aggregate computes total and per-category earned credits plus the
// overall average grade-point for a normalized record. The upstream total
// is trusted when present and non-zero; otherwise the per-semester
// fallback chain is summed. Category buckets accumulate independently: a
// course whose label matched several categories contributes its full
// credit count to each matched bucket, with no double-counting guard.
func Aggregate(result *model.AnalysisResult) Aggregates {
	agg := Aggregates{
		TotalCredits: result.TotalCredits,
		AverageGPA:   result.AverageGPA,
	}

	if agg.TotalCredits == 0 {
		for _, sem := range result.Semesters {
			agg.TotalCredits += semesterCredits(sem)
		}
	}

	for _, sem := range result.Semesters {
		for _, sub := range sem.Subjects {
			for _, cat := range sub.Categories {
				switch cat {
				case model.CategoryGeneralEducation:
					agg.GeneralEducation += sub.Credits
				case model.CategoryMajorRequired:
					agg.MajorRequired += sub.Credits
				case model.CategoryMajorElective:
					agg.MajorElective += sub.Credits
				}
			}
		}
	}

	return agg
}
