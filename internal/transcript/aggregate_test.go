package transcript

import (
	"testing"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestAggregateUsesUpstreamTotalWhenPresent(t *testing.T) {
	result := &model.AnalysisResult{
		TotalCredits: 90,
		Semesters: []model.SemesterRecord{
			{Credits: intPtr(18)},
		},
	}

	agg := Aggregate(result)
	if agg.TotalCredits != 90 {
		t.Errorf("TotalCredits = %d, want upstream 90", agg.TotalCredits)
	}
}

func TestAggregateFallbackOrdering(t *testing.T) {
	subjects := []model.NormalizedCourse{
		{Credits: 3, Categories: []model.CourseCategory{model.CategoryOther}},
		{Credits: 3, Categories: []model.CourseCategory{model.CategoryOther}},
	}

	tests := []struct {
		name string
		sem  model.SemesterRecord
		want int
	}{
		{
			name: "reported credits win over everything",
			sem:  model.SemesterRecord{Credits: intPtr(18), EarnedCredits: intPtr(15), Subjects: subjects},
			want: 18,
		},
		{
			name: "earned credits win over subject sum even when they differ",
			sem:  model.SemesterRecord{EarnedCredits: intPtr(15), Subjects: subjects},
			want: 15,
		},
		{
			name: "alternate earned spelling is honored",
			sem:  model.SemesterRecord{EarnedCreditsAlt: intPtr(12), Subjects: subjects},
			want: 12,
		},
		{
			name: "subject sum is the last resort",
			sem:  model.SemesterRecord{Subjects: subjects},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &model.AnalysisResult{Semesters: []model.SemesterRecord{tt.sem}}
			if agg := Aggregate(result); agg.TotalCredits != tt.want {
				t.Errorf("TotalCredits = %d, want %d", agg.TotalCredits, tt.want)
			}
		})
	}
}

func TestAggregateCategoryBuckets(t *testing.T) {
	result := &model.AnalysisResult{
		Semesters: []model.SemesterRecord{
			{
				Subjects: []model.NormalizedCourse{
					{Credits: 3, Categories: ClassifyAll("전공필수")},
					{Credits: 2, Categories: ClassifyAll("전선")},
					{Credits: 3, Categories: ClassifyAll("교양기초")},
					{Credits: 1, Categories: ClassifyAll("일반선택")},
				},
			},
			{
				Subjects: []model.NormalizedCourse{
					{Credits: 3, Categories: ClassifyAll("전공선택")},
				},
			},
		},
	}

	agg := Aggregate(result)
	if agg.MajorRequired != 3 {
		t.Errorf("MajorRequired = %d, want 3", agg.MajorRequired)
	}
	if agg.MajorElective != 5 {
		t.Errorf("MajorElective = %d, want 5", agg.MajorElective)
	}
	if agg.GeneralEducation != 3 {
		t.Errorf("GeneralEducation = %d, want 3", agg.GeneralEducation)
	}
	if agg.MajorTotal() != 8 {
		t.Errorf("MajorTotal = %d, want 8", agg.MajorTotal())
	}
}

func TestAggregateMultiMarkerDoubleCounts(t *testing.T) {
	// An ambiguous label feeds its full credits into every matched bucket.
	result := &model.AnalysisResult{
		Semesters: []model.SemesterRecord{
			{
				Subjects: []model.NormalizedCourse{
					{Credits: 3, Categories: ClassifyAll("교양/전공필수")},
				},
			},
		},
	}

	agg := Aggregate(result)
	if agg.GeneralEducation != 3 || agg.MajorRequired != 3 {
		t.Errorf("ambiguous course must count in both buckets: ge=%d req=%d",
			agg.GeneralEducation, agg.MajorRequired)
	}
}

func TestAggregateGPAPassthrough(t *testing.T) {
	agg := Aggregate(&model.AnalysisResult{AverageGPA: 3.847})
	if agg.AverageGPA != 3.847 {
		t.Errorf("AverageGPA = %v, want passthrough 3.847", agg.AverageGPA)
	}
	if got := FormatGPA(agg.AverageGPA); got != "3.85" {
		t.Errorf("FormatGPA = %q, want 3.85", got)
	}
	if got := FormatGPA(0); got != "0.00" {
		t.Errorf("FormatGPA(0) = %q, want 0.00", got)
	}
}
