package transcript

import (
	"math"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

// CategoryProgress is one earned-vs-required credit pair with its
// completion percentage, clamped to [0, 100].
type CategoryProgress struct {
	Earned   int `json:"earned"`
	Required int `json:"required"`
	Percent  int `json:"percent"`
}

// ProgressReport compares the aggregates against a resolved graduation
// requirement. Every category is always present, possibly at 0%. General
// education is tracked as a total only; its sub-areas (기초, 일반, 확대,
// 자연이공계) need separate verification, which NeedsVerification flags
// to the consumer.
type ProgressReport struct {
	TotalCredits      CategoryProgress `json:"total_credits"`
	MajorRequired     CategoryProgress `json:"major_required"`
	MajorElective     CategoryProgress `json:"major_elective"`
	GeneralEducation  CategoryProgress `json:"general_education"`
	NeedsVerification bool             `json:"ge_needs_verification"`
}

// completionPercent is earned/required as a rounded percentage, clamped
// to 100. A non-positive requirement reports 0 rather than dividing.
func completionPercent(earned, required int) int {
	if required <= 0 {
		return 0
	}
	percent := int(math.Round(float64(earned) / float64(required) * 100))
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildReport derives the progress view from aggregates and a possibly
// absent requirement. A nil requirement yields a fully defined report
// with zero required credits and 0% everywhere.
func BuildReport(agg Aggregates, req *model.GraduationRequirement) ProgressReport {
	report := ProgressReport{NeedsVerification: true}

	report.TotalCredits.Earned = agg.TotalCredits
	report.MajorRequired.Earned = agg.MajorRequired
	report.MajorElective.Earned = agg.MajorElective
	report.GeneralEducation.Earned = agg.GeneralEducation

	if req != nil {
		report.TotalCredits.Required = req.TotalCredits
		report.MajorRequired.Required = req.MajorCredits.Required
		report.MajorElective.Required = req.MajorCredits.Elective
		report.GeneralEducation.Required = req.GeneralEducation.Total
	}

	report.TotalCredits.Percent = completionPercent(report.TotalCredits.Earned, report.TotalCredits.Required)
	report.MajorRequired.Percent = completionPercent(report.MajorRequired.Earned, report.MajorRequired.Required)
	report.MajorElective.Percent = completionPercent(report.MajorElective.Earned, report.MajorElective.Required)
	report.GeneralEducation.Percent = completionPercent(report.GeneralEducation.Earned, report.GeneralEducation.Required)

	return report
}
