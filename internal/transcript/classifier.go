// Package transcript implements the transcript normalization and
// degree-progress aggregation engine. All functions are pure
// transformations over in-memory payloads and are safe to call
// concurrently and repeatedly per request.
package transcript

import (
	"strings"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
)

// classificationRule binds a raw category-label marker to a requirement
// category. Rules are evaluated independently against each label, in
// order; a malformed upstream label may match more than one rule.
type classificationRule struct {
	Marker   string
	Category model.CourseCategory
}

// classificationRules is the full ordered rule list. Registrar exports
// abbreviate 전공필수 as 전필 and 전공선택 as 전선, so both spellings are
// present. Matching is exact-substring, locale- and case-sensitive.
var classificationRules = []classificationRule{
	{Marker: "교양", Category: model.CategoryGeneralEducation},
	{Marker: "전공필수", Category: model.CategoryMajorRequired},
	{Marker: "전필", Category: model.CategoryMajorRequired},
	{Marker: "전공선택", Category: model.CategoryMajorElective},
	{Marker: "전선", Category: model.CategoryMajorElective},
}

// Classify maps a free-text category label to exactly one requirement
// category: the first rule whose marker the label contains, or
// CategoryOther when nothing matches. Unrecognized labels are normal
// data, not errors.
func Classify(label string) model.CourseCategory {
	for _, rule := range classificationRules {
		if strings.Contains(label, rule.Marker) {
			return rule.Category
		}
	}
	return model.CategoryOther
}

// ClassifyAll applies every rule independently and returns the distinct
// matched categories in rule order, or [CategoryOther] when nothing
// matches. A label matching both a 교양 marker and a major marker is a
// known upstream data-quality condition: the course's credits count into
// every matched bucket, mirroring the accumulate-not-exclusive behavior
// of the aggregate calculator.
func ClassifyAll(label string) []model.CourseCategory {
	var matched []model.CourseCategory
	for _, rule := range classificationRules {
		if !strings.Contains(label, rule.Marker) {
			continue
		}
		if !containsCategory(matched, rule.Category) {
			matched = append(matched, rule.Category)
		}
	}
	if len(matched) == 0 {
		return []model.CourseCategory{model.CategoryOther}
	}
	return matched
}

// IsAmbiguous reports whether a label matches more than one distinct
// category. Ambiguous labels are surfaced as diagnostics, never silently
// resolved.
func IsAmbiguous(label string) bool {
	return len(ClassifyAll(label)) > 1
}

func containsCategory(cats []model.CourseCategory, c model.CourseCategory) bool {
	for _, existing := range cats {
		if existing == c {
			return true
		}
	}
	return false
}
