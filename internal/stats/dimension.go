package stats

import (
	"errors"

	"orgpulse/internal/model"
)

// Dimension is the grouping axis for aggregation
type Dimension string

const (
	DimensionDepartment   Dimension = "department"
	DimensionPosition     Dimension = "position"
	DimensionOrganization Dimension = "organization"
)

// ErrInvalidDimension marks a caller contract violation rather than
// bad data; it surfaces as an invalid-argument response upstream.
var ErrInvalidDimension = errors.New("dimension must be department, position or organization")

// Bucket sentinels shared by the distribution views.
const (
	UnansweredBucket = "(未作答)"
	AnsweredBucket   = "有答案"
)

// Valid reports whether the dimension is one of the supported axes
func (d Dimension) Valid() bool {
	switch d {
	case DimensionDepartment, DimensionPosition, DimensionOrganization:
		return true
	}
	return false
}

func (d Dimension) unknownLabel() string {
	switch d {
	case DimensionDepartment:
		return "未知部门"
	case DimensionPosition:
		return "未知职位"
	case DimensionOrganization:
		return "未知组织"
	}
	return "未指定"
}

// resolveKey returns the bucket label for an answer on a dimension,
// substituting the unknown sentinel when the field is unset.
// Organization falls back from name to a synthesized 组织#id label
// before the sentinel.
func resolveKey(a *model.Answer, d Dimension) string {
	switch d {
	case DimensionDepartment:
		if a.Department != nil && *a.Department != "" {
			return *a.Department
		}
	case DimensionPosition:
		if a.Position != nil && *a.Position != "" {
			return *a.Position
		}
	case DimensionOrganization:
		if a.OrganizationName != nil && *a.OrganizationName != "" {
			return *a.OrganizationName
		}
		if a.OrganizationID != nil && *a.OrganizationID != "" {
			return "组织#" + *a.OrganizationID
		}
	}
	return d.unknownLabel()
}

// rawKey returns the resolved dimension value without sentinel
// substitution; ok is false when department or position is unset.
// Organization always resolves through its fallback chain.
func rawKey(a *model.Answer, d Dimension) (string, bool) {
	switch d {
	case DimensionDepartment:
		if a.Department != nil && *a.Department != "" {
			return *a.Department, true
		}
		return "", false
	case DimensionPosition:
		if a.Position != nil && *a.Position != "" {
			return *a.Position, true
		}
		return "", false
	case DimensionOrganization:
		return resolveKey(a, d), true
	}
	return "", false
}
