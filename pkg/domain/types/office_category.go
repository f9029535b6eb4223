package types

import "fmt"

// OfficeCategory classifies a government office by the service it handles
type OfficeCategory string

const (
	OfficeCategoryWelfare    OfficeCategory = "welfare"
	OfficeCategoryCivil      OfficeCategory = "civil"
	OfficeCategoryEmployment OfficeCategory = "employment"
)

// AllOfficeCategories returns all valid office categories
func AllOfficeCategories() []OfficeCategory {
	return []OfficeCategory{
		OfficeCategoryWelfare,
		OfficeCategoryCivil,
		OfficeCategoryEmployment,
	}
}

// IsValid checks if the office category is valid
func (c OfficeCategory) IsValid() bool {
	switch c {
	case OfficeCategoryWelfare,
		OfficeCategoryCivil,
		OfficeCategoryEmployment:
		return true
	default:
		return false
	}
}

// String returns the string representation of the office category
func (c OfficeCategory) String() string {
	return string(c)
}

// ParseOfficeCategory parses a string into an OfficeCategory
func ParseOfficeCategory(s string) (OfficeCategory, error) {
	category := OfficeCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid office category: %s", s)
	}
	return category, nil
}
