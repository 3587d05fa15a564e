package catalog

// Category tags what a question measures.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryValue       Category = "value"
	CategoryPersonality Category = "personality"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryStrength,
		CategoryValue,
		CategoryPersonality,
	}
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryStrength:
		return "強み"
	case CategoryValue:
		return "価値観"
	case CategoryPersonality:
		return "性格"
	default:
		return string(c)
	}
}

// Question is a single Likert-scale prompt.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}
