package domain

// Category is a node in the directory's category tree. Root categories have
// no parent; siblings are displayed by Order ascending.
type Category struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description,omitempty"`
	ParentCategory  *Category  `json:"parentCategory,omitempty"`
	ChildCategories []Category `json:"childCategories,omitempty"`
	Order           int        `json:"order"`
	IsActive        bool       `json:"isActive"`
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	Businesses      []Business `json:"businesses,omitempty"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}
