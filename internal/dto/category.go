package dto

// CreateCategoryRequest is the POST /categories body. Color falls back to
// the default when omitted.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest is the PATCH /categories/{id} body. Category fields
// are not nullable; null is rejected rather than treated as a clear.
type UpdateCategoryRequest struct {
	Name  Optional[string] `json:"name"`
	Color Optional[string] `json:"color"`
}
