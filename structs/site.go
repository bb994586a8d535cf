package structs

type SiteRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=150"`
	City      string  `json:"city" validate:"required,min=2,max=100"`
	Address   string  `json:"address" validate:"required,min=2,max=200"`
	CompanyId *string `json:"company_id,omitempty"`
}

// SiteUpdateRequest deliberately has no prefix or asset_seq fields: the
// prefix is fixed at creation and the counter belongs to the allocator.
type SiteUpdateRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	City      *string `json:"city,omitempty" validate:"omitempty,min=2,max=100"`
	Address   *string `json:"address,omitempty" validate:"omitempty,min=2,max=200"`
	CompanyId *string `json:"company_id,omitempty"`
}

type PrefixPreviewRequest struct {
	Name string `json:"name" validate:"required"`
}

type PrefixPreviewResponse struct {
	Prefix     string   `json:"prefix"`
	Unique     bool     `json:"unique"`
	Note       string   `json:"note,omitempty"`
	Candidates []string `json:"candidates"`
}
