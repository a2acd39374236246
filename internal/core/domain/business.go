package domain

import "encoding/json"

// BusinessStatus is the moderation state of a listing.
type BusinessStatus string

const (
	StatusPending  BusinessStatus = "pending"
	StatusApproved BusinessStatus = "approved"
	StatusRejected BusinessStatus = "rejected"
)

// Business is a directory listing. Only listings with StatusApproved are
// eligible for public surfaces; that rule is enforced by the query filters
// sent to the backend, never locally.
type Business struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description,omitempty"`
	Logo            *Media          `json:"logo,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Website         string          `json:"website,omitempty"`
	Address         string          `json:"address,omitempty"`
	City            string          `json:"city,omitempty"`
	District        string          `json:"district,omitempty"`
	PostalCode      string          `json:"postalCode,omitempty"`
	Latitude        float64         `json:"latitude,omitempty"`
	Longitude       float64         `json:"longitude,omitempty"`
	OperatingHours  json.RawMessage `json:"operatingHours,omitempty"`
	SocialMedia     json.RawMessage `json:"socialMedia,omitempty"`
	Status          BusinessStatus  `json:"status"`
	IsFeatured      bool            `json:"isFeatured"`
	FeaturedUntil   string          `json:"featuredUntil,omitempty"`
	Views           int             `json:"views"`
	MetaTitle       string          `json:"metaTitle,omitempty"`
	MetaDescription string          `json:"metaDescription,omitempty"`
	AIKeywords      json.RawMessage `json:"aiKeywords,omitempty"`
	AIFAQ           json.RawMessage `json:"aiFaq,omitempty"`
	Owner           *User           `json:"owner,omitempty"`
	Categories      []Category      `json:"categories,omitempty"`
	Images          []BusinessImage `json:"images,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	PublishedAt     string          `json:"publishedAt,omitempty"`
}

// BusinessInput carries the writable fields of a listing. The backend owns
// slug generation, status transitions and the featured/view counters.
type BusinessInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Website         string          `json:"website,omitempty"`
	Address         string          `json:"address,omitempty"`
	City            string          `json:"city,omitempty"`
	District        string          `json:"district,omitempty"`
	PostalCode      string          `json:"postalCode,omitempty"`
	Latitude        float64         `json:"latitude,omitempty"`
	Longitude       float64         `json:"longitude,omitempty"`
	OperatingHours  json.RawMessage `json:"operatingHours,omitempty"`
	SocialMedia     json.RawMessage `json:"socialMedia,omitempty"`
	MetaTitle       string          `json:"metaTitle,omitempty"`
	MetaDescription string          `json:"metaDescription,omitempty"`
	Categories      []int           `json:"categories,omitempty"`
}

// BusinessImage is one gallery entry of a listing.
type BusinessImage struct {
	ID        int    `json:"id"`
	Image     *Media `json:"image,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Order     int    `json:"order"`
	IsPrimary bool   `json:"isPrimary"`
}
