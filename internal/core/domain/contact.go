package domain

// ContactMessage is an inquiry a visitor left for a listing.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IPAddress string    `json:"ipAddress,omitempty"`
	IsRead    bool      `json:"isRead"`
	Business  *Business `json:"business,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// ContactMessageInput is the writable shape of an inquiry. Business refers to
// the target listing by id; IPAddress is filled in by the gateway, not the
// visitor.
type ContactMessageInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	IPAddress string `json:"ipAddress,omitempty"`
	Business  int    `json:"business"`
}
