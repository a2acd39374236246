package domain

const (
	RoleAdmin    = "admin"
	RoleBusiness = "business"
	RoleUser     = "user"
)

// User models an authenticated actor as the backend reports it. The role is
// trusted verbatim; this layer only ever compares it for equality.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Confirmed bool   `json:"confirmed"`
	Blocked   bool   `json:"blocked"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// HasRole reports whether u is present and carries exactly the given role.
func (u *User) HasRole(role string) bool {
	return u != nil && u.Role == role
}

func (u *User) IsAdmin() bool { return u.HasRole(RoleAdmin) }

func (u *User) IsBusiness() bool { return u.HasRole(RoleBusiness) }
