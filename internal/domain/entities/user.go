package entities

// Role distinguishes the three account types the client knows about.
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

// User mirrors the account shape the browser client stores in its auth state.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Verified bool   `json:"isVerified"`
	Status   string `json:"status,omitempty"`
}

// DemoUsers is the fixed account set available in demo mode, one per role.
// All three log in with the demo password.
func DemoUsers() []User {
	return []User{
		{
			ID:       "demo-rider-1",
			Name:     "Demo Rider",
			Email:    "test@rider.com",
			Role:     RoleRider,
			Phone:    "+1234567890",
			Verified: true,
			Status:   "active",
		},
		{
			ID:       "demo-driver-1",
			Name:     "Demo Driver",
			Email:    "test@driver.com",
			Role:     RoleDriver,
			Phone:    "+1234567891",
			Verified: true,
			Status:   "active",
		},
		{
			ID:       "demo-admin-1",
			Name:     "Demo Admin",
			Email:    "test@admin.com",
			Role:     RoleAdmin,
			Phone:    "+1234567892",
			Verified: true,
			Status:   "active",
		},
	}
}
