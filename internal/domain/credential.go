package domain

// Role enumerates the fixed user roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// Credential is one entry of the static user registry.
type Credential struct {
	Username     string
	PasswordHash string
	Role         Role
}

// Identity is the request-scoped result of a verified token whose
// subject resolved to a credential.
type Identity struct {
	Username string
	Role     Role
}
