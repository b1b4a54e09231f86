package utils

const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

var ValidRoles = []string{RoleUser, RoleVendor, RoleAdmin}

const (
	ProductPending  = "pending"
	ProductApproved = "approved"
	ProductRejected = "rejected"
)

var ValidProductStatuses = []string{ProductPending, ProductApproved, ProductRejected}

const (
	AdPending  = "pending"
	AdActive   = "active"
	AdPaused   = "paused"
	AdRejected = "rejected"
)

var ValidAdStatuses = []string{AdPending, AdActive, AdPaused, AdRejected}

func IsValidRole(role string) bool {
	return contains(ValidRoles, role)
}

func IsValidProductStatus(status string) bool {
	return contains(ValidProductStatuses, status)
}

func IsValidAdStatus(status string) bool {
	return contains(ValidAdStatuses, status)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
