package enum

// Role represents a user role in the system
type Role string

const (
	RoleAdministrator    Role = "administrator"
	RoleCashier          Role = "cashier"
	RoleInventoryManager Role = "inventory_manager"
)

// Capability represents an action a role is allowed to perform
type Capability string

const (
	CapManageProducts Capability = "manage-products"
	CapProcessSales   Capability = "process-sales"
	CapViewReports    Capability = "view-reports"
)

// Valid returns true if the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleCashier, RoleInventoryManager:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Can reports whether the role grants the given capability.
// Capabilities are derived purely from the role, never stored.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapManageProducts:
		return r == RoleAdministrator || r == RoleInventoryManager
	case CapProcessSales:
		return r == RoleAdministrator || r == RoleCashier
	case CapViewReports:
		return r == RoleAdministrator
	}
	return false
}

// Capabilities holds the full capability set for a role
type Capabilities struct {
	CanManageProducts bool `json:"can_manage_products"`
	CanProcessSales   bool `json:"can_process_sales"`
	CanViewReports    bool `json:"can_view_reports"`
}

// Capabilities returns every capability flag for the role
func (r Role) Capabilities() Capabilities {
	return Capabilities{
		CanManageProducts: r.Can(CapManageProducts),
		CanProcessSales:   r.Can(CapProcessSales),
		CanViewReports:    r.Can(CapViewReports),
	}
}
