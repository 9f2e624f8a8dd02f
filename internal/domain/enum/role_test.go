package enum

import "testing"

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role           Role
		manageProducts bool
		processSales   bool
		viewReports    bool
	}{
		{RoleAdministrator, true, true, true},
		{RoleCashier, false, true, false},
		{RoleInventoryManager, true, false, false},
	}

	for _, tc := range cases {
		caps := tc.role.Capabilities()
		if caps.CanManageProducts != tc.manageProducts {
			t.Errorf("%s: CanManageProducts = %v, want %v", tc.role, caps.CanManageProducts, tc.manageProducts)
		}
		if caps.CanProcessSales != tc.processSales {
			t.Errorf("%s: CanProcessSales = %v, want %v", tc.role, caps.CanProcessSales, tc.processSales)
		}
		if caps.CanViewReports != tc.viewReports {
			t.Errorf("%s: CanViewReports = %v, want %v", tc.role, caps.CanViewReports, tc.viewReports)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdministrator, RoleCashier, RoleInventoryManager} {
		if !role.Valid() {
			t.Errorf("%s should be valid", role)
		}
	}
	for _, role := range []Role{"", "manager", "ADMINISTRATOR"} {
		if role.Valid() {
			t.Errorf("%q should be invalid", role)
		}
	}
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	caps := Role("intern").Capabilities()
	if caps.CanManageProducts || caps.CanProcessSales || caps.CanViewReports {
		t.Errorf("unknown role granted capabilities: %+v", caps)
	}
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodDigital} {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if PaymentMethod("check").Valid() {
		t.Error("check should be invalid")
	}
}

func TestSaleStatusValid(t *testing.T) {
	for _, s := range []SaleStatus{SaleStatusCompleted, SaleStatusCancelled, SaleStatusRefunded} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if SaleStatus("pending").Valid() {
		t.Error("pending should be invalid")
	}
}
