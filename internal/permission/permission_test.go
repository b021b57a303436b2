package permission

import (
	"testing"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/stretchr/testify/assert"
)

func TestCanAccessPath(t *testing.T) {
	tests := []struct {
		name string
		role model.UserRole
		path string
		want bool
	}{
		{"Admin reaches approvals", model.RoleAdmin, "/approvals", true},
		{"Admin reaches team", model.RoleAdmin, "/team", true},
		{"Admin reaches nested order view", model.RoleAdmin, "/orders/view/42", true},
		{"Merchant reaches billing", model.RoleMerchant, "/billing", true},
		{"Distributor reaches analytics", model.RoleDistributor, "/analytics", true},
		{"Purchasing manager reaches orders", model.RolePurchasingManager, "/orders", true},
		{"Purchasing manager reaches nested order", model.RolePurchasingManager, "/orders/view/7", true},
		{"Purchasing manager blocked from approvals", model.RolePurchasingManager, "/approvals", false},
		{"Purchasing manager blocked from billing", model.RolePurchasingManager, "/billing", false},
		{"Purchasing manager blocked from analytics", model.RolePurchasingManager, "/analytics", false},
		{"Purchasing manager blocked from team", model.RolePurchasingManager, "/team", false},
		{"Finance manager reaches approvals", model.RoleFinanceManager, "/approvals", true},
		{"Finance manager reaches billing", model.RoleFinanceManager, "/billing", true},
		{"Finance manager reaches order detail", model.RoleFinanceManager, "/orders/view/42", true},
		{"Finance manager blocked from orders workspace", model.RoleFinanceManager, "/orders", false},
		{"Finance manager blocked from products", model.RoleFinanceManager, "/products", false},
		{"Finance manager blocked from team", model.RoleFinanceManager, "/team", false},
		{"Prefix must respect segment boundary", model.RolePurchasingManager, "/ordersarchive", false},
		{"Double slash normalized", model.RolePurchasingManager, "//orders", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessPath(tt.role, tt.path))
		})
	}
}

func TestCanAccessPath_UnknownRoleAllowsAll(t *testing.T) {
	// roles outside the table fall back to allow-all
	assert.True(t, CanAccessPath(model.UserRole("auditor"), "/approvals"))
	assert.True(t, CanAccessPath(model.UserRole("auditor"), "/anything/else"))
}

func TestDefaultPath(t *testing.T) {
	tests := []struct {
		role model.UserRole
		want string
	}{
		{model.RoleAdmin, "/orders"},
		{model.RoleDistributor, "/orders"},
		{model.RoleMerchant, "/overview"},
		{model.RolePurchasingManager, "/orders"},
		{model.RoleFinanceManager, "/approvals"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultPath(tt.role))
		})
	}
}

func TestCanAccessTab(t *testing.T) {
	// the overview tab is gated by the dashboard prefix, which every role has
	assert.True(t, CanAccessTab(model.RoleFinanceManager, "/overview"))
	assert.True(t, CanAccessTab(model.RolePurchasingManager, "/overview"))

	// other tabs follow the path table
	assert.False(t, CanAccessTab(model.RolePurchasingManager, "/approvals"))
	assert.True(t, CanAccessTab(model.RoleFinanceManager, "/approvals"))
}

func TestVisibleSidebarSections(t *testing.T) {
	adminSections := VisibleSidebarSections(model.RoleAdmin)
	assert.Len(t, adminSections, len(SidebarSections))

	pmSections := VisibleSidebarSections(model.RolePurchasingManager)
	for _, s := range pmSections {
		assert.NotEqual(t, "/approvals", s.Path)
		assert.NotEqual(t, "/billing", s.Path)
		assert.NotEqual(t, "/team", s.Path)
	}
	assert.NotEmpty(t, pmSections)
}

func TestRoleLabels(t *testing.T) {
	assert.Equal(t, "Purchasing Manager", RoleLabels[model.RolePurchasingManager])
	assert.Equal(t, "Finance Manager", RoleLabels[model.RoleFinanceManager])
	assert.Len(t, RoleLabels, 5)
}
