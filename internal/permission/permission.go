// Package permission is the static role-permission table for the console.
// It answers, for a given role and client-side path, whether navigation is
// allowed, and which landing route a role gets after login. Route middleware
// applies the same table server-side so the API surface and the navigation
// affordances can never disagree.
package permission

import (
	"strings"

	"github.com/Harry9429/Distro-app/internal/app/model"
)

// RoleLabels maps roles to their display labels
var RoleLabels = map[model.UserRole]string{
	model.RoleAdmin:             "Admin",
	model.RoleDistributor:       "Distributor",
	model.RoleMerchant:          "Merchant",
	model.RolePurchasingManager: "Purchasing Manager",
	model.RoleFinanceManager:    "Finance Manager",
}

// rolePathPrefixes lists the path prefixes (or exact paths) each role can
// reach. Billing only admin + finance_manager among the manager roles;
// finance_manager sees order detail views but not the orders workspace.
var rolePathPrefixes = map[model.UserRole][]string{
	model.RoleAdmin:             {"/dashboard", "/overview", "/team", "/orders", "/approvals", "/billing", "/analytics", "/products", "/settings", "/resources", "/submit-ticket"},
	model.RolePurchasingManager: {"/dashboard", "/overview", "/orders", "/products", "/settings", "/resources", "/submit-ticket"},
	model.RoleFinanceManager:    {"/dashboard", "/overview", "/approvals", "/orders/view/", "/billing", "/analytics", "/settings", "/resources", "/submit-ticket"},
	model.RoleMerchant:          {"/dashboard", "/overview", "/team", "/orders", "/approvals", "/billing", "/analytics", "/products", "/settings", "/resources", "/submit-ticket"},
	model.RoleDistributor:       {"/dashboard", "/overview", "/team", "/orders", "/approvals", "/billing", "/analytics", "/products", "/settings", "/resources", "/submit-ticket"},
}

// Section is a navigation affordance keyed by the path prefix used in
// CanAccessPath, so visibility stays consistent with route guards.
type Section struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// SidebarSections are the console sidebar entries
var SidebarSections = []Section{
	{Path: "/dashboard", Label: "Dashboard"},
	{Path: "/team", Label: "Team"},
	{Path: "/orders", Label: "Orders"},
	{Path: "/approvals", Label: "Approvals"},
	{Path: "/billing", Label: "Invoice & Billing"},
	{Path: "/analytics", Label: "Analytics"},
	{Path: "/products", Label: "Products"},
}

// TabSections are the dashboard tab entries
var TabSections = []Section{
	{Path: "/overview", Label: "Overview"},
	{Path: "/orders", Label: "Orders"},
	{Path: "/approvals", Label: "Approvals"},
	{Path: "/products", Label: "Products"},
}

// CanAccessPath reports whether a role may navigate to the given path: true
// when the path equals, or is nested under, one of the role's configured
// prefixes. A role missing from the table falls back to allow-all; the enum
// is closed at signup so this branch is only reachable with hand-crafted
// data.
func CanAccessPath(role model.UserRole, path string) bool {
	prefixes, ok := rolePathPrefixes[role]
	if !ok {
		return true
	}
	p := normalizePath(path)
	for _, prefix := range prefixes {
		if matchesPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// DefaultPath returns the fixed landing route for a role after login
func DefaultPath(role model.UserRole) string {
	switch role {
	case model.RoleMerchant:
		return "/overview"
	case model.RolePurchasingManager:
		return "/orders"
	case model.RoleFinanceManager:
		return "/approvals"
	default:
		return "/orders"
	}
}

// CanAccessSidebarSection applies the prefix-match rule to sidebar visibility
func CanAccessSidebarSection(role model.UserRole, path string) bool {
	return CanAccessPath(role, path)
}

// VisibleSidebarSections returns the sidebar entries a role may see
func VisibleSidebarSections(role model.UserRole) []Section {
	visible := make([]Section, 0, len(SidebarSections))
	for _, s := range SidebarSections {
		if CanAccessSidebarSection(role, s.Path) {
			visible = append(visible, s)
		}
	}
	return visible
}

// VisibleTabs returns the dashboard tabs a role may see
func VisibleTabs(role model.UserRole) []Section {
	visible := make([]Section, 0, len(TabSections))
	for _, t := range TabSections {
		if CanAccessTab(role, t.Path) {
			visible = append(visible, t)
		}
	}
	return visible
}

// CanAccessTab applies the prefix-match rule to dashboard tab visibility.
// The overview tab is gated by the dashboard prefix.
func CanAccessTab(role model.UserRole, path string) bool {
	if path == "/overview" {
		path = "/dashboard"
	}
	return CanAccessPath(role, path)
}

// normalizePath collapses leading slashes so "//orders" matches "/orders"
func normalizePath(path string) string {
	trimmed := strings.TrimLeft(path, "/")
	return "/" + trimmed
}

func matchesPrefix(path, prefix string) bool {
	if path == prefix || path == strings.TrimSuffix(prefix, "/") {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}
