package models

// View is one of the top-level screens the frontend can show. The backend
// owns the role/view table so every client renders the same navigation.
type View string

const (
	ViewDashboard   View = "Dashboard"
	ViewSoilMonitor View = "Soil Monitor"
	ViewSeedLibrary View = "Seed Library"
	ViewMarketplace View = "Marketplace"
	ViewAdminPanel  View = "Admin Panel"
)

type NavItem struct {
	View  View   `json:"view"`
	Roles []Role `json:"roles"`
}

// NavItems is the full navigation table in display order.
var NavItems = []NavItem{
	{View: ViewDashboard, Roles: []Role{RoleClient, RoleAdmin, RoleSuperAdmin}},
	{View: ViewSoilMonitor, Roles: []Role{RoleAdmin, RoleSuperAdmin}},
	{View: ViewSeedLibrary, Roles: []Role{RoleAdmin, RoleSuperAdmin}},
	{View: ViewMarketplace, Roles: []Role{RoleClient, RoleAdmin, RoleSuperAdmin}},
	{View: ViewAdminPanel, Roles: []Role{RoleAdmin, RoleSuperAdmin}},
}

// AllowedViews returns the views the given role may open, in nav order.
func AllowedViews(role Role) []View {
	var views []View
	for _, item := range NavItems {
		if IsViewAllowed(role, item.View) {
			views = append(views, item.View)
		}
	}
	return views
}

func IsViewAllowed(role Role, view View) bool {
	for _, item := range NavItems {
		if item.View != view {
			continue
		}
		for _, r := range item.Roles {
			if r == role {
				return true
			}
		}
		return false
	}
	return false
}

// ResolveView keeps a client on a view it is allowed to see: if the view is
// unknown or not allowed for the role, it falls back to the dashboard.
func ResolveView(role Role, view View) View {
	if IsViewAllowed(role, view) {
		return view
	}
	return ViewDashboard
}
