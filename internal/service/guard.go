package service

import (
	"strings"

	"github.com/relaymarket/relay-go/internal/domain/identity"
)

// Route guards are pure decisions over a session Snapshot: nothing here
// touches the network or mutates state, so a screen can re-evaluate its guard
// on every snapshot change without side effects.

// Verdict is the outcome of evaluating a guard.
type Verdict int

const (
	// VerdictPending means bootstrap resolution is still in flight; render
	// nothing until the snapshot stops loading, then re-evaluate. Protected
	// content must not flash before a redirect.
	VerdictPending Verdict = iota
	// VerdictAllow renders the protected screen.
	VerdictAllow
	// VerdictRedirect sends the user to a login screen instead.
	VerdictRedirect
)

// Login screen paths used as redirect targets.
const (
	ShopperLoginPath = "/login"
	StaffLoginPath   = "/admin/login"
)

// Decision is the result of a guard evaluation.
type Decision struct {
	Verdict Verdict

	// RedirectTo is the login screen for the required principal kind; set
	// only for VerdictRedirect.
	RedirectTo string

	// Resume is the originally intended destination, carried so navigation
	// can continue after a shopper login. Staff redirects leave it empty;
	// staff flows restart at the dashboard.
	Resume string
}

// ShopperGate guards shopper-only subtrees. Any authenticated principal is
// allowed through; staff accounts are not blocked from shopper screens.
func ShopperGate(snap Snapshot, destination string) Decision {
	if snap.IsLoading {
		return Decision{Verdict: VerdictPending}
	}
	if !snap.IsAuthenticated {
		return Decision{Verdict: VerdictRedirect, RedirectTo: ShopperLoginPath, Resume: destination}
	}
	return Decision{Verdict: VerdictAllow}
}

// StaffGate guards a staff subtree that requires one of the given roles.
// A staff principal whose role is outside the set is redirected, not errored;
// this is routine access control.
func StaffGate(snap Snapshot, required ...identity.StaffRole) Decision {
	if snap.IsLoading {
		return Decision{Verdict: VerdictPending}
	}
	if !snap.IsAuthenticated || !snap.IsStaff {
		return Decision{Verdict: VerdictRedirect, RedirectTo: StaffLoginPath}
	}
	for _, role := range required {
		if snap.StaffRole == role {
			return Decision{Verdict: VerdictAllow}
		}
	}
	return Decision{Verdict: VerdictRedirect, RedirectTo: StaffLoginPath}
}

// StaffRoute pairs a back-office subtree with the roles allowed into it.
type StaffRoute struct {
	Path  string
	Roles []identity.StaffRole
}

// StaffRoutes is the back-office access table.
var StaffRoutes = []StaffRoute{
	{Path: "/admin", Roles: []identity.StaffRole{identity.RoleMaster, identity.RoleManager, identity.RoleInspector}},
	{Path: "/admin/staff", Roles: []identity.StaffRole{identity.RoleMaster}},
	{Path: "/admin/brands", Roles: []identity.StaffRole{identity.RoleMaster, identity.RoleManager}},
	{Path: "/admin/products", Roles: []identity.StaffRole{identity.RoleMaster, identity.RoleManager}},
	{Path: "/admin/inspections", Roles: []identity.StaffRole{identity.RoleMaster, identity.RoleInspector}},
}

// GuardStaffPath evaluates the staff gate for a concrete back-office path
// using the longest matching subtree in StaffRoutes. Unknown admin paths fall
// back to the dashboard role set.
func GuardStaffPath(snap Snapshot, path string) Decision {
	var matched *StaffRoute
	for i := range StaffRoutes {
		route := &StaffRoutes[i]
		if path == route.Path || strings.HasPrefix(path, route.Path+"/") {
			if matched == nil || len(route.Path) > len(matched.Path) {
				matched = route
			}
		}
	}
	if matched == nil {
		return StaffGate(snap, identity.RoleMaster, identity.RoleManager, identity.RoleInspector)
	}
	return StaffGate(snap, matched.Roles...)
}
