package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relaymarket/relay-go/internal/domain/identity"
)

func loggedOutSnap() Snapshot {
	return Snapshot{}
}

func shopperSnap() Snapshot {
	return Snapshot{IsAuthenticated: true}
}

func staffSnap(role identity.StaffRole) Snapshot {
	return Snapshot{IsAuthenticated: true, IsStaff: true, StaffRole: role}
}

func TestShopperGate(t *testing.T) {
	t.Run("unauthenticated redirects with resume destination", func(t *testing.T) {
		d := ShopperGate(loggedOutSnap(), "/buy/p1")
		assert.Equal(t, VerdictRedirect, d.Verdict)
		assert.Equal(t, ShopperLoginPath, d.RedirectTo)
		assert.Equal(t, "/buy/p1", d.Resume)
	})

	t.Run("shopper allowed", func(t *testing.T) {
		d := ShopperGate(shopperSnap(), "/buy/p1")
		assert.Equal(t, VerdictAllow, d.Verdict)
	})

	t.Run("staff not blocked from shopper screens", func(t *testing.T) {
		d := ShopperGate(staffSnap(identity.RoleManager), "/buy/p1")
		assert.Equal(t, VerdictAllow, d.Verdict)
	})

	t.Run("pending while bootstrap is loading", func(t *testing.T) {
		d := ShopperGate(Snapshot{IsLoading: true}, "/buy/p1")
		assert.Equal(t, VerdictPending, d.Verdict)
	})
}

func TestStaffGate(t *testing.T) {
	t.Run("unauthenticated redirects without resume", func(t *testing.T) {
		d := StaffGate(loggedOutSnap(), identity.RoleMaster)
		assert.Equal(t, VerdictRedirect, d.Verdict)
		assert.Equal(t, StaffLoginPath, d.RedirectTo)
		assert.Empty(t, d.Resume)
	})

	t.Run("shopper redirected from staff subtree", func(t *testing.T) {
		d := StaffGate(shopperSnap(), identity.RoleMaster, identity.RoleManager)
		assert.Equal(t, VerdictRedirect, d.Verdict)
	})

	t.Run("role in set allowed", func(t *testing.T) {
		d := StaffGate(staffSnap(identity.RoleManager), identity.RoleMaster, identity.RoleManager)
		assert.Equal(t, VerdictAllow, d.Verdict)
	})

	// Authenticated staff outside the required role set is a routine
	// redirect, not an error.
	t.Run("inspector redirected from staff management", func(t *testing.T) {
		d := StaffGate(staffSnap(identity.RoleInspector), identity.RoleMaster)
		assert.Equal(t, VerdictRedirect, d.Verdict)
		assert.Equal(t, StaffLoginPath, d.RedirectTo)
	})

	t.Run("pending while bootstrap is loading", func(t *testing.T) {
		d := StaffGate(Snapshot{IsLoading: true}, identity.RoleMaster)
		assert.Equal(t, VerdictPending, d.Verdict)
	})
}

func TestGuardStaffPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		role identity.StaffRole
		want Verdict
	}{
		{"master on staff management", "/admin/staff", identity.RoleMaster, VerdictAllow},
		{"manager on staff management", "/admin/staff", identity.RoleManager, VerdictRedirect},
		{"inspector on staff management", "/admin/staff/1", identity.RoleInspector, VerdictRedirect},
		{"manager on brands", "/admin/brands", identity.RoleManager, VerdictAllow},
		{"inspector on brands", "/admin/brands", identity.RoleInspector, VerdictRedirect},
		{"inspector on inspections", "/admin/inspections", identity.RoleInspector, VerdictAllow},
		{"manager on inspections", "/admin/inspections/o1", identity.RoleManager, VerdictRedirect},
		{"inspector on dashboard", "/admin", identity.RoleInspector, VerdictAllow},
		{"manager on unknown admin path", "/admin/settings", identity.RoleManager, VerdictAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := GuardStaffPath(staffSnap(tt.role), tt.path)
			assert.Equal(t, tt.want, d.Verdict)
		})
	}
}
