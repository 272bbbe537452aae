package identity

// Package identity contains domain-level types for principals and sessions.
// It is pure and free of transport/adapter concerns.

// PrincipalKind identifies which login entry point produced a credential and
// therefore which backend endpoint family applies. It is persisted alongside
// the token because the self-lookup payloads do not self-describe.
type PrincipalKind string

const (
	KindShopper PrincipalKind = "shopper"
	KindStaff   PrincipalKind = "staff"
)

// Valid reports whether k is one of the closed set of kinds.
func (k PrincipalKind) Valid() bool {
	return k == KindShopper || k == KindStaff
}

// StaffRole is an administrative rank. Keep string form for easy persistence.
type StaffRole string

const (
	RoleMaster    StaffRole = "ROLE_MASTER"
	RoleManager   StaffRole = "ROLE_MANAGER"
	RoleInspector StaffRole = "ROLE_INSPECTOR"
)

// Valid reports whether r is one of the closed set of staff roles.
func (r StaffRole) Valid() bool {
	return r == RoleMaster || r == RoleManager || r == RoleInspector
}

// Principal is the resolved identity of the logged-in user or staff member,
// replaced wholesale on every successful self-lookup.
type Principal struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"nickname"`
	Phone       string    `json:"phone,omitempty"`
	ShopperRole string    `json:"role,omitempty"`
	StaffRole   StaffRole `json:"adminRole,omitempty"`
}

// Credential is the opaque bearer token plus the kind flag it authenticates.
// The token is never inspected for claims, only forwarded verbatim. Token and
// kind are persisted as one value so they can never desynchronize.
type Credential struct {
	AccessToken string        `json:"access_token"`
	Kind        PrincipalKind `json:"kind"`
}

// Valid reports whether c can be trusted enough to attempt resolution.
func (c Credential) Valid() bool {
	return c.AccessToken != "" && c.Kind.Valid()
}

// Session is a tagged union over the three authentication states:
// logged out, shopper, or staff. Constructing through the functions below
// keeps kind and principal from ever disagreeing.
type Session struct {
	kind      PrincipalKind // zero value means logged out
	principal Principal
}

// LoggedOut returns the unauthenticated session.
func LoggedOut() Session {
	return Session{}
}

// ShopperSession returns a session for an authenticated shopper.
func ShopperSession(p Principal) Session {
	return Session{kind: KindShopper, principal: p}
}

// StaffSession returns a session for an authenticated staff member.
func StaffSession(p Principal) Session {
	return Session{kind: KindStaff, principal: p}
}

// IsAuthenticated reports whether any principal is active.
func (s Session) IsAuthenticated() bool {
	return s.kind.Valid()
}

// IsStaff reports whether the active principal logged in through the staff
// entry point.
func (s Session) IsStaff() bool {
	return s.kind == KindStaff
}

// Kind returns the active principal kind, or "" when logged out.
func (s Session) Kind() PrincipalKind {
	return s.kind
}

// Principal returns the active principal and whether one is present.
func (s Session) Principal() (Principal, bool) {
	return s.principal, s.kind.Valid()
}

// StaffRole returns the active staff role, or "" for shoppers and the
// logged-out state.
func (s Session) StaffRole() StaffRole {
	if s.kind != KindStaff {
		return ""
	}
	return s.principal.StaffRole
}
