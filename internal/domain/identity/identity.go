package identity

// Kind distinguishes the two session identity variants. Admin sessions are
// established by bearer-token exchange and are not backed by a user row, so
// the two kinds must be matched explicitly wherever privilege matters.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// AdminID is the singleton id carried by every admin identity.
const AdminID = "admin"

// Identity is a tagged union over the two kinds of authenticated caller.
// For KindUser, UserID and EmailOrPhone are the account's values.
// For KindAdmin, UserID is AdminID and EmailOrPhone is empty.
type Identity struct {
	Kind         Kind
	UserID       string
	EmailOrPhone string
}

// NewUser returns a user identity for the given account.
func NewUser(userID, emailOrPhone string) Identity {
	return Identity{Kind: KindUser, UserID: userID, EmailOrPhone: emailOrPhone}
}

// NewAdmin returns the singleton admin identity.
func NewAdmin() Identity {
	return Identity{Kind: KindAdmin, UserID: AdminID}
}

// IsAdmin reports whether this identity is the admin variant.
// INVARIANT: Identity fields are not mutated
func (id Identity) IsAdmin() bool {
	return id.Kind == KindAdmin
}
