package session

// Key is the well-known storage key of the signed-in user.
const Key = "userInfo"

const RoleAdmin = "admin"

// Session is the login response as persisted on the device. Its presence is
// the only signal that the user is signed in.
type Session struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Token  string `json:"token"`
	Avatar string `json:"avatar,omitempty"`
}

// NavLink is one entry of the account menu.
type NavLink struct {
	Label string
	Path  string
}
