package models

// Session is the single active login: an opaque token plus the live profile.
// Exactly one session exists per process; it is owned by the session service
// and destroyed on logout.
type Session struct {
	Token   string
	Profile Profile
}

// Credential is an account record held by the account store: the bcrypt
// password hash and an embedded profile snapshot. It never crosses the
// account-store boundary; only the Profile projection does.
type Credential struct {
	PasswordHash string  `json:"password_hash"`
	Profile      Profile `json:"profile"`
}

// Accounts maps email (the unique account key, case-sensitive) to its
// credential record.
type Accounts map[string]Credential
