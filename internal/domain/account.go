package domain

// AccountKind identifies which backend the client is synchronizing against.
type AccountKind string

const (
	AccountLocal    AccountKind = "local"
	AccountFreshRSS AccountKind = "freshrss"
	AccountMiniflux AccountKind = "miniflux"
)

// Credentials are the stored connection details for a service account.
// FreshRSS uses Username/Password for ClientLogin; Miniflux uses APIToken.
type Credentials struct {
	Kind      AccountKind `json:"kind"`
	ServerURL string      `json:"server_url"`
	Username  string      `json:"username,omitempty"`
	Password  string      `json:"password,omitempty"`
	APIToken  string      `json:"api_token,omitempty"`
}
