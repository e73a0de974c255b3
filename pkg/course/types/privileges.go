package types

// SessionPrivileges echoes what the requesting instructor may do with a
// specific feedback session.
type SessionPrivileges struct {
	SessionName              string `json:"sessionName"`
	CanModifySession         bool   `json:"canModifySession"`
	CanViewSession           bool   `json:"canViewSession"`
	CanSubmitSession         bool   `json:"canSubmitSession"`
	CanViewSessionResults    bool   `json:"canViewSessionResults"`
	CanModifySessionComments bool   `json:"canModifySessionComments"`
}
