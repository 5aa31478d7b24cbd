package models

// User role constants
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

// Request types

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

type CastBallotRequest struct {
	VoterID   string `json:"voterId"`
	Position  string `json:"position"`
	Candidate string `json:"candidate"`
}

type StartSessionRequest struct {
	// Duration of the voting window in whole seconds. Must be positive.
	Duration int64 `json:"duration"`
}

type CreateUserRequest struct {
	Identifier string `json:"identifier"`
	Role       string `json:"role"`
}

// Response types

type CastBallotResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

type VoteCheckResponse struct {
	Voted bool `json:"voted"`
}

type AckResponse struct {
	Message string `json:"message"`
}

type CreateUserResponse struct {
	User User `json:"user"`
	// Secret is the generated credential, disclosed exactly once here.
	// Only its hash is persisted.
	Secret string `json:"secret"`
}

// Domain types

type User struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Role       string `json:"role"`
	CreatedAt  int64  `json:"created_at"`
}

type Ballot struct {
	ID        string `json:"id"`
	VoterID   string `json:"voterId"`
	Position  string `json:"position"`
	Candidate string `json:"candidate"`
	CastAt    int64  `json:"cast_at"`
}

// Slate is the read-only candidate list for one contested position.
type Slate struct {
	Position   string   `json:"position"`
	Candidates []string `json:"candidates"`
}

// SessionStatus reports whether the voting window is open. EndTime is the
// absolute close instant in Unix milliseconds, nil while the window is
// closed.
type SessionStatus struct {
	Active  bool   `json:"active"`
	EndTime *int64 `json:"endTime"`
}

// Tally maps position -> candidate -> vote count. Derived from the ballot
// ledger, never stored.
type Tally map[string]map[string]int

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
