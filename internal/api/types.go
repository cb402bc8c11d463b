package api

// Wire schemas for the fantasy backend. Every endpoint the client consumes
// has an explicit shape here so malformed payloads fail at the boundary
// instead of deep in the rendering code.

// Player is a market or squad entry. Read-only from the client's
// perspective; it is re-fetched on every list or team load, never cached.
type Player struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Club     string  `json:"club,omitempty"`
	Position string  `json:"position,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// Value returns the player's price. Older backend revisions served it as
// "price", the current one as "cost"; the first non-zero field wins.
func (p Player) Value() float64 {
	if p.Cost != 0 {
		return p.Cost
	}
	return p.Price
}

// Team is the authenticated user's squad. Owned by the backend; the client
// holds only a render copy reconstructed after every mutation.
type Team struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	OwnerID     int      `json:"owner_id,omitempty"`
	BudgetLeft  float64  `json:"budget_left,omitempty"`
	TotalBudget float64  `json:"total_budget,omitempty"`
	Players     []Player `json:"players"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is the public registration response.
type User struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// createTeamRequest is the POST /team payload.
type createTeamRequest struct {
	Name string `json:"name"`
}

// registerRequest is the POST /auth/register payload.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
