package domain

// Team is the user's authorization class. Only administrators unlock
// mutation and admin views; everything else is read-only browsing.
type Team string

const (
	TeamAdministrator Team = "administrator"
	TeamRegular       Team = "regular"
)

type User struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Team           Team    `json:"team"`
	Picture        string  `json:"picture,omitempty"`
	Identification string  `json:"identification,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Orders         []Order `json:"orders,omitempty"` // rental history, populated on profile fetches
	CreatedOn      string  `json:"created_on"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Team == TeamAdministrator
}
