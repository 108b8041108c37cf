package model

// LeaderboardEntry représente une ligne du classement (global ou amis).
// Avatar est toujours renseigné: soit l'avatar live de l'utilisateur courant,
// soit un avatar dérivé du nom du participant.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
	Avatar string `json:"avatar"`
}
