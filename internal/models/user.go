package model

// User représente l'utilisateur courant de l'application (singleton)
type User struct {
	Points int    `json:"points"`
	Streak int    `json:"streak"`
	Level  int    `json:"level"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UserSnapshot contient l'état complet de l'utilisateur avec son rang,
// tel qu'exposé par l'API
type UserSnapshot struct {
	User
	Rank int `json:"rank"`
}
