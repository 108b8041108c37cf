package utils

import (
	"fmt"
	"net/url"
)

// Palette de fonds DiceBear utilisée par le client
const avatarBackgrounds = "b6e3f4,c0aede,d1d4f9"

// AvatarURL génère une URL d'avatar stable pour un seed donné.
// Utilise l'API DiceBear (style avataaars): même seed, même avatar.
// Fonction pure, aucun appel réseau.
func AvatarURL(seed string) string {
	return fmt.Sprintf(
		"https://api.dicebear.com/7.x/avataaars/svg?seed=%s&backgroundColor=%s",
		url.QueryEscape(seed), avatarBackgrounds,
	)
}
