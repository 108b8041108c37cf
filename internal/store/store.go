// Package store possède l'intégralité de l'état applicatif de Questi:
// quêtes, utilisateur courant, feed social et contexte de jour. Tout vit en
// mémoire, semé depuis les fixtures au démarrage — aucune persistance.
package store

import (
	"sync"
	"time"

	"github.com/Rubenjb24/Questi-App/internal/fixtures"
	model "github.com/Rubenjb24/Questi-App/internal/models"
)

const (
	// CurrentUserID identifie les entités appartenant à l'utilisateur courant
	CurrentUserID = "me"

	// LiveDay est le jour "aujourd'hui" du mois affiché. Les mutations de
	// quêtes et la création de posts sont bloquées sur tout autre jour.
	LiveDay = 14

	// initialRank est le rang global de départ de l'utilisateur
	initialRank = 347

	// celebrationWindow est la durée d'affichage de l'animation de célébration
	celebrationWindow = 3 * time.Second
)

// App est le store partagé du process, initialisé par Init au démarrage
var App *Store

// Store est le conteneur d'état unique de l'application. Toutes les
// mutations passent par ses méthodes et sont sérialisées par le mutex,
// ce qui garantit l'exécution atomique de chaque action utilisateur.
type Store struct {
	mu sync.Mutex

	user   model.User
	rank   int
	quests []model.Quest
	posts  []model.Post
	badges []model.Badge
	images []string

	day int

	celebrating      bool
	celebrationTimer *time.Timer
	celebrationTTL   time.Duration
}

// New construit un store semé depuis les fixtures statiques
func New() *Store {
	s := &Store{
		user:           fixtures.CurrentUser(),
		rank:           initialRank,
		quests:         fixtures.Quests(),
		badges:         fixtures.Badges(),
		images:         fixtures.PostImages(),
		day:            LiveDay,
		celebrationTTL: celebrationWindow,
	}

	// Chaque post initial reçoit son set de commentaires synthétiques,
	// choisi par la parité de son index (règle de fixture du client)
	for i, p := range fixtures.Posts() {
		p.LikedByMe = false
		p.Comments = fixtures.SeedComments(p.ID, i)
		s.posts = append(s.posts, p)
	}

	return s
}

// Init crée le store global du process
func Init() *Store {
	App = New()
	return App
}

// User retourne un snapshot de l'utilisateur courant avec son rang
func (s *Store) User() model.UserSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.UserSnapshot{User: s.user, Rank: s.rank}
}

// Badges retourne les badges de l'utilisateur
func (s *Store) Badges() []model.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Badge, len(s.badges))
	copy(out, s.badges)
	return out
}

// PostImages retourne les images sélectionnables pour un nouveau post
func (s *Store) PostImages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.images))
	copy(out, s.images)
	return out
}

// Celebrating indique si la fenêtre de célébration est active
func (s *Store) Celebrating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.celebrating
}

// Day retourne le jour du mois actuellement affiché
func (s *Store) Day() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.day
}

// SetDay change le jour affiché. Tout jour différent de LiveDay passe
// l'application en lecture seule (snapshots historiques).
func (s *Store) SetDay(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.day = day
}

// startCelebration (ré)arme la fenêtre de célébration. Un déclenchement
// pendant une fenêtre active annule le timer précédent avant d'en armer un
// nouveau, pour que la fenêtre complète reparte de zéro.
// Appelant détient déjà le mutex.
func (s *Store) startCelebration() {
	if s.celebrationTimer != nil {
		s.celebrationTimer.Stop()
	}
	s.celebrating = true
	s.celebrationTimer = time.AfterFunc(s.celebrationTTL, func() {
		s.mu.Lock()
		s.celebrating = false
		s.mu.Unlock()
	})
}
