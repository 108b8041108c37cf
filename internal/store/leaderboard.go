package store

import (
	"sort"

	"github.com/Rubenjb24/Questi-App/internal/fixtures"
	model "github.com/Rubenjb24/Questi-App/internal/models"
)

// GlobalLeaderboard retourne le classement global affichable: le top 5 figé
// plus la ligne live de l'utilisateur courant
func (s *Store) GlobalLeaderboard() []model.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProjectGlobal(s.user, s.rank)
}

// FriendsLeaderboard retourne le classement des amis avec des rangs
// recalculés 1..n
func (s *Store) FriendsLeaderboard() []model.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProjectFriends(s.user)
}

// ProjectGlobal projette le classement global: top 5 figé + ligne injectée de
// l'utilisateur, triés par points décroissants (tri stable).
//
// Le champ Rank de la ligne injectée garde le rang live de l'utilisateur et
// n'est PAS renuméroté après le tri: c'est le comportement du client existant,
// conservé tel quel (voir les tests du projecteur).
func ProjectGlobal(user model.User, userRank int) []model.LeaderboardEntry {
	entries := append(fixtures.GlobalTop(), model.LeaderboardEntry{
		ID:     "l_me",
		Name:   user.Name,
		Points: user.Points,
		Rank:   userRank,
		Avatar: user.Avatar,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries
}

// ProjectFriends projette le classement des amis: roster figé + ligne de
// l'utilisateur insérée en troisième position, tri stable par points
// décroissants, puis rangs réattribués de 1 à n.
//
// Le tri stable fait le tie-break: à points égaux, la position d'insertion
// dans le roster décide (la ligne de l'utilisateur passe avant un ami à
// égalité placé plus bas dans le roster).
func ProjectFriends(user model.User) []model.LeaderboardEntry {
	friends := fixtures.Friends()

	me := model.LeaderboardEntry{
		ID:     "f_me",
		Name:   user.Name,
		Points: user.Points,
		Avatar: user.Avatar,
	}

	entries := make([]model.LeaderboardEntry, 0, len(friends)+1)
	entries = append(entries, friends[:2]...)
	entries = append(entries, me)
	entries = append(entries, friends[2:]...)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
