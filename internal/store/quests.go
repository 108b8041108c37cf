package store

import (
	"github.com/Rubenjb24/Questi-App/internal/fixtures"
	model "github.com/Rubenjb24/Questi-App/internal/models"
)

// ActiveQuests retourne les quêtes journalières du jour affiché.
// Le jour courant sert les quêtes live du ledger; les jours 12 et 13
// retournent leur snapshot historique figé; tout autre jour est vide.
func (s *Store) ActiveQuests() []model.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.day != LiveDay {
		return fixtures.HistoricalQuests(s.day)
	}

	var out []model.Quest
	for _, q := range s.quests {
		if q.Type == model.QuestTypeDaily {
			out = append(out, q)
		}
	}
	return out
}

// WeeklyQuests retourne les quêtes hebdomadaires, toujours depuis le ledger
// (elles ne dépendent pas du jour affiché)
func (s *Store) WeeklyQuests() []model.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Quest
	for _, q := range s.quests {
		if q.Type == model.QuestTypeWeekly {
			out = append(out, q)
		}
	}
	return out
}

// CompletedQuests retourne les quêtes complétées du ledger (source du
// sélecteur de quête lors de la création d'un post)
func (s *Store) CompletedQuests() []model.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Quest
	for _, q := range s.quests {
		if q.Completed {
			out = append(out, q)
		}
	}
	return out
}

// ToggleQuestCompletion bascule l'état de complétion d'une quête et ajuste
// les points et le rang de l'utilisateur. Retourne true si une quête a
// effectivement basculé.
//
// No-op silencieux hors du jour courant ou si l'id est inconnu. Le delta de
// rang vaut max(1, points/10); le rang est borné à [6, 999] — les places 1 à
// 5 restent réservées au top global figé.
func (s *Store) ToggleQuestCompletion(questID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.day != LiveDay {
		return false
	}

	for i := range s.quests {
		if s.quests[i].ID != questID {
			continue
		}

		becomingCompleted := !s.quests[i].Completed
		s.quests[i].Completed = becomingCompleted

		delta := s.quests[i].Points / 10
		if delta < 1 {
			delta = 1
		}

		if becomingCompleted {
			s.user.Points += s.quests[i].Points
			s.rank -= delta
			if s.rank < 6 {
				s.rank = 6
			}
			s.startCelebration()
		} else {
			s.user.Points -= s.quests[i].Points
			s.rank += delta
			if s.rank > 999 {
				s.rank = 999
			}
		}

		return true
	}

	return false
}

// findQuest retourne la quête du ledger pour un id donné.
// Appelant détient déjà le mutex.
func (s *Store) findQuest(questID string) (model.Quest, bool) {
	for _, q := range s.quests {
		if q.ID == questID {
			return q, true
		}
	}
	return model.Quest{}, false
}
