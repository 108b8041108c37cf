package model

// QuestType représente la récurrence d'une quête
type QuestType string

const (
	QuestTypeDaily  QuestType = "DAILY"
	QuestTypeWeekly QuestType = "WEEKLY"
)

// QuestCategory représente la catégorie d'une quête
type QuestCategory string

const (
	CategorySport       QuestCategory = "Sport"
	CategoryFocus       QuestCategory = "Focus"
	CategoryOntspanning QuestCategory = "Ontspanning"
	CategorySociaal     QuestCategory = "Sociaal"
)

// Quest représente une quête journalière ou hebdomadaire
type Quest struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Points            int           `json:"points"`
	Type              QuestType     `json:"type"`
	ParticipantsCount int           `json:"participantsCount"`
	Completed         bool          `json:"completed"`
	Category          QuestCategory `json:"category"`
	Progress          float64       `json:"progress,omitempty"`
	Goal              float64       `json:"goal,omitempty"`
}

// DisplayProgress retourne la progression affichable en pourcentage (0-100).
// Une quête complétée affiche toujours 100%, la progression partielle est
// plafonnée au goal.
func (q Quest) DisplayProgress() float64 {
	if q.Completed {
		return 100
	}
	if q.Goal <= 0 {
		return 0
	}
	progress := q.Progress
	if progress > q.Goal {
		progress = q.Goal
	}
	return (progress / q.Goal) * 100
}
