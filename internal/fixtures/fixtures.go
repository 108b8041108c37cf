// Package fixtures fournit les données statiques de démarrage de Questi:
// quêtes, badges, posts du feed, classements et images sélectionnables.
// Toutes les fonctions retournent des copies fraîches — les appelants
// peuvent muter le résultat sans corrompre la source.
package fixtures

import (
	model "github.com/Rubenjb24/Questi-App/internal/models"
	"github.com/Rubenjb24/Questi-App/internal/utils"
)

// Quests retourne la liste initiale des quêtes du jour courant
func Quests() []model.Quest {
	return []model.Quest{
		{
			ID:                "d1",
			Title:             "10 Squats",
			Description:       "Snelle energieboost! Doe 10 squats waar je ook bent.",
			Points:            50,
			Type:              model.QuestTypeDaily,
			ParticipantsCount: 12450,
			Category:          model.CategorySport,
		},
		{
			ID:                "d2",
			Title:             "Digitale Detox",
			Description:       "Leg je telefoon 5 minuten weg en kijk naar buiten.",
			Points:            30,
			Type:              model.QuestTypeDaily,
			ParticipantsCount: 8900,
			Category:          model.CategoryOntspanning,
		},
		{
			ID:                "d3",
			Title:             "Complimentje",
			Description:       "Stuur een lief berichtje naar iemand die je al even niet gesproken hebt.",
			Points:            40,
			Type:              model.QuestTypeDaily,
			ParticipantsCount: 5200,
			Category:          model.CategorySociaal,
		},
		{
			ID:                "w1",
			Title:             "Wekelijkse Runner",
			Description:       "Ren deze week in totaal 5 kilometer.",
			Points:            500,
			Type:              model.QuestTypeWeekly,
			ParticipantsCount: 34000,
			Category:          model.CategorySport,
			Progress:          2.4,
			Goal:              5.0,
		},
		{
			ID:                "w2",
			Title:             "Focus Meester",
			Description:       "Log 4 uur aan gefocuste werksessies.",
			Points:            400,
			Type:              model.QuestTypeWeekly,
			ParticipantsCount: 15600,
			Category:          model.CategoryFocus,
			Progress:          1,
			Goal:              4,
		},
	}
}

// HistoricalQuests retourne le snapshot figé des quêtes pour un jour passé.
// Seuls les jours 12 et 13 ont un historique; tout autre jour retourne nil.
func HistoricalQuests(day int) []model.Quest {
	switch day {
	case 13:
		return []model.Quest{
			{
				ID:                "h13-1",
				Title:             "Gezonde Lunch",
				Description:       "Eet een lunch met minimaal 2 verschillende soorten groenten.",
				Points:            40,
				Type:              model.QuestTypeDaily,
				ParticipantsCount: 14200,
				Category:          model.CategorySport,
				Completed:         true,
			},
			{
				ID:                "h13-2",
				Title:             "Traplopen",
				Description:       "Neem vandaag de trap in plaats van de lift of roltrap.",
				Points:            30,
				Type:              model.QuestTypeDaily,
				ParticipantsCount: 11500,
				Category:          model.CategorySport,
				Completed:         true,
			},
			{
				ID:                "h13-3",
				Title:             "Leesmoment",
				Description:       "Lees 15 minuten in een fysiek boek of e-reader.",
				Points:            50,
				Type:              model.QuestTypeDaily,
				ParticipantsCount: 9200,
				Category:          model.CategoryFocus,
			},
		}
	case 12:
		return []model.Quest{
			{
				ID:                "h12-1",
				Title:             "Water Drinken",
				Description:       "Drink 2 liter water gedurende de dag.",
				Points:            20,
				Type:              model.QuestTypeDaily,
				ParticipantsCount: 18000,
				Category:          model.CategorySport,
				Completed:         true,
			},
			{
				ID:                "h12-2",
				Title:             "Geen Suiker",
				Description:       "Eet vandaag geen toegevoegde suikers.",
				Points:            60,
				Type:              model.QuestTypeDaily,
				ParticipantsCount: 7400,
				Category:          model.CategorySport,
			},
			{
				ID:                "h12-3",
				Title:             "Bel een vriend",
				Description:       "Bel iemand op om gewoon even bij te praten.",
				Points:            50,
				Type:              model.QuestTypeDaily,
				ParticipantsCount: 6100,
				Category:          model.CategorySociaal,
				Completed:         true,
			},
		}
	}
	return nil
}

// Badges retourne la liste initiale des badges
func Badges() []model.Badge {
	return []model.Badge{
		{ID: "b1", Name: "Vroege Vogel", Icon: "🌅", Description: "Voltooi een quest voor 08:00", Unlocked: true},
		{ID: "b2", Name: "Week Strijder", Icon: "⚔️", Description: "Voltooi alle weekquests", Unlocked: false},
		{ID: "b3", Name: "Reeks van 7", Icon: "🔥", Description: "Behaal een streak van 7 dagen", Unlocked: true},
		{ID: "b4", Name: "Sociaal Dier", Icon: "🦋", Description: "Verdien 100 punten in sociale quests", Unlocked: false},
	}
}

// Posts retourne les posts initiaux du feed, sans commentaires.
// Les avatars des auteurs sont dérivés de leur nom, les commentaires
// synthétiques sont ajoutés par le store au seeding.
func Posts() []model.Post {
	posts := []model.Post{
		{
			ID:         "p1",
			UserID:     "u1",
			UserName:   "Thomas V.",
			QuestTitle: "10 Squats",
			Caption:    "Tussen het programmeren door even die beentjes laten branden! 🔥 #fitcheck",
			ImageURL:   "https://picsum.photos/400/300?random=10",
			Likes:      24,
			Timestamp:  "2u geleden",
		},
		{
			ID:         "p2",
			UserID:     "u2",
			UserName:   "Sarah de Groot",
			QuestTitle: "Digitale Detox",
			Caption:    "Bizar hoe fijn het is om even 5 minuten NIET naar een scherm te staren. Rust. 🍃",
			ImageURL:   "https://picsum.photos/400/300?random=11",
			Likes:      12,
			Timestamp:  "4u geleden",
		},
		{
			ID:         "p3",
			UserID:     "u3",
			UserName:   "Lucas M.",
			QuestTitle: "Wekelijkse Runner",
			Caption:    "De eerste kilometers zitten erop voor deze week! Lekker tempo te pakken vandaag.",
			ImageURL:   "https://picsum.photos/400/300?random=12",
			Likes:      89,
			Timestamp:  "5u geleden",
		},
		{
			ID:         "p4",
			UserID:     "u4",
			UserName:   "Emma de Wit",
			QuestTitle: "Complimentje",
			Caption:    "Mijn beste vriendin verrast met een lief appje. Het kleine gebaar doet het hem! ✨",
			ImageURL:   "https://picsum.photos/400/300?random=13",
			Likes:      45,
			Timestamp:  "6u geleden",
		},
		{
			ID:         "p5",
			UserID:     "u5",
			UserName:   "Bram Bakker",
			QuestTitle: "Focus Meester",
			Caption:    "Pomodoro timer aan en gaan. Die deadline van morgen gaat me niet tegenhouden! 🚀",
			ImageURL:   "https://picsum.photos/400/300?random=14",
			Likes:      31,
			Timestamp:  "8u geleden",
		},
	}
	for i := range posts {
		posts[i].UserAvatar = utils.AvatarURL(posts[i].UserName)
	}
	return posts
}

// SeedComments génère les commentaires synthétiques d'un post initial.
// Règle de fixture: le set dépend uniquement de l'index du post (pair → set A,
// impair → set B), à reproduire à l'identique pour la parité des données.
func SeedComments(postID string, index int) []model.Comment {
	sets := [][]model.Comment{
		{
			{ID: "c-" + postID + "-1", UserName: "Lara Croft", UserAvatar: utils.AvatarURL("Lara"), Text: "Lekker bezig! 💪", Likes: 2},
			{ID: "c-" + postID + "-2", UserName: "Max Power", UserAvatar: utils.AvatarURL("Max"), Text: "Die squats branden altijd zo goed haha.", Likes: 0},
		},
		{
			{ID: "c-" + postID + "-3", UserName: "Thomas V.", UserAvatar: utils.AvatarURL("ThomasV"), Text: "Heel rustgevend dit, goeie tip!", Likes: 5, LikedByMe: true},
			{ID: "c-" + postID + "-4", UserName: "Anoniempje", UserAvatar: utils.AvatarURL("Anon"), Text: "5 minuten is lastiger dan het lijkt!", Likes: 1},
		},
	}
	return sets[index%len(sets)]
}

// GlobalTop retourne le top 5 figé du classement global
func GlobalTop() []model.LeaderboardEntry {
	entries := []model.LeaderboardEntry{
		{ID: "l1", Name: "Max Power", Points: 18450, Rank: 1},
		{ID: "l2", Name: "Lara Croft", Points: 17200, Rank: 2},
		{ID: "l3", Name: "CyberSam", Points: 16100, Rank: 3},
		{ID: "l4", Name: "EliteQuest", Points: 15900, Rank: 4},
		{ID: "l5", Name: "ProGamer99", Points: 14200, Rank: 5},
	}
	for i := range entries {
		entries[i].Avatar = utils.AvatarURL(entries[i].Name)
	}
	return entries
}

// Friends retourne le roster figé des amis, dans l'ordre du client.
// La ligne de l'utilisateur courant est insérée en troisième position par le
// projecteur — cet ordre d'insertion détermine le tie-break du tri stable.
func Friends() []model.LeaderboardEntry {
	entries := []model.LeaderboardEntry{
		{ID: "f1", Name: "David VDB", Points: 3200},
		{ID: "f2", Name: "Thomas the Tibb", Points: 2850},
		{ID: "f3", Name: "Nickie U", Points: 2100},
		{ID: "f4", Name: "Allard Manneveen", Points: 1950},
		{ID: "f5", Name: "Maarinus Goose", Points: 1800},
	}
	for i := range entries {
		entries[i].Avatar = utils.AvatarURL(entries[i].Name)
	}
	return entries
}

// PostImages retourne les images sélectionnables pour un nouveau post
func PostImages() []string {
	return []string{
		"https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=500&q=80",
		"https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=500&q=80",
		"https://images.unsplash.com/photo-1552674605-db6ffd4facb5?w=500&q=80",
		"https://images.unsplash.com/photo-1434494878577-86c23bdd0639?w=500&q=80",
		"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=500&q=80",
		"https://images.unsplash.com/photo-1594882645126-14020914d58d?w=500&q=80",
	}
}

// CurrentUser retourne l'état initial de l'utilisateur courant
func CurrentUser() model.User {
	return model.User{
		Points: 2450,
		Streak: 5,
		Level:  12,
		Name:   "Jij",
		Avatar: utils.AvatarURL("me-questi-user"),
	}
}
