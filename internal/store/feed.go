package store

import (
	"strings"

	model "github.com/Rubenjb24/Questi-App/internal/models"
	"github.com/Rubenjb24/Questi-App/internal/utils"
)

// Feed retourne les posts du feed social, du plus récent au plus ancien
func (s *Store) Feed() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Post, len(s.posts))
	for i, p := range s.posts {
		comments := make([]model.Comment, len(p.Comments))
		copy(comments, p.Comments)
		p.Comments = comments
		out[i] = p
	}
	return out
}

// CreatePost publie une complétion de quête sur le feed. Retourne true si le
// post a été créé.
//
// Préconditions (no-op silencieux sinon): jour courant affiché, quête connue
// et complétée, image choisie parmi les images proposées.
func (s *Store) CreatePost(questID, imageURL, caption string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.day != LiveDay {
		return false
	}
	if questID == "" || imageURL == "" {
		return false
	}

	quest, ok := s.findQuest(questID)
	if !ok || !quest.Completed {
		return false
	}

	allowed := false
	for _, img := range s.images {
		if img == imageURL {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	post := model.Post{
		ID:         utils.GeneratePostID(),
		UserID:     CurrentUserID,
		UserName:   s.user.Name,
		UserAvatar: s.user.Avatar,
		QuestTitle: quest.Title,
		ImageURL:   imageURL,
		Caption:    caption,
		Likes:      0,
		Timestamp:  "Zojuist",
		Comments:   []model.Comment{},
	}

	// Ordre anti-chronologique: le nouveau post passe en tête
	s.posts = append([]model.Post{post}, s.posts...)
	return true
}

// EditPost remplace la légende d'un post appartenant à l'utilisateur courant
func (s *Store) EditPost(postID, caption string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == postID && s.posts[i].OwnedBy(CurrentUserID) {
			s.posts[i].Caption = caption
			return true
		}
	}
	return false
}

// DeletePost retire un post appartenant à l'utilisateur courant.
// Les posts des autres utilisateurs sont intouchables (no-op).
func (s *Store) DeletePost(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == postID && s.posts[i].OwnedBy(CurrentUserID) {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleLikePost ajoute ou retire le like de l'utilisateur courant sur un
// post. Le compteur et le flag likedByMe bougent toujours en tandem.
func (s *Store) ToggleLikePost(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if s.posts[i].LikedByMe {
			s.posts[i].Likes--
		} else {
			s.posts[i].Likes++
		}
		s.posts[i].LikedByMe = !s.posts[i].LikedByMe
		return true
	}
	return false
}

// ToggleLikeComment bascule le like d'un commentaire précis d'un post
func (s *Store) ToggleLikeComment(postID, commentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		for j := range s.posts[i].Comments {
			c := &s.posts[i].Comments[j]
			if c.ID != commentID {
				continue
			}
			if c.LikedByMe {
				c.Likes--
			} else {
				c.Likes++
			}
			c.LikedByMe = !c.LikedByMe
			return true
		}
		return false
	}
	return false
}

// AddComment ajoute un commentaire de l'utilisateur courant sous un post.
// Un texte vide après trim est un no-op silencieux.
func (s *Store) AddComment(postID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return false
	}

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.posts[i].Comments = append(s.posts[i].Comments, model.Comment{
			ID:         utils.GenerateCommentID(),
			UserName:   s.user.Name,
			UserAvatar: s.user.Avatar,
			Text:       text,
			Likes:      0,
			LikedByMe:  false,
		})
		return true
	}
	return false
}
