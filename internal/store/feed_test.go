package store

import (
	"testing"

	"github.com/Rubenjb24/Questi-App/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommentSets(t *testing.T) {
	s := New()
	feed := s.Feed()
	require.Len(t, feed, 5)

	// index pair → set A, index impair → set B
	for i, post := range feed {
		require.Len(t, post.Comments, 2, "post %s", post.ID)
		if i%2 == 0 {
			assert.Equal(t, "Lara Croft", post.Comments[0].UserName)
			assert.Equal(t, "Max Power", post.Comments[1].UserName)
		} else {
			assert.Equal(t, "Thomas V.", post.Comments[0].UserName)
			assert.Equal(t, "Anoniempje", post.Comments[1].UserName)
		}
	}

	assert.Equal(t, "c-p1-1", feed[0].Comments[0].ID)
	assert.Equal(t, "c-p2-3", feed[1].Comments[0].ID)
	assert.False(t, feed[0].LikedByMe)
}

func TestToggleLikePostEvenCallsRestoreBaseline(t *testing.T) {
	s := New()
	baseline := s.Feed()[0]

	require.True(t, s.ToggleLikePost("p1"))
	liked := s.Feed()[0]
	assert.Equal(t, baseline.Likes+1, liked.Likes)
	assert.True(t, liked.LikedByMe)

	require.True(t, s.ToggleLikePost("p1"))
	restored := s.Feed()[0]
	assert.Equal(t, baseline.Likes, restored.Likes)
	assert.False(t, restored.LikedByMe)
}

func TestToggleLikeComment(t *testing.T) {
	s := New()

	// c-p2-3 est semé déjà liké (set B): le premier toggle retire le like
	require.True(t, s.ToggleLikeComment("p2", "c-p2-3"))
	c := s.Feed()[1].Comments[0]
	assert.Equal(t, 4, c.Likes)
	assert.False(t, c.LikedByMe)

	require.True(t, s.ToggleLikeComment("p2", "c-p2-3"))
	c = s.Feed()[1].Comments[0]
	assert.Equal(t, 5, c.Likes)
	assert.True(t, c.LikedByMe)

	assert.False(t, s.ToggleLikeComment("p2", "c-p1-1"), "commentaire d'un autre post")
	assert.False(t, s.ToggleLikeComment("nope", "c-p2-3"))
}

func TestAddCommentValidation(t *testing.T) {
	s := New()
	before := len(s.Feed()[0].Comments)

	assert.False(t, s.AddComment("p1", ""))
	assert.False(t, s.AddComment("p1", "   \t\n"))
	assert.Len(t, s.Feed()[0].Comments, before)

	require.True(t, s.AddComment("p1", "hi"))
	comments := s.Feed()[0].Comments
	require.Len(t, comments, before+1)

	added := comments[len(comments)-1]
	assert.Equal(t, "hi", added.Text)
	assert.Equal(t, "Jij", added.UserName)
	assert.Equal(t, 0, added.Likes)
	assert.False(t, added.LikedByMe)
	assert.NotEmpty(t, added.ID)
}

func TestAddCommentUnknownPost(t *testing.T) {
	s := New()
	assert.False(t, s.AddComment("nope", "hallo"))
}

func TestCreatePostPreconditions(t *testing.T) {
	s := New()
	images := fixtures.PostImages()

	// quête non complétée
	assert.False(t, s.CreatePost("d1", images[0], "test"))

	s.ToggleQuestCompletion("d1")

	// champs vides
	assert.False(t, s.CreatePost("", images[0], "test"))
	assert.False(t, s.CreatePost("d1", "", "test"))

	// image hors de la liste proposée
	assert.False(t, s.CreatePost("d1", "https://evil.example/x.png", "test"))

	// quête inconnue
	assert.False(t, s.CreatePost("nope", images[0], "test"))

	// jour historique
	s.SetDay(13)
	assert.False(t, s.CreatePost("d1", images[0], "test"))
	s.SetDay(LiveDay)

	assert.Len(t, s.Feed(), 5, "aucun no-op ne doit toucher le feed")

	require.True(t, s.CreatePost("d1", images[0], "Gedaan!"))
	feed := s.Feed()
	require.Len(t, feed, 6)

	// le nouveau post passe en tête (anti-chronologique)
	post := feed[0]
	assert.Equal(t, CurrentUserID, post.UserID)
	assert.Equal(t, "Jij", post.UserName)
	assert.Equal(t, "10 Squats", post.QuestTitle)
	assert.Equal(t, "Gedaan!", post.Caption)
	assert.Equal(t, "Zojuist", post.Timestamp)
	assert.Equal(t, 0, post.Likes)
	assert.False(t, post.LikedByMe)
	assert.Empty(t, post.Comments)
}

func TestDeletePostOwnershipGuard(t *testing.T) {
	s := New()

	// p1 appartient à u1: suppression refusée
	assert.False(t, s.DeletePost("p1"))
	assert.Len(t, s.Feed(), 5)

	s.ToggleQuestCompletion("d1")
	require.True(t, s.CreatePost("d1", fixtures.PostImages()[0], ""))
	own := s.Feed()[0]

	assert.True(t, s.DeletePost(own.ID))
	assert.Len(t, s.Feed(), 5)
	assert.False(t, s.DeletePost(own.ID), "déjà supprimé")
}

func TestEditPostOwnershipGuard(t *testing.T) {
	s := New()

	assert.False(t, s.EditPost("p1", "hacked"))
	assert.Equal(t, "Tussen het programmeren door even die beentjes laten branden! 🔥 #fitcheck", s.Feed()[0].Caption)

	s.ToggleQuestCompletion("d2")
	require.True(t, s.CreatePost("d2", fixtures.PostImages()[1], "eerste versie"))
	own := s.Feed()[0]

	require.True(t, s.EditPost(own.ID, "tweede versie"))
	assert.Equal(t, "tweede versie", s.Feed()[0].Caption)
}

func TestFeedReturnsCopies(t *testing.T) {
	s := New()

	feed := s.Feed()
	feed[0].Likes = 9999
	feed[0].Comments[0].Text = "gemuteerd"

	fresh := s.Feed()
	assert.Equal(t, 24, fresh[0].Likes)
	assert.Equal(t, "Lekker bezig! 💪", fresh[0].Comments[0].Text)
}
