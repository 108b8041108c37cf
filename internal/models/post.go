package model

// Comment représente un commentaire sous un post du feed social
type Comment struct {
	ID         string `json:"id"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Text       string `json:"text"`
	Likes      int    `json:"likes"`
	LikedByMe  bool   `json:"likedByMe"`
}

// Post représente une publication dans le feed social
type Post struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	QuestTitle string    `json:"questTitle"`
	ImageURL   string    `json:"imageUrl"`
	Caption    string    `json:"caption,omitempty"`
	Likes      int       `json:"likes"`
	Timestamp  string    `json:"timestamp"`
	LikedByMe  bool      `json:"likedByMe"`
	Comments   []Comment `json:"comments"`
}

// OwnedBy indique si le post appartient à l'utilisateur donné
func (p Post) OwnedBy(userID string) bool {
	return p.UserID == userID
}
