package models

// Parent links are plain ids. Owned collections are filled by the
// repositories on demand and are never persisted through the parent.

type User struct {
	ID        int64      `json:"id" db:"id"`
	Username  string     `json:"username" db:"username" validate:"required,max=120"`
	Firstname string     `json:"firstname" db:"firstname" validate:"required,max=120"`
	Lastname  string     `json:"lastname" db:"lastname" validate:"required,max=120"`
	Email     string     `json:"email" db:"email" validate:"required,max=120,email"`
	Comments  []Comment  `json:"-" db:"-" validate:"-"`
	Posts     []Post     `json:"-" db:"-" validate:"-"`
	Followers []Follower `json:"-" db:"-" validate:"-"`
}

type Comment struct {
	ID          int64  `json:"id" db:"id"`
	CommentText string `json:"comment_text" db:"comment_text" validate:"required,max=255"`
	UserID      int64  `json:"user_id" db:"user_id" validate:"required,gt=0,max=2147483647"`
	PostID      int64  `json:"post_id" db:"post_id" validate:"required,gt=0,max=2147483647"`
}

type Post struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"user_id" db:"user_id" validate:"required,gt=0,max=2147483647"`
	Comments []Comment `json:"-" db:"-" validate:"-"`
	Media    []Media   `json:"-" db:"-" validate:"-"`
}

type Media struct {
	ID     int64  `json:"id" db:"id"`
	Type   string `json:"type" db:"type" validate:"required,max=120"`
	URL    string `json:"url" db:"url" validate:"required,max=255"`
	PostID int64  `json:"post_id" db:"post_id" validate:"required,gt=0,max=2147483647"`
}

// Follower groups the users linked to it through follower_user.
type Follower struct {
	ID    int64  `json:"id" db:"id"`
	Users []User `json:"-" db:"-" validate:"-"`
}

// UserIDs returns the ids of the loaded members in their current order.
func (f *Follower) UserIDs() []int64 {
	ids := make([]int64, 0, len(f.Users))
	for _, u := range f.Users {
		ids = append(ids, u.ID)
	}
	return ids
}

// FollowerEdge is one row of the follower_user association table.
type FollowerEdge struct {
	UserFrom int64 `db:"user_from"`
	UserTo   int64 `db:"user_to"`
}
