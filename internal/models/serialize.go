package models

// Serialize projects the user and every comment and post it owns. Credentials
// are never part of the output.
//
// The output grows with the user's whole history: there is no limit or cursor
// here, callers that need one must page the collections before serializing.
func (u *User) Serialize() map[string]any {
	comments := make([]map[string]any, 0, len(u.Comments))
	for i := range u.Comments {
		comments = append(comments, u.Comments[i].Serialize())
	}

	posts := make([]map[string]any, 0, len(u.Posts))
	for i := range u.Posts {
		posts = append(posts, u.Posts[i].Serialize())
	}

	return map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
		"email":     u.Email,
		"comments":  comments,
		"posts":     posts,
	}
}

// Serialize withholds user_id and post_id.
func (c *Comment) Serialize() map[string]any {
	return map[string]any{
		"id":           c.ID,
		"comment_text": c.CommentText,
	}
}

// Serialize emits the id only; comments and media are not echoed.
func (p *Post) Serialize() map[string]any {
	return map[string]any{
		"id": p.ID,
	}
}

func (m *Media) Serialize() map[string]any {
	return map[string]any{
		"id":   m.ID,
		"type": m.Type,
		"url":  m.URL,
	}
}
