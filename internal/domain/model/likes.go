package model

import "errors"

// ErrLikeNotFound is returned when removing a recipe that is not liked.
var ErrLikeNotFound = errors.New("recipe is not liked")

// Like is a bookmarked recipe. Field names match the persisted JSON layout.
//
// @Description Liked recipe
type Like struct {
	ID     string `json:"id" example:"47746"`
	Title  string `json:"title" example:"Best Pizza Dough Ever"`
	Author string `json:"author" example:"101 Cookbooks"`
	Image  string `json:"img" example:"http://forkify-api.herokuapp.com/images/best_pizza_dough_recipe1b20.jpg"`
}

// LikeFromRecipe builds the like record for a recipe.
func LikeFromRecipe(r *Recipe) Like {
	return Like{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		Image:  r.ImageURL,
	}
}

// Likes is the ordered set of liked recipes of one client. It is not safe
// for concurrent use.
type Likes struct {
	items []Like
}

// NewLikes creates a likes collection from previously persisted records.
// Duplicate ids keep their first occurrence.
func NewLikes(items []Like) *Likes {
	l := &Likes{items: make([]Like, 0, len(items))}
	for _, item := range items {
		if !l.IsLiked(item.ID) {
			l.items = append(l.items, item)
		}
	}
	return l
}

// Add likes a recipe. Liking an already liked recipe replaces its record.
func (l *Likes) Add(like Like) {
	if idx := l.indexOf(like.ID); idx >= 0 {
		l.items[idx] = like
		return
	}
	l.items = append(l.items, like)
}

// Delete removes a liked recipe.
func (l *Likes) Delete(id string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return ErrLikeNotFound
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// IsLiked reports whether the recipe is liked.
func (l *Likes) IsLiked(id string) bool {
	return l.indexOf(id) >= 0
}

// Count returns the number of liked recipes.
func (l *Likes) Count() int {
	return len(l.items)
}

// All returns a copy of the liked recipes in the order they were liked.
func (l *Likes) All() []Like {
	items := make([]Like, len(l.items))
	copy(items, l.items)
	return items
}

func (l *Likes) indexOf(id string) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
