package models

import "time"

// ArticleTag links one article to one tag. The composite primary key
// keeps the pair unique; rows are owned by the article side.
type ArticleTag struct {
	ArticleID uint      `json:"article_id" gorm:"primaryKey"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
