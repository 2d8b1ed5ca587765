package models

import "time"

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

type Article struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	Title       string        `json:"title" gorm:"not null"`
	Slug        string        `json:"slug" gorm:"uniqueIndex;not null"`
	AuthorID    uint          `json:"author_id" gorm:"not null"`
	Author      User          `json:"author" gorm:"foreignKey:AuthorID"`
	Content     string        `json:"content" gorm:"type:text"`
	Status      ArticleStatus `json:"status" gorm:"default:'draft'"`
	Tags        []Tag         `json:"tags" gorm:"many2many:article_tags;"`
	PublishedAt *time.Time    `json:"published_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
