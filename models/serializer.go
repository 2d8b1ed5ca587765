package models

import "time"

const excerptLength = 100

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewTagResponse(t *Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

func NewTagResponses(tags []Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, NewTagResponse(&tags[i]))
	}
	return out
}

// ArticleResponse is the full read representation of an article.
type ArticleResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Author      uint          `json:"author"`
	AuthorName  string        `json:"author_name"`
	Content     string        `json:"content"`
	Status      ArticleStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	PublishedAt *time.Time    `json:"published_at"`
	Tags        []TagResponse `json:"tags"`
}

func NewArticleResponse(a *Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Author:      a.AuthorID,
		AuthorName:  a.Author.Username,
		Content:     a.Content,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		PublishedAt: a.PublishedAt,
		Tags:        NewTagResponses(a.Tags),
	}
}

// ArticleListItem is the lightweight representation used on listings.
type ArticleListItem struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Author      uint          `json:"author"`
	AuthorName  string        `json:"author_name"`
	Excerpt     string        `json:"excerpt"`
	Status      ArticleStatus `json:"status"`
	PublishedAt *time.Time    `json:"published_at"`
	TagCount    int           `json:"tag_count"`
}

func NewArticleListItem(a *Article) ArticleListItem {
	return ArticleListItem{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Author:      a.AuthorID,
		AuthorName:  a.Author.Username,
		Excerpt:     Excerpt(a.Content),
		Status:      a.Status,
		PublishedAt: a.PublishedAt,
		TagCount:    len(a.Tags),
	}
}

func NewArticleListItems(articles []Article) []ArticleListItem {
	out := make([]ArticleListItem, 0, len(articles))
	for i := range articles {
		out = append(out, NewArticleListItem(&articles[i]))
	}
	return out
}

// Excerpt returns the first 100 characters of body, with a trailing
// ellipsis when truncated. Counted in runes so multi-byte content is
// not cut mid-character.
func Excerpt(body string) string {
	if body == "" {
		return ""
	}
	runes := []rune(body)
	if len(runes) <= excerptLength {
		return body
	}
	return string(runes[:excerptLength]) + "..."
}
