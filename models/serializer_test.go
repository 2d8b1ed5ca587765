package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Equal(t, strings.Repeat("a", 100)+"...", Excerpt(long))

	short := strings.Repeat("b", 50)
	assert.Equal(t, short, Excerpt(short))

	exact := strings.Repeat("c", 100)
	assert.Equal(t, exact, Excerpt(exact))

	assert.Equal(t, "", Excerpt(""))

	// Rune-counted, not byte-counted.
	unicode := strings.Repeat("é", 120)
	assert.Equal(t, strings.Repeat("é", 100)+"...", Excerpt(unicode))
}

func TestNewArticleListItem(t *testing.T) {
	now := time.Now()
	article := Article{
		ID:          7,
		Title:       "Hello",
		Slug:        "hello",
		AuthorID:    3,
		Author:      User{ID: 3, Username: "ada"},
		Content:     strings.Repeat("x", 120),
		Status:      StatusPublished,
		PublishedAt: &now,
		Tags:        []Tag{{ID: 1, Name: "go"}, {ID: 2, Name: "web"}},
	}

	item := NewArticleListItem(&article)
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, uint(3), item.Author)
	assert.Equal(t, "ada", item.AuthorName)
	assert.Equal(t, strings.Repeat("x", 100)+"...", item.Excerpt)
	assert.Equal(t, 2, item.TagCount)
	assert.Equal(t, StatusPublished, item.Status)
}

func TestNewArticleResponseTags(t *testing.T) {
	article := Article{
		Author: User{Username: "ada"},
		Tags:   []Tag{{ID: 1, Name: "go", Slug: "go"}},
	}

	resp := NewArticleResponse(&article)
	assert.Equal(t, "ada", resp.AuthorName)
	assert.Equal(t, []TagResponse{{ID: 1, Name: "go", Slug: "go"}}, resp.Tags)

	// Tagless articles serialize an empty list, not null.
	resp = NewArticleResponse(&Article{})
	assert.NotNil(t, resp.Tags)
	assert.Len(t, resp.Tags, 0)
}
