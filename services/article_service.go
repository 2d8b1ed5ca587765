package services

import (
	"errors"
	"fmt"
	"time"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams, authenticated bool) ([]models.Article, error)
	GetPublishedArticles(params models.ArticleListParams, authenticated bool) ([]models.Article, error)
	GetArticle(slug string, authenticated bool) (*models.Article, error)
	UpdateArticle(slug string, req models.UpdateArticleRequest, userID uint) (*models.Article, error)
	DeleteArticle(slug string, userID uint) error
	PublishArticle(slug string, userID uint) (*models.Article, error)
	UnpublishArticle(slug string, userID uint) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, tagRepo repositories.TagRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error) {
	slug, err := s.uniqueSlug(req.Title)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:    req.Title,
		Slug:     slug,
		AuthorID: userID,
		Content:  req.Content,
		Status:   models.StatusDraft,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	if err := s.attachTags(article.ID, req.TagIDs); err != nil {
		return nil, err
	}

	return s.articleRepo.GetBySlug(article.Slug)
}

func (s *articleService) GetArticles(params models.ArticleListParams, authenticated bool) ([]models.Article, error) {
	return s.articleRepo.GetList(params, authenticated)
}

func (s *articleService) GetPublishedArticles(params models.ArticleListParams, authenticated bool) ([]models.Article, error) {
	params.Status = string(models.StatusPublished)
	return s.articleRepo.GetList(params, authenticated)
}

func (s *articleService) GetArticle(slug string, authenticated bool) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found."}
		}
		return nil, err
	}

	// Drafts are invisible to anonymous callers.
	if !authenticated && article.Status != models.StatusPublished {
		return nil, models.ErrorNotFound{Message: "Article not found."}
	}

	return article, nil
}

func (s *articleService) UpdateArticle(slug string, req models.UpdateArticleRequest, userID uint) (*models.Article, error) {
	article, err := s.getOwnedArticle(slug, userID, "edit")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Status != nil && *req.Status != article.Status {
		article.Status = *req.Status
		if article.Status == models.StatusPublished {
			now := time.Now()
			article.PublishedAt = &now
		} else {
			article.PublishedAt = nil
		}
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		if err := s.articleRepo.ClearTags(article.ID); err != nil {
			return nil, err
		}
		if err := s.attachTags(article.ID, *req.TagIDs); err != nil {
			return nil, err
		}
	}

	return s.articleRepo.GetBySlug(article.Slug)
}

func (s *articleService) DeleteArticle(slug string, userID uint) error {
	article, err := s.getOwnedArticle(slug, userID, "delete")
	if err != nil {
		return err
	}
	return s.articleRepo.Delete(article)
}

func (s *articleService) PublishArticle(slug string, userID uint) (*models.Article, error) {
	article, err := s.getOwnedArticle(slug, userID, "publish")
	if err != nil {
		return nil, err
	}

	// Idempotent: republishing only refreshes the timestamp.
	article.Status = models.StatusPublished
	now := time.Now()
	article.PublishedAt = &now

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) UnpublishArticle(slug string, userID uint) (*models.Article, error) {
	article, err := s.getOwnedArticle(slug, userID, "unpublish")
	if err != nil {
		return nil, err
	}

	article.Status = models.StatusDraft
	article.PublishedAt = nil

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) getOwnedArticle(slug string, userID uint, action string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found."}
		}
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, models.ErrorForbidden{
			Message: fmt.Sprintf("You do not have permission to %s this article.", action),
		}
	}

	return article, nil
}

// uniqueSlug derives a slug from the title, suffixing -1, -2, ... until
// no existing article claims it. The check and the later insert are not
// atomic; concurrent creations racing to the same slug are caught by
// the unique index, not here.
func (s *articleService) uniqueSlug(title string) (string, error) {
	base := helper.Slugify(title)
	if base == "" {
		base = "article"
	}

	slug := base
	for count := 1; ; count++ {
		exists, err := s.articleRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, count)
	}
}

// attachTags resolves each tag id and records the association. Unknown
// ids are silently skipped; duplicates in the list are collapsed.
func (s *articleService) attachTags(articleID uint, tagIDs []uint) error {
	seen := make(map[uint]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true

		if _, err := s.tagRepo.GetByID(tagID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		if err := s.articleRepo.AddTag(articleID, tagID); err != nil {
			return err
		}
	}
	return nil
}
