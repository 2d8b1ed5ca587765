package repositories

import (
	"strings"

	"blog-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetBySlug(slug string) (*models.Article, error)
	SlugExists(slug string) (bool, error)
	GetList(params models.ArticleListParams, authenticated bool) ([]models.Article, error)
	Update(article *models.Article) error
	Delete(article *models.Article) error
	AddTag(articleID, tagID uint) error
	ClearTags(articleID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Omit("Tags", "Author").Create(article).Error
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Tags").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// GetList applies the visibility rule plus the optional status, author,
// tag-name, search and ordering filters. Rows matched through several
// tags are de-duplicated.
func (r *articleRepository) GetList(params models.ArticleListParams, authenticated bool) ([]models.Article, error) {
	var articles []models.Article

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Tags")

	if !authenticated {
		query = query.Where("articles.status = ?", models.StatusPublished)
	}

	if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}

	if params.Author > 0 {
		query = query.Where("articles.author_id = ?", params.Author)
	}

	if names := splitTagNames(params.Tags); len(names) > 0 {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name IN ?", names).
			Distinct("articles.*")
	}

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("articles.title LIKE ? OR articles.content LIKE ?", like, like)
	}

	query = query.Order(orderClause(params.Ordering))

	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Omit("Tags", "Author").Save(article).Error
}

// Delete removes the article together with its tag associations.
func (r *articleRepository) Delete(article *models.Article) error {
	if err := r.ClearTags(article.ID); err != nil {
		return err
	}
	return r.db.Delete(article).Error
}

func (r *articleRepository) AddTag(articleID, tagID uint) error {
	return r.db.Create(&models.ArticleTag{ArticleID: articleID, TagID: tagID}).Error
}

func (r *articleRepository) ClearTags(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error
}

func splitTagNames(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func orderClause(ordering string) string {
	column := strings.TrimPrefix(ordering, "-")
	switch column {
	case "created_at", "updated_at", "published_at":
	default:
		return "articles.created_at desc"
	}
	if strings.HasPrefix(ordering, "-") {
		return "articles." + column + " desc"
	}
	return "articles." + column
}
