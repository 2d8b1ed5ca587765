package services

import (
	"testing"

	"blog-api/config"
	"blog-api/models"
	"blog-api/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	articles    ArticleService
	tags        TagService
	articleRepo repositories.ArticleRepository
	author      models.User
	other       models.User
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		suite.T().Fatal("Failed to get test database handle:", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("Failed to migrate test database:", err)
	}

	suite.db = db
	suite.articleRepo = repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	suite.articles = NewArticleService(suite.articleRepo, tagRepo)
	suite.tags = NewTagService(tagRepo)

	suite.author = models.User{Username: "author", Email: "author@example.com", Password: "x"}
	suite.other = models.User{Username: "other", Email: "other@example.com", Password: "x"}
	suite.NoError(db.Create(&suite.author).Error)
	suite.NoError(db.Create(&suite.other).Error)
}

func (suite *ArticleServiceTestSuite) createTag(name string) *models.Tag {
	tag, err := suite.tags.CreateTag(models.CreateTagRequest{Name: name})
	suite.Require().NoError(err)
	return tag
}

func (suite *ArticleServiceTestSuite) createArticle(title string, tagIDs ...uint) *models.Article {
	article, err := suite.articles.CreateArticle(models.CreateArticleRequest{
		Title:   title,
		Content: "body of " + title,
		TagIDs:  tagIDs,
	}, suite.author.ID)
	suite.Require().NoError(err)
	return article
}

func (suite *ArticleServiceTestSuite) TestCreateAssignsUniqueSlug() {
	first := suite.createArticle("My First Post")
	second := suite.createArticle("My First Post")
	third := suite.createArticle("My First Post")

	suite.Equal("my-first-post", first.Slug)
	suite.Equal("my-first-post-1", second.Slug)
	suite.Equal("my-first-post-2", third.Slug)
}

func (suite *ArticleServiceTestSuite) TestCreateSetsAuthorAndDraftStatus() {
	article := suite.createArticle("Hello")

	suite.Equal(suite.author.ID, article.AuthorID)
	suite.Equal("author", article.Author.Username)
	suite.Equal(models.StatusDraft, article.Status)
	suite.Nil(article.PublishedAt)
}

func (suite *ArticleServiceTestSuite) TestCreateSkipsUnknownTagIDs() {
	golang := suite.createTag("go")
	web := suite.createTag("web")

	article := suite.createArticle("Tagged", golang.ID, 999, web.ID, golang.ID)

	names := []string{}
	for _, tag := range article.Tags {
		names = append(names, tag.Name)
	}
	suite.ElementsMatch([]string{"go", "web"}, names)
}

func (suite *ArticleServiceTestSuite) TestUpdateTagListSemantics() {
	golang := suite.createTag("go")
	web := suite.createTag("web")
	article := suite.createArticle("Tagged", golang.ID)

	// Omitted list leaves tags untouched.
	title := "Renamed"
	updated, err := suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{
		Title: &title,
	}, suite.author.ID)
	suite.NoError(err)
	suite.Equal("Renamed", updated.Title)
	suite.Len(updated.Tags, 1)

	// A supplied list wholesale-replaces the associations.
	newTags := []uint{web.ID}
	updated, err = suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{
		TagIDs: &newTags,
	}, suite.author.ID)
	suite.NoError(err)
	suite.Len(updated.Tags, 1)
	suite.Equal("web", updated.Tags[0].Name)

	// Unknown ids in the list are silently skipped.
	missing := []uint{999}
	updated, err = suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{
		TagIDs: &missing,
	}, suite.author.ID)
	suite.NoError(err)
	suite.Len(updated.Tags, 0)

	// An explicitly empty list clears everything.
	again := []uint{golang.ID, web.ID}
	_, err = suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{TagIDs: &again}, suite.author.ID)
	suite.NoError(err)
	empty := []uint{}
	updated, err = suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{TagIDs: &empty}, suite.author.ID)
	suite.NoError(err)
	suite.Len(updated.Tags, 0)
}

func (suite *ArticleServiceTestSuite) TestUpdateSlugIsStable() {
	article := suite.createArticle("Original Title")

	title := "Completely Different"
	updated, err := suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{Title: &title}, suite.author.ID)
	suite.NoError(err)
	suite.Equal("original-title", updated.Slug)
}

func (suite *ArticleServiceTestSuite) TestUpdateByNonAuthorForbidden() {
	article := suite.createArticle("Mine")

	title := "Hijacked"
	_, err := suite.articles.UpdateArticle(article.Slug, models.UpdateArticleRequest{Title: &title}, suite.other.ID)
	suite.IsType(models.ErrorForbidden{}, err)
}

func (suite *ArticleServiceTestSuite) TestPublishAndUnpublish() {
	article := suite.createArticle("Lifecycle")

	published, err := suite.articles.PublishArticle(article.Slug, suite.author.ID)
	suite.NoError(err)
	suite.Equal(models.StatusPublished, published.Status)
	suite.NotNil(published.PublishedAt)

	// Idempotent: republishing refreshes the timestamp.
	first := *published.PublishedAt
	republished, err := suite.articles.PublishArticle(article.Slug, suite.author.ID)
	suite.NoError(err)
	suite.Equal(models.StatusPublished, republished.Status)
	suite.False(republished.PublishedAt.Before(first))

	draft, err := suite.articles.UnpublishArticle(article.Slug, suite.author.ID)
	suite.NoError(err)
	suite.Equal(models.StatusDraft, draft.Status)
	suite.Nil(draft.PublishedAt)
}

func (suite *ArticleServiceTestSuite) TestPublishByNonAuthorForbidden() {
	article := suite.createArticle("Mine")

	_, err := suite.articles.PublishArticle(article.Slug, suite.other.ID)
	suite.IsType(models.ErrorForbidden{}, err)

	_, err = suite.articles.UnpublishArticle(article.Slug, suite.other.ID)
	suite.IsType(models.ErrorForbidden{}, err)
}

func (suite *ArticleServiceTestSuite) TestAnonymousVisibility() {
	draft := suite.createArticle("Draft Post")
	published := suite.createArticle("Published Post")
	_, err := suite.articles.PublishArticle(published.Slug, suite.author.ID)
	suite.Require().NoError(err)

	// Anonymous listings exclude drafts.
	articles, err := suite.articles.GetArticles(models.ArticleListParams{}, false)
	suite.NoError(err)
	suite.Len(articles, 1)
	suite.Equal("published-post", articles[0].Slug)

	// Authenticated listings include both.
	articles, err = suite.articles.GetArticles(models.ArticleListParams{}, true)
	suite.NoError(err)
	suite.Len(articles, 2)

	// Anonymous retrieval of a draft is a NotFound, not a Forbidden.
	_, err = suite.articles.GetArticle(draft.Slug, false)
	suite.IsType(models.ErrorNotFound{}, err)

	retrieved, err := suite.articles.GetArticle(draft.Slug, true)
	suite.NoError(err)
	suite.Equal(draft.ID, retrieved.ID)
}

func (suite *ArticleServiceTestSuite) TestListTagFilterUnionDeduplicated() {
	golang := suite.createTag("go")
	web := suite.createTag("web")

	both := suite.createArticle("Both Tags", golang.ID, web.ID)
	onlyGo := suite.createArticle("Only Go", golang.ID)
	suite.createArticle("Untagged")

	articles, err := suite.articles.GetArticles(models.ArticleListParams{Tags: "go,web"}, true)
	suite.NoError(err)

	slugs := []string{}
	for _, a := range articles {
		slugs = append(slugs, a.Slug)
	}
	suite.ElementsMatch([]string{both.Slug, onlyGo.Slug}, slugs)
}

func (suite *ArticleServiceTestSuite) TestListSearchAndOrdering() {
	suite.createArticle("Alpha post about gophers")
	suite.createArticle("Beta post about snakes")

	articles, err := suite.articles.GetArticles(models.ArticleListParams{Search: "gophers"}, true)
	suite.NoError(err)
	suite.Len(articles, 1)
	suite.Equal("Alpha post about gophers", articles[0].Title)

	articles, err = suite.articles.GetArticles(models.ArticleListParams{Ordering: "created_at"}, true)
	suite.NoError(err)
	suite.Require().Len(articles, 2)
	suite.Equal("alpha-post-about-gophers", articles[0].Slug)
}

func (suite *ArticleServiceTestSuite) TestPublishedListing() {
	suite.createArticle("Draft Only")
	published := suite.createArticle("Live")
	_, err := suite.articles.PublishArticle(published.Slug, suite.author.ID)
	suite.Require().NoError(err)

	articles, err := suite.articles.GetPublishedArticles(models.ArticleListParams{}, true)
	suite.NoError(err)
	suite.Len(articles, 1)
	suite.Equal("live", articles[0].Slug)
}

func (suite *ArticleServiceTestSuite) TestDeleteCascadesToAssociations() {
	golang := suite.createTag("go")
	article := suite.createArticle("Doomed", golang.ID)

	suite.NoError(suite.articles.DeleteArticle(article.Slug, suite.author.ID))

	_, err := suite.articles.GetArticle(article.Slug, true)
	suite.IsType(models.ErrorNotFound{}, err)

	var joinCount int64
	suite.NoError(suite.db.Model(&models.ArticleTag{}).Where("article_id = ?", article.ID).Count(&joinCount).Error)
	suite.Equal(int64(0), joinCount)

	// The tag itself is referenced, not owned; it survives.
	_, err = suite.tags.GetTag(golang.ID)
	suite.NoError(err)
}

func (suite *ArticleServiceTestSuite) TestDeleteByNonAuthorForbidden() {
	article := suite.createArticle("Mine")
	err := suite.articles.DeleteArticle(article.Slug, suite.other.ID)
	suite.IsType(models.ErrorForbidden{}, err)
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
