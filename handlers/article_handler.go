package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID := currentUserID(c)

	var req models.CreateArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.CreateArticle(req, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewArticleResponse(article))
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if !h.Helper.BindQueryAndValidate(c, &params) {
		return
	}

	articles, err := h.articleService.GetArticles(params, isAuthenticated(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewArticleListItems(articles))
}

func (h *ArticleHandler) GetPublishedArticles(c *gin.Context) {
	var params models.ArticleListParams
	if !h.Helper.BindQueryAndValidate(c, &params) {
		return
	}

	articles, err := h.articleService.GetPublishedArticles(params, isAuthenticated(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewArticleListItems(articles))
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Param("slug"), isAuthenticated(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewArticleResponse(article))
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID := currentUserID(c)

	var req models.UpdateArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.UpdateArticle(c.Param("slug"), req, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewArticleResponse(article))
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.articleService.DeleteArticle(c.Param("slug"), userID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	userID := currentUserID(c)

	article, err := h.articleService.PublishArticle(c.Param("slug"), userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewArticleResponse(article))
}

func (h *ArticleHandler) UnpublishArticle(c *gin.Context) {
	userID := currentUserID(c)

	article, err := h.articleService.UnpublishArticle(c.Param("slug"), userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewArticleResponse(article))
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	id, _ := userID.(uint)
	return id
}

func isAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("user_id")
	return exists
}
