package handlers

import (
	"net/http"
	"strconv"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewTagResponse(tag))
}

func (h *TagHandler) GetTags(c *gin.Context) {
	var params models.TagListParams
	if !h.Helper.BindQueryAndValidate(c, &params) {
		return
	}

	tags, err := h.tagService.GetTags(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponses(tags))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := h.tagID(c)
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponse(tag))
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := h.tagID(c)
	if !ok {
		return
	}

	var req models.UpdateTagRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	tag, err := h.tagService.UpdateTag(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTagResponse(tag))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := h.tagID(c)
	if !ok {
		return
	}

	if err := h.tagService.DeleteTag(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) tagID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid tag ID.")
		return 0, false
	}
	return uint(id), true
}
