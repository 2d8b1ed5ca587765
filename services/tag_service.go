package services

import (
	"errors"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags(params models.TagListParams) ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	UpdateTag(id uint, req models.UpdateTagRequest) (*models.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	if err := s.checkNameAvailable(req.Name, 0); err != nil {
		return nil, err
	}

	slug, err := s.deriveSlug(req.Name, 0)
	if err != nil {
		return nil, err
	}

	tag := &models.Tag{Name: req.Name, Slug: slug}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetTags(params models.TagListParams) ([]models.Tag, error) {
	return s.tagRepo.GetAll(params)
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Tag not found."}
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) UpdateTag(id uint, req models.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.GetTag(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != tag.Name {
		if err := s.checkNameAvailable(*req.Name, tag.ID); err != nil {
			return nil, err
		}
		slug, err := s.deriveSlug(*req.Name, tag.ID)
		if err != nil {
			return nil, err
		}
		tag.Name = *req.Name
		tag.Slug = slug
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) DeleteTag(id uint) error {
	tag, err := s.GetTag(id)
	if err != nil {
		return err
	}
	return s.tagRepo.Delete(tag)
}

func (s *tagService) checkNameAvailable(name string, selfID uint) error {
	existing, err := s.tagRepo.GetByName(name)
	if err == nil {
		if existing.ID == selfID {
			return nil
		}
		return models.ErrorValidation{Message: "A tag with this name already exists."}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// deriveSlug slugifies the name without a suffix loop. Distinct names
// that collapse to the same token are rejected rather than suffixed.
func (s *tagService) deriveSlug(name string, selfID uint) (string, error) {
	slug := helper.Slugify(name)
	if slug == "" {
		return "", models.ErrorValidation{Message: "Tag name does not produce a valid slug."}
	}

	existing, err := s.tagRepo.GetBySlug(slug)
	if err == nil {
		if existing.ID == selfID {
			return slug, nil
		}
		return "", models.ErrorValidation{Message: "A tag with this slug already exists."}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return slug, nil
}
