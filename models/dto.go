package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=225"`
	Content string `json:"content" validate:"required"`
	TagIDs  []uint `json:"tag_ids"`
}

// UpdateArticleRequest is a typed partial update: nil means the field
// was omitted and stays untouched. A non-nil empty TagIDs clears all
// tag associations.
type UpdateArticleRequest struct {
	Title   *string        `json:"title" validate:"omitempty,min=1,max=225"`
	Content *string        `json:"content"`
	Status  *ArticleStatus `json:"status" validate:"omitempty,oneof=draft published"`
	TagIDs  *[]uint        `json:"tag_ids"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateTagRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type ArticleListParams struct {
	Status   string `form:"status" validate:"omitempty,oneof=draft published"`
	Author   uint   `form:"author"`
	Tags     string `form:"tags"`
	Search   string `form:"search"`
	Ordering string `form:"ordering" validate:"omitempty,oneof=created_at -created_at updated_at -updated_at published_at -published_at"`
}

type TagListParams struct {
	Search string `form:"search"`
}
