package repository

import (
	"context"

	"github.com/debemdeboas/devlog/internal/model"
)

type PostRepository interface {
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	UpdatePost(ctx context.Context, id model.PostID, update model.PostUpdate) error
}
