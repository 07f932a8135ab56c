package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/apiclient"
	"github.com/debemdeboas/devlog/internal/model"
)

var repoLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}

var ErrEmptyPost = errors.New("api returned no post")

type APIPostRepository struct { // implements PostRepository
	client *apiclient.Client
}

func NewAPIPostRepository(client *apiclient.Client) *APIPostRepository {
	return &APIPostRepository{client: client}
}

type postEnvelope struct {
	Data *model.Post `json:"data"`
}

func (r *APIPostRepository) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	res, err := r.client.Send(ctx, apiclient.Request{
		Path:   "/post/" + url.PathEscape(slug),
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching post %q: %w", slug, err)
	}

	var envelope postEnvelope
	if err := res.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("fetching post %q: %w", slug, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("fetching post %q: %w", slug, ErrEmptyPost)
	}

	post := envelope.Data
	if post.Slug == "" {
		post.Slug = slug
	}

	repoLogger.Debug().Str("slug", slug).Str("post_id", string(post.ID)).Msg("Post fetched")
	return post, nil
}

func (r *APIPostRepository) UpdatePost(ctx context.Context, id model.PostID, update model.PostUpdate) error {
	_, err := r.client.Send(ctx, apiclient.Request{
		Path:         "/post/" + url.PathEscape(string(id)),
		Method:       http.MethodPatch,
		Body:         update,
		Credentialed: true,
	})
	if err != nil {
		return fmt.Errorf("updating post %s: %w", id, err)
	}

	repoLogger.Info().Str("post_id", string(id)).Str("title", update.Title).Msg("Post updated")
	return nil
}
