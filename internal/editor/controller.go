// Package editor owns the post edit screen: loading a post by slug, holding
// the editable copy and submitting it back to the API.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/apiclient"
	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/model"
	"github.com/debemdeboas/devlog/internal/notify"
	"github.com/debemdeboas/devlog/internal/repository"
	"github.com/debemdeboas/devlog/internal/routes"
)

var (
	ErrNoPostID      = errors.New("no post id resolved")
	ErrRequiredField = errors.New("required field is empty")
	ErrBusy          = errors.New("submit already in flight")
	ErrStale         = errors.New("response superseded")
	ErrCategory      = errors.New("unknown category")
	ErrNoPost        = errors.New("repository returned no post")
)

// Navigator moves the author to another view.
type Navigator interface {
	Navigate(path string)
}

// Renderer is the markdown-to-HTML conversion handed to the editor.
type Renderer interface {
	Render(markdown []byte) []byte
}

// Fields are the editable parts of a post.
type Fields struct {
	Title       string
	ShortAns    string
	Description string
	Category    model.Category
}

type Snapshot struct {
	Fields

	State      State
	Slug       string
	PostID     model.PostID
	Submitting bool
}

type Controller struct {
	posts    repository.PostRepository
	notifier notify.Notifier
	nav      Navigator
	logger   zerolog.Logger

	mu     sync.Mutex
	state  State
	gen    uint64
	closed bool

	slug   string
	postID model.PostID
	fields Fields
}

func NewController(posts repository.PostRepository, notifier notify.Notifier, nav Navigator, logger zerolog.Logger) *Controller {
	return &Controller{
		posts:    posts,
		notifier: notifier,
		nav:      nav,
		logger:   logger,
		state:    StateIdle,
	}
}

// fire must be called with mu held.
func (c *Controller) fire(ev Event) error {
	to, err := transition(c.state, ev)
	if err != nil {
		return err
	}
	c.logger.Debug().Str("from", c.state.String()).Str("to", to.String()).Str("event", ev.String()).Msg("Editor transition")
	c.state = to
	return nil
}

// Load fetches the post behind slug into a fresh edit state. An empty slug
// is ignored. A fetch that finishes after a newer Load, or after Close, is
// dropped and reported as ErrStale.
func (c *Controller) Load(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrStale
	}
	if err := c.fire(EventIdentifierAvailable); err != nil {
		c.mu.Unlock()
		return err
	}
	c.gen++
	gen := c.gen
	c.slug = slug
	c.postID = ""
	c.fields = Fields{}
	c.mu.Unlock()

	post, fetchErr := c.posts.GetPostBySlug(ctx, slug)
	if fetchErr == nil && post == nil {
		fetchErr = ErrNoPost
	}

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug().Str("slug", slug).Msg("Dropping superseded fetch")
		return ErrStale
	}

	if fetchErr != nil {
		c.fire(EventFetchRejected)
		c.mu.Unlock()

		msg := apiclient.MessageOf(fetchErr)
		if msg == "" {
			msg = config.MsgServerError
		}
		c.logger.Warn().Err(fetchErr).Str("slug", slug).Msg("Loading post failed")
		c.nav.Navigate(routes.Dashboard)
		c.notifier.Notify(notify.Error, msg)
		return fmt.Errorf("loading post %q: %w", slug, fetchErr)
	}

	c.fire(EventFetchResolved)
	c.postID = post.ID
	c.fields = Fields{
		Title:       post.Title,
		ShortAns:    post.ShortAns,
		Description: post.Description,
		Category:    post.Category,
	}
	c.mu.Unlock()
	return nil
}

func (c *Controller) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Title = title
}

func (c *Controller) SetShortAns(shortAns string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.ShortAns = shortAns
}

// SetDescription stores the editor text verbatim.
func (c *Controller) SetDescription(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Description = text
}

func (c *Controller) SetCategory(category string) error {
	parsed, err := model.ParseCategory(category)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrCategory, category)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Category = parsed
	return nil
}

// Edit applies a whole form at once.
func (c *Controller) Edit(f Fields) error {
	if err := c.SetCategory(string(f.Category)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Title = f.Title
	c.fields.ShortAns = f.ShortAns
	c.fields.Description = f.Description
	return nil
}

func requiredField(f Fields) string {
	switch {
	case f.Title == "":
		return "Title"
	case f.ShortAns == "":
		return "Short answer"
	case f.Description == "":
		return "Description"
	}
	return ""
}

// Submit sends the current fields as one update of the loaded post.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrBusy
	}

	if c.postID == "" || c.state != StateLoaded {
		c.mu.Unlock()
		c.notifier.Notify(notify.Error, config.MsgCantEdit)
		return ErrNoPostID
	}

	if name := requiredField(c.fields); name != "" {
		c.mu.Unlock()
		c.notifier.Notify(notify.Error, fmt.Sprintf(config.MsgRequiredFieldFmt, name))
		return fmt.Errorf("%w: %s", ErrRequiredField, name)
	}

	if err := c.fire(EventSubmitClicked); err != nil {
		c.mu.Unlock()
		return err
	}
	gen := c.gen
	id := c.postID
	update := model.PostUpdate{
		Title:       c.fields.Title,
		ShortAns:    c.fields.ShortAns,
		Description: c.fields.Description,
		Category:    c.fields.Category,
	}
	c.mu.Unlock()

	updateErr := c.posts.UpdatePost(ctx, id, update)

	c.mu.Lock()
	if !c.closed && gen == c.gen && c.state == StateSubmitting {
		if updateErr != nil {
			c.fire(EventUpdateRejected)
		} else {
			c.fire(EventUpdateResolved)
		}
	}
	c.mu.Unlock()

	if updateErr != nil {
		msg := apiclient.MessageOf(updateErr)
		if msg == "" {
			msg = config.MsgEditFailed
		}
		c.logger.Warn().Err(updateErr).Str("post_id", string(id)).Msg("Updating post failed")
		c.notifier.Notify(notify.Error, msg)
		return updateErr
	}

	c.notifier.Notify(notify.Success, config.MsgEditSuccess)
	return nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Fields:     c.fields,
		State:      c.state,
		Slug:       c.slug,
		PostID:     c.postID,
		Submitting: c.state == StateSubmitting,
	}
}

// Close ends the edit screen. Responses still in flight are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
}
