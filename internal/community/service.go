package community

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCategory = errors.New("invalid post category")
	ErrCommentTooLong  = errors.New("comment exceeds max length")
	ErrEmptyContent    = errors.New("content is empty")
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

// Store is the persistence surface the service needs.
type Store interface {
	CreatePost(ctx context.Context, p *Post) (int64, error)
	ListPosts(ctx context.Context) ([]*Post, error)
	GetPost(ctx context.Context, id int64) (*PostDetail, error)
	DeletePost(ctx context.Context, id int64) error
	AddComment(ctx context.Context, postID int64, content string) (*Comment, error)
}

type Service struct {
	store    Store
	uploader Uploader
	log      *zap.SugaredLogger
}

func NewService(store Store, uploader Uploader, log *zap.SugaredLogger) *Service {
	return &Service{store: store, uploader: uploader, log: log}
}

type CreatePostInput struct {
	Title                string
	Content              string
	Category             string
	MyStoreCategory      *string
	PartnerStoreCategory *string
	Image                *multipart.FileHeader
}

func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, ErrEmptyContent
	}

	cat := strings.ToUpper(strings.TrimSpace(in.Category))
	if cat == "" {
		cat = CategoryGeneral
	}
	if cat != CategoryGeneral && cat != CategoryPartnership {
		return nil, ErrInvalidCategory
	}

	p := &Post{
		Title:    title,
		Content:  content,
		Category: cat,
	}
	if cat == CategoryPartnership {
		p.MyStoreCategory = in.MyStoreCategory
		p.PartnerStoreCategory = in.PartnerStoreCategory
	}

	if in.Image != nil && s.uploader != nil {
		key := fmt.Sprintf("posts/%s%s", uuid.NewString(), filepath.Ext(in.Image.Filename))
		url, err := s.uploader.Upload(ctx, key, in.Image)
		if err != nil {
			// The post is still worth keeping without its image.
			s.log.Warnw("post image upload failed", "error", err)
		} else {
			p.ImageURL = &url
		}
	}

	id, err := s.store.CreatePost(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) ListPosts(ctx context.Context) ([]*Post, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*Post{}
	}
	return posts, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (*PostDetail, error) {
	return s.store.GetPost(ctx, id)
}

func (s *Service) DeletePost(ctx context.Context, id int64) error {
	return s.store.DeletePost(ctx, id)
}

func (s *Service) AddComment(ctx context.Context, postID int64, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, ErrCommentTooLong
	}
	return s.store.AddComment(ctx, postID, content)
}
