package usecase

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/jinzhu/copier"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

const blogDateLayout = "Jan 2, 2006"

// HTML cru no conteúdo é escapado (WithUnsafe não é usado).
var postRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type BlogUseCase struct {
	Posts  BlogPostCollection
	Logger *zap.Logger
	Now    func() time.Time
}

func NewBlogUseCase(posts BlogPostCollection, logger *zap.Logger) *BlogUseCase {
	return &BlogUseCase{Posts: posts, Logger: orNop(logger), Now: time.Now}
}

func byPostSlug(slug string) func(entity.BlogPost) bool {
	return func(p entity.BlogPost) bool { return p.Slug == slug }
}

func (uc *BlogUseCase) List(ctx context.Context, q BlogQuery) []entity.BlogPost {
	return FilterBlogPosts(uc.Posts.Snapshot(ctx), q)
}

func (uc *BlogUseCase) Categories(ctx context.Context) []string {
	return BlogCategories(uc.Posts.Snapshot(ctx))
}

func (uc *BlogUseCase) Get(ctx context.Context, slug string) (entity.BlogPost, error) {
	p, ok := Find(uc.Posts.Snapshot(ctx), byPostSlug(slug))
	if !ok {
		return entity.BlogPost{}, storeFailure(uc.Logger, "get_post", slug, entity.ErrPostNotFound, entity.ErrPostNotFound)
	}
	return p, nil
}

// Save segue a mesma regra dos serviços: slug existente substitui, sem slug
// cria no topo da lista (mais recente primeiro).
func (uc *BlogUseCase) Save(ctx context.Context, input SaveBlogPostInput) (entity.BlogPost, error) {
	if errs := ValidateSaveBlogPostInput(input); len(errs) > 0 {
		return entity.BlogPost{}, validationFailed(errs)
	}

	var post entity.BlogPost
	if err := copier.Copy(&post, &input); err != nil {
		return entity.BlogPost{}, &TechnicalError{Code: CodeStoreError, Message: "copy post input: " + err.Error(), Err: err}
	}
	uc.applyDefaults(&post)

	op := "update_post"
	err := uc.Posts.Apply(ctx, func(current []entity.BlogPost) ([]entity.BlogPost, error) {
		if input.Slug != "" {
			i := IndexOf(current, byPostSlug(input.Slug))
			if i < 0 {
				return nil, entity.ErrPostNotFound
			}
			return ReplaceAt(current, i, post), nil
		}
		op = "create_post"
		post.Slug = UniqueKey(entity.Slugify(post.Title), func(k string) bool {
			return IndexOf(current, byPostSlug(k)) >= 0
		})
		return Prepend(current, post), nil
	})
	if err != nil {
		return entity.BlogPost{}, storeFailure(uc.Logger, op, input.Slug, err, entity.ErrPostNotFound)
	}

	uc.Logger.Info("blog post saved", zap.String("op", op), zap.String("slug", post.Slug))
	return post, nil
}

func (uc *BlogUseCase) Delete(ctx context.Context, slug string) error {
	err := uc.Posts.Apply(ctx, func(current []entity.BlogPost) ([]entity.BlogPost, error) {
		i := IndexOf(current, byPostSlug(slug))
		if i < 0 {
			return nil, entity.ErrPostNotFound
		}
		return RemoveAt(current, i), nil
	})
	if err != nil {
		return storeFailure(uc.Logger, "delete_post", slug, err, entity.ErrPostNotFound)
	}
	uc.Logger.Info("blog post deleted", zap.String("slug", slug))
	return nil
}

// RenderContent converte os parágrafos do post em HTML.
func RenderContent(post entity.BlogPost) (string, error) {
	var buf bytes.Buffer
	source := strings.Join(post.Paragraphs(), "\n\n")
	if err := postRenderer.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (uc *BlogUseCase) applyDefaults(p *entity.BlogPost) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Date == "" {
		p.Date = uc.Now().Format(blogDateLayout)
	}
	if p.Category == "" {
		p.Category = entity.DefaultPostCategory
	}
	if p.Image == "" {
		p.Image = entity.DefaultPostImage
	}
	if p.Author == "" {
		p.Author = entity.DefaultPostAuthor
	}
	if p.ReadTime == "" {
		p.ReadTime = entity.DefaultPostReadTime
	}
}
