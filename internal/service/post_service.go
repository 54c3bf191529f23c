package service

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/model"
	"Lighthouse/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostService interface {
	CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPosts(ctx context.Context) ([]*dto.PostDTO, error)
	ViewPost(ctx context.Context, postID string, clientIP, userAgent string) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, postID string, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, postID string) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	storage  ObjectStorage
	registry UploadRegistry
	resolver OriginResolver
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepo, storage ObjectStorage, registry UploadRegistry, resolver OriginResolver) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		storage:  storage,
		registry: registry,
		resolver: resolver,
		now:      time.Now,
	}
}

// CreatePost 编号为当前最大编号加一
func (s *postServiceImpl) CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	latest, err := s.postRepo.GetLatestNumber(ctx)
	if err != nil {
		return nil, upstream("find latest post number", err)
	}

	now := s.now()
	post := &model.Post{
		Number:    latest + 1,
		Title:     postDTO.Title,
		Content:   postDTO.Content,
		FileURL:   normalizeURLs(postDTO.FileURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, upstream("create post", err)
	}

	s.claimUploads(ctx, post.FileURL)
	return toPostDTO(post)
}

func (s *postServiceImpl) GetPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPosts(ctx)
	if err != nil {
		return nil, upstream("list posts", err)
	}
	res := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		res = append(res, postDTO)
	}
	return res, nil
}

// ViewPost 查询详情并按浏览去重策略计数
func (s *postServiceImpl) ViewPost(ctx context.Context, postID string, clientIP, userAgent string) (*dto.PostDTO, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	origin := s.resolver.ResolveOr(ctx, clientIP)
	entry, counted := post.RegisterView(origin, userAgent, s.now())
	if counted {
		matched, err := s.postRepo.AppendView(ctx, post.ID, entry)
		if err != nil {
			return nil, upstream("save post view", err)
		}
		if !matched {
			return nil, ErrPostNotFound
		}
	}

	return toPostDTO(post)
}

// UpdatePost 落库后删除不再引用的附件
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID string, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	oldURLs := post.FileURL
	post.Title = postDTO.Title
	post.Content = postDTO.Content
	post.FileURL = normalizeURLs(postDTO.FileURL)
	post.UpdatedAt = s.now()

	matched, err := s.postRepo.UpdatePost(ctx, post)
	if err != nil {
		return nil, upstream("update post", err)
	}
	if !matched {
		return nil, ErrPostNotFound
	}

	s.deleteObjects(ctx, removedURLs(oldURLs, post.FileURL))
	s.claimUploads(ctx, post.FileURL)
	return toPostDTO(post)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, postID string) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	deleted, err := s.postRepo.DeletePost(ctx, post.ID)
	if err != nil {
		return upstream("delete post", err)
	}
	if !deleted {
		return ErrPostNotFound
	}

	s.deleteObjects(ctx, post.FileURL)
	return nil
}

func (s *postServiceImpl) findPost(ctx context.Context, postID string) (*model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.GetPostByID(ctx, oid)
	if err != nil {
		return nil, upstream("find post", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// deleteObjects 尽力删除，失败只记录日志
func (s *postServiceImpl) deleteObjects(ctx context.Context, urls []string) {
	for _, u := range urls {
		key, ok := s.storage.ObjectKey(u)
		if !ok {
			log.WarnContext(ctx, "skip deleting foreign object url", "url", u)
			continue
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			log.ErrorContext(ctx, "failed to delete post object", "key", key, "err", err)
		}
	}
}

// claimUploads 被帖子引用的上传不再属于临时文件
func (s *postServiceImpl) claimUploads(ctx context.Context, urls []string) {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		if key, ok := s.storage.ObjectKey(u); ok {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := s.registry.Claim(ctx, keys...); err != nil {
		log.WarnContext(ctx, "failed to claim uploads", "keys", keys, "err", err)
	}
}

func normalizeURLs(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}

// removedURLs old 中存在而 current 中不存在的地址
func removedURLs(old, current []string) []string {
	keep := make(map[string]struct{}, len(current))
	for _, u := range current {
		keep[u] = struct{}{}
	}
	removed := make([]string, 0)
	for _, u := range old {
		if _, ok := keep[u]; !ok {
			removed = append(removed, u)
		}
	}
	return removed
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	postDTO := &dto.PostDTO{}
	if err := copier.Copy(postDTO, post); err != nil {
		return nil, err
	}
	postDTO.ID = post.ID.Hex()
	return postDTO, nil
}
