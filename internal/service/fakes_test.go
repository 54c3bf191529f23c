package service

import (
	"Lighthouse/internal/api/dto"
	"Lighthouse/internal/model"
	"Lighthouse/internal/pkg/minio"
	"Lighthouse/internal/repository"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// users

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]model.User
	failFind bool
	failSave bool
	saves    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]model.User)}
}

func (r *fakeUserRepo) put(u *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID] = *u
}

func (r *fakeUserRepo) get(id primitive.ObjectID) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id]
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFind {
		return nil, errStore
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFind {
		return nil, errStore
	}
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errStore
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdateSecurityState(_ context.Context, id primitive.ObjectID, expected, next model.SecurityState, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return false, errStore
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if u.IsLoggedIn != expected.IsLoggedIn || u.IsActive != expected.IsActive || u.FailedLoginAttempts != expected.FailedLoginAttempts {
		return false, nil
	}
	ip := u.IPAddress
	u.SecurityState = next
	if next.IPAddress == "" {
		u.IPAddress = ip
	}
	u.UpdatedAt = now
	r.users[id] = u
	r.saves++
	return true, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return false, errStore
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// posts

type fakePostRepo struct {
	mu       sync.Mutex
	posts    map[primitive.ObjectID]model.Post
	failSave bool
	appends  int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]model.Post)}
}

func (r *fakePostRepo) put(p *model.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.posts[p.ID] = *p
}

func (r *fakePostRepo) get(id primitive.ObjectID) model.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.posts[id]
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errStore
	}
	post.ID = primitive.NewObjectID()
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) GetLatestNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest int64
	for _, p := range r.posts {
		if p.Number > latest {
			latest = p.Number
		}
	}
	return latest, nil
}

func (r *fakePostRepo) GetPosts(_ context.Context) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]*model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		post := p
		posts = append(posts, &post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	p.ViewLogs = append([]model.ViewLog(nil), p.ViewLogs...)
	return &p, nil
}

func (r *fakePostRepo) AppendView(_ context.Context, id primitive.ObjectID, view model.ViewLog) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return false, errStore
	}
	p, ok := r.posts[id]
	if !ok {
		return false, nil
	}
	p.Views++
	p.ViewLogs = append(p.ViewLogs, view)
	r.posts[id] = p
	r.appends++
	return true, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return false, errStore
	}
	p, ok := r.posts[post.ID]
	if !ok {
		return false, nil
	}
	p.Title, p.Content, p.FileURL, p.UpdatedAt = post.Title, post.Content, post.FileURL, post.UpdatedAt
	r.posts[post.ID] = p
	return true, nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return false, errStore
	}
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

// contacts

type fakeContactRepo struct {
	contacts map[primitive.ObjectID]model.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[primitive.ObjectID]model.Contact)}
}

func (r *fakeContactRepo) CreateContact(_ context.Context, contact *model.Contact) error {
	contact.ID = primitive.NewObjectID()
	r.contacts[contact.ID] = *contact
	return nil
}

func (r *fakeContactRepo) GetContacts(_ context.Context) ([]*model.Contact, error) {
	out := make([]*model.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contact := c
		out = append(out, &contact)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeContactRepo) GetContactByID(_ context.Context, id primitive.ObjectID) (*model.Contact, error) {
	c, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeContactRepo) UpdateContactStatus(_ context.Context, id primitive.ObjectID, status string, now time.Time) (*model.Contact, error) {
	c, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	c.UpdatedAt = now
	r.contacts[id] = c
	return &c, nil
}

func (r *fakeContactRepo) DeleteContact(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.contacts[id]; !ok {
		return false, nil
	}
	delete(r.contacts, id)
	return true, nil
}

// infrastructure

type fakeResolver struct {
	ip string
}

func (r *fakeResolver) ResolveOr(_ context.Context, fallback string) string {
	if r.ip == "" {
		return fallback
	}
	return r.ip
}

type fakeRevoker struct {
	revoked map[string]time.Duration
	fail    bool
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (r *fakeRevoker) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	if r.fail {
		return errStore
	}
	r.revoked[signature] = ttl
	return nil
}

func (r *fakeRevoker) IsRevoked(_ context.Context, signature string) (bool, error) {
	if r.fail {
		return false, errStore
	}
	_, ok := r.revoked[signature]
	return ok, nil
}

const fakeBaseURL = "https://assets.example.org"

type fakeStorage struct {
	objects    map[string]minio.UploadOptions
	deleted    []string
	failUpload bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]minio.UploadOptions)}
}

func (s *fakeStorage) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, opts minio.UploadOptions) (string, error) {
	if s.failUpload {
		return "", errStore
	}
	if _, err := io.ReadAll(reader); err != nil {
		return "", err
	}
	s.objects[objectName] = opts
	return minio.BuildPublicURL(fakeBaseURL, objectName), nil
}

func (s *fakeStorage) Delete(_ context.Context, objectName string) error {
	delete(s.objects, objectName)
	s.deleted = append(s.deleted, objectName)
	return nil
}

func (s *fakeStorage) ObjectKey(rawURL string) (string, bool) {
	return minio.ExtractObjectKey(fakeBaseURL, rawURL)
}

type fakeRegistry struct {
	pending map[string]dto.MediaTempMetadata
	claimed []string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{pending: make(map[string]dto.MediaTempMetadata)}
}

func (r *fakeRegistry) Register(_ context.Context, key string, meta dto.MediaTempMetadata) error {
	r.pending[key] = meta
	return nil
}

func (r *fakeRegistry) Claim(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(r.pending, k)
		r.claimed = append(r.claimed, k)
	}
	return nil
}

func (r *fakeRegistry) Pending(_ context.Context) (map[string]dto.MediaTempMetadata, error) {
	out := make(map[string]dto.MediaTempMetadata, len(r.pending))
	for k, v := range r.pending {
		out[k] = v
	}
	return out, nil
}

func assetURL(key string) string {
	return fakeBaseURL + "/" + strings.TrimPrefix(key, "/")
}
