package mock

import (
	"sync"

	"quillpress/app/models"
	"quillpress/app/repositories"

	"github.com/google/uuid"
)

type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex
}

type CommentRepository struct {
	comments map[string]*models.Comment
	order    []string
	mutex    sync.RWMutex
}

type AssetRepository struct {
	assets map[string]*models.Asset
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[string]*models.Comment),
	}
}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{
		assets: make(map[string]*models.Asset),
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	m.posts[post.ID] = post
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, id := range m.order {
		if post, exists := m.posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	m.comments[comment.ID] = comment
	m.order = append(m.order, comment.ID)
	return nil
}

func (m *CommentRepository) GetByID(id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *CommentRepository) ListByPost(blogID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, id := range m.order {
		if comment, exists := m.comments[id]; exists && comment.BlogID == blogID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, id := range m.order {
		if comment, exists := m.comments[id]; exists {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// AssetRepository implementation

func (m *AssetRepository) Put(asset *models.Asset) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if asset.ID == "" {
		asset.ID = repositories.AssetID(asset.Data)
	}
	m.assets[asset.ID] = asset
	return nil
}

func (m *AssetRepository) Get(id string) (*models.Asset, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	asset, exists := m.assets[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return asset, nil
}

func (m *AssetRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.assets[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.assets, id)
	return nil
}
