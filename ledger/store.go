// Package ledger 持有当前账本快照，串行化所有修改并在每次变化后持久化。
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cantina/logger"
	"cantina/models"
	"cantina/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrPersist 内存状态已更新，但写入存储失败
var ErrPersist = errors.New("persist snapshot")

// Option 配置 Store
type Option func(*Store)

// WithLogger 注入日志
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock 注入时钟，测试中固定 createdAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator 注入 id 生成器
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store 账本状态。读者拿到的快照不会再被修改，写者之间由互斥锁串行化。
type Store struct {
	adapter storage.Adapter
	log     logrus.FieldLogger
	now     func() time.Time
	newID   func() string

	writeMu sync.Mutex
	mu      sync.RWMutex
	snap    models.Snapshot
	// dirty 为 true 表示内存快照有变化尚未写入存储
	dirty bool
}

// New 创建 Store，初始快照为默认数据，启动时再调用 Load 替换
func New(adapter storage.Adapter, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		log:     logger.Discard(),
		now:     time.Now,
		newID:   uuid.NewString,
		snap:    models.DefaultSnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load 整体替换内存中的快照，不写存储
func (s *Store) Load(snap models.Snapshot) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.swap(snap.Clone())
	s.dirty = false
}

// Snapshot 当前快照
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// CategoryByID 在当前快照中查找类别
func (s *Store) CategoryByID(id string) (models.Category, bool) {
	return s.Snapshot().CategoryByID(id)
}

// AddTransaction 生成 id 与创建时间后追加到对应列表
func (s *Store) AddTransaction(ctx context.Context, kind models.Kind, in models.TransactionInput) (models.Transaction, error) {
	if !kind.Valid() {
		return models.Transaction{}, models.ErrInvalidKind
	}
	if err := in.Validate(); err != nil {
		return models.Transaction{}, err
	}

	tx := models.NewTransaction(s.newID(), s.now().UTC().Truncate(time.Millisecond), in)
	err := s.mutate(ctx, "add_transaction", func(cur models.Snapshot) (models.Snapshot, bool) {
		return cur.WithTransaction(kind, tx), true
	})
	return tx, err
}

// DeleteTransaction 删除交易，id 不存在时返回 (false, nil) 且不写存储
func (s *Store) DeleteTransaction(ctx context.Context, kind models.Kind, id string) (bool, error) {
	if !kind.Valid() {
		return false, models.ErrInvalidKind
	}
	var removed bool
	err := s.mutate(ctx, "delete_transaction", func(cur models.Snapshot) (models.Snapshot, bool) {
		var next models.Snapshot
		next, removed = cur.WithoutTransaction(kind, id)
		return next, removed
	})
	return removed, err
}

// AddCategory 生成 id 后追加类别
func (s *Store) AddCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	if err := in.Validate(); err != nil {
		return models.Category{}, err
	}
	c := models.NewCategory(s.newID(), in)
	err := s.mutate(ctx, "add_category", func(cur models.Snapshot) (models.Snapshot, bool) {
		return cur.WithCategory(c), true
	})
	return c, err
}

// UpdateCategory 按 id 整体替换类别，没有匹配时不写存储
func (s *Store) UpdateCategory(ctx context.Context, c models.Category) (bool, error) {
	var updated bool
	err := s.mutate(ctx, "update_category", func(cur models.Snapshot) (models.Snapshot, bool) {
		var next models.Snapshot
		next, updated = cur.WithUpdatedCategory(c)
		return next, updated
	})
	return updated, err
}

// DeleteCategory 删除类别，引用它的交易保留原来的 categoryId
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.mutate(ctx, "delete_category", func(cur models.Snapshot) (models.Snapshot, bool) {
		var next models.Snapshot
		next, removed = cur.WithoutCategory(id)
		return next, removed
	})
	return removed, err
}

// Flush 退出前补写上次保存失败的快照；没有未保存的变化时不写存储，
// 避免启动读取失败后用默认数据覆盖已有记录
func (s *Store) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !s.dirty {
		return nil
	}
	return s.persist(ctx, "flush", s.Snapshot())
}

// Dirty 是否有尚未写入存储的变化
func (s *Store) Dirty() bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.dirty
}

// mutate 在写锁内计算新快照；changed 为 false 时什么都不做。
// 新快照先替换内存状态再写存储，写入失败不回滚。
func (s *Store) mutate(ctx context.Context, op string, fn func(models.Snapshot) (models.Snapshot, bool)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, changed := fn(s.Snapshot())
	if !changed {
		return nil
	}
	s.swap(next)
	return s.persist(ctx, op, next)
}

func (s *Store) swap(next models.Snapshot) {
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
}

func (s *Store) persist(ctx context.Context, op string, snap models.Snapshot) error {
	if err := s.adapter.Save(ctx, snap); err != nil {
		s.dirty = true
		s.log.WithError(err).WithField("op", op).Error("保存快照失败")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	s.dirty = false
	s.log.WithFields(logrus.Fields{
		"op":         op,
		"income":     len(snap.Income),
		"expenses":   len(snap.Expenses),
		"categories": len(snap.Categories),
	}).Debug("快照已保存")
	return nil
}
