package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/voltride/storefront/internal/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository 购物车持久化接口
// 购物车以带版本号的完整快照读写，写入永远整体替换。
type CartRepository interface {
	Load(ctx context.Context, cartID string) (models.CartState, error)
	Save(ctx context.Context, cartID string, state models.CartState) error
	Delete(ctx context.Context, cartID string) error
}

// RedisCartRepository Redis 实现
type RedisCartRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCartRepository 创建 Redis 购物车仓库
func NewRedisCartRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisCartRepository {
	if strings.TrimSpace(prefix) == "" {
		prefix = "vr"
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisCartRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisCartRepository) key(cartID string) string {
	return fmt.Sprintf("%s:cart:%s", r.prefix, cartID)
}

// Load 读取购物车快照
// 损坏的数据由解码层回退为空购物车，这里只传递连接类错误。
func (r *RedisCartRepository) Load(ctx context.Context, cartID string) (models.CartState, error) {
	raw, err := r.client.Get(ctx, r.key(cartID)).Bytes()
	if err == redis.Nil {
		return models.EmptyCartState(), nil
	}
	if err != nil {
		return models.EmptyCartState(), err
	}
	return models.DecodeCartState(raw), nil
}

// Save 全量写入购物车快照
func (r *RedisCartRepository) Save(ctx context.Context, cartID string, state models.CartState) error {
	payload, err := models.EncodeCartState(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(cartID), payload, r.ttl).Err()
}

// Delete 删除购物车
func (r *RedisCartRepository) Delete(ctx context.Context, cartID string) error {
	return r.client.Del(ctx, r.key(cartID)).Err()
}

// MemoryCartRepository 进程内实现（Redis 未启用时使用，也用于测试）
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryCartRepository 创建内存购物车仓库
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]byte)}
}

// Load 读取购物车快照
func (r *MemoryCartRepository) Load(ctx context.Context, cartID string) (models.CartState, error) {
	r.mu.RLock()
	raw, ok := r.carts[cartID]
	r.mu.RUnlock()
	if !ok {
		return models.EmptyCartState(), nil
	}
	return models.DecodeCartState(raw), nil
}

// Save 全量写入购物车快照
func (r *MemoryCartRepository) Save(ctx context.Context, cartID string, state models.CartState) error {
	payload, err := models.EncodeCartState(state)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.carts[cartID] = payload
	r.mu.Unlock()
	return nil
}

// Delete 删除购物车
func (r *MemoryCartRepository) Delete(ctx context.Context, cartID string) error {
	r.mu.Lock()
	delete(r.carts, cartID)
	r.mu.Unlock()
	return nil
}

// SeedRaw 直接写入原始字节，用于迁移与容错测试
func (r *MemoryCartRepository) SeedRaw(cartID string, raw []byte) {
	r.mu.Lock()
	r.carts[cartID] = raw
	r.mu.Unlock()
}
