package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"boutique/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisOrderRepository backs the order store with Redis, keeping the same
// key-value contract as the in-memory map. Updates are read-merge-write
// without a concurrency token, so the last writer wins.
type RedisOrderRepository struct {
	client *redis.Client
}

// NewRedisClient initializes a Redis client from a redis:// URL and
// verifies the connection.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// NewRedisOrderRepository creates a Redis-backed order store.
func NewRedisOrderRepository(client *redis.Client) *RedisOrderRepository {
	return &RedisOrderRepository{client: client}
}

func (r *RedisOrderRepository) key(stripeSessionID string) string {
	return "order:session:" + stripeSessionID
}

// CreateOrder stores a new order under its Stripe session id, falling back
// to the generated internal id when no session id is supplied.
func (r *RedisOrderRepository) CreateOrder(ctx context.Context, data models.CreateOrderInput) (*models.Order, error) {
	id := uuid.New()
	sessionID := data.StripeSessionID
	if sessionID == "" {
		sessionID = id.String()
	}
	status := data.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	items := data.Items
	if items == nil {
		items = []models.OrderItem{}
	}

	order := models.Order{
		ID:              id,
		StripeSessionID: sessionID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		Total:           data.Total,
		Status:          status,
		Items:           items,
	}

	if err := r.save(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderByStripeSession merges updates into the stored order.
func (r *RedisOrderRepository) UpdateOrderByStripeSession(ctx context.Context, stripeSessionID string, updates models.OrderUpdate) (*models.Order, error) {
	existing, err := r.GetOrderByStripeSession(ctx, stripeSessionID)
	if err != nil {
		return nil, err
	}

	applyUpdate(existing, updates)
	if err := r.save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetOrderByStripeSession returns the order stored under the given
// session id.
func (r *RedisOrderRepository) GetOrderByStripeSession(ctx context.Context, stripeSessionID string) (*models.Order, error) {
	data, err := r.client.Get(ctx, r.key(stripeSessionID)).Result()
	if err == redis.Nil {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *RedisOrderRepository) save(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(order.StripeSessionID), data, 0).Err()
}
