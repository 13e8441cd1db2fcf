package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const pagePrefix = servicePrefix + "page."

// ErrCacheMiss возвращается, когда страницы нет в кэше
var ErrCacheMiss = errors.New("page cache miss")

func getPageKey(uri string) string {
	return pagePrefix + uri
}

// GetPage читает закэшированное тело ответа по URI запроса
func (c *Client) GetPage(ctx context.Context, uri string) ([]byte, error) {
	body, err := c.client.Get(ctx, getPageKey(uri)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// SetPage кладёт тело ответа в кэш с заданным TTL, инвалидации нет -
// запись просто истекает
func (c *Client) SetPage(ctx context.Context, uri string, body []byte, ttl time.Duration) error {
	return c.client.Set(ctx, getPageKey(uri), body, ttl).Err()
}
