package middleware

import (
	"bytes"
	"net/http"
	"time"

	"backend/internal/app/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CacheMiddleware struct {
	RedisClient *redis.Client
}

func NewCacheMiddleware(redisClient *redis.Client) *CacheMiddleware {
	return &CacheMiddleware{RedisClient: redisClient}
}

// bodyCaptureWriter перехватывает тело ответа для записи в кэш
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CachePage отдаёт GET-ответ из Redis, пока запись не истекла.
// Допустима устаревшая выдача в пределах TTL, явной инвалидации нет
func (cm *CacheMiddleware) CachePage(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cm.RedisClient == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		uri := c.Request.RequestURI

		cached, err := cm.RedisClient.GetPage(c.Request.Context(), uri)
		if err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}
		if err != redis.ErrCacheMiss {
			// Redis недоступен - отдаём без кэша
			logrus.Warnf("page cache read failed for %s: %v", uri, err)
			c.Next()
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		// Кэшируем только успешные ответы
		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := cm.RedisClient.SetPage(c.Request.Context(), uri, writer.body.Bytes(), ttl); err != nil {
			logrus.Warnf("page cache write failed for %s: %v", uri, err)
		}
	}
}
