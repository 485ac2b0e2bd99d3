package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/journalbot/internal/sentiment"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient caches raw classifier output keyed by a hash of the entry
// text. Entry text itself is never stored; the cache is optional and the
// service runs without it.
type ValkeyClient struct {
	Client valkey.Client
}

// InitValkey connects using VALKEY_INIT_ADDRESS. Returns nil when the
// address is unset or the connection fails; callers treat nil as no cache.
func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
		if valkeyAddr == "" {
			slog.Info("[ValkeyClient] VALKEY_INIT_ADDRESS not set, result cache disabled")
			return
		}
		valkeyPassword := os.Getenv("VALKEY_PASSWORD")
		useTLS := os.Getenv("VALKEY_TLS") == "true"

		opts := valkey.ClientOption{
			InitAddress: []string{
				valkeyAddr,
			},
			Password:         valkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			slog.Error("[ValkeyClient] Failed to create Valkey client, continuing without cache",
				slog.String("error", err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		c := client.Do(ctx, client.B().Ping().Build())
		if c.Error() != nil {
			slog.Error("[ValkeyClient] Failed to ping Valkey, continuing without cache",
				slog.String("error", c.Error().Error()))
			client.Close()
			return
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")

		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// GetCachedPrediction looks up a prior classification of identical text.
// Any cache failure is logged and reported as a miss.
func (vc *ValkeyClient) GetCachedPrediction(ctx context.Context, text string) (sentiment.Prediction, bool) {
	var pred sentiment.Prediction

	res := vc.doWithRetry(ctx, vc.Client.B().Get().Key(cacheKey(text)).Build())
	if res.Error() != nil {
		if !valkey.IsValkeyNil(res.Error()) {
			slog.Warn("[ValkeyClient] Cache lookup failed",
				slog.String("error", res.Error().Error()))
		}
		return pred, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return pred, false
	}
	if err := json.Unmarshal(raw, &pred); err != nil {
		slog.Warn("[ValkeyClient] Failed to decode cached prediction",
			slog.String("error", err.Error()))
		return pred, false
	}

	return pred, true
}

// CachePrediction stores a classification result with a 24h TTL.
func (vc *ValkeyClient) CachePrediction(ctx context.Context, text string, pred sentiment.Prediction) error {
	raw, err := json.Marshal(pred)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction: %w", err)
	}

	res := vc.doWithRetry(ctx,
		vc.Client.B().Set().Key(cacheKey(text)).Value(string(raw)).ExSeconds(CACHE_TTL_SECS).Build())
	if res.Error() != nil {
		return res.Error()
	}

	slog.Debug("[ValkeyClient] Cached prediction",
		slog.String("label", pred.Label))
	return nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return VALKEY_KEY_BASE + hex.EncodeToString(sum[:])
}

func (vc *ValkeyClient) doWithRetry(ctx context.Context, completed valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < MAX_RETRIES; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(RETRY_BACKOFF)
	}

	return result
}
