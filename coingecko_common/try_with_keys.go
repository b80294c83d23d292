package coingecko_common

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// KeyExecutor performs one attempt with the given key.
// ok=false with a nil error means the attempt produced nothing usable.
type KeyExecutor[T any] func(apiKey APIKey) (result T, ok bool, err error)

// TryWithKeys runs executor with each key in order and returns the first successful result.
// onFailed is called for every key whose attempt failed. The error of the last attempt is
// returned when all keys fail, so its classification survives.
func TryWithKeys[T any](ctx context.Context, keys []APIKey, logPrefix string, executor KeyExecutor[T], onFailed func(APIKey, error)) (T, error) {
	var zero T
	if len(keys) == 0 {
		return zero, fmt.Errorf("%s: no API keys available", logPrefix)
	}

	var lastErr error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return zero, lastErr
			}
			return zero, err
		}

		result, ok, err := executor(key)
		if err == nil && ok {
			return result, nil
		}
		if err == nil {
			err = errors.New("empty result")
		}
		lastErr = err

		zap.L().Warn("Attempt with API key failed",
			zap.String("client", logPrefix),
			zap.String("key_type", key.Type.String()),
			zap.Error(err))

		if onFailed != nil {
			onFailed(key, err)
		}
	}

	return zero, lastErr
}

// CreateFailCallback returns an onFailed callback that puts failed keys into backoff
func CreateFailCallback(keyManager IAPIKeyManager) func(APIKey, error) {
	return func(apiKey APIKey, err error) {
		if apiKey.Type == NoKey {
			return
		}
		keyManager.MarkKeyAsFailed(apiKey.Key)
	}
}
