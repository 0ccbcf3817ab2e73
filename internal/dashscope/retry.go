package dashscope

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type rateLimitError struct{}

func (e *rateLimitError) Error() string { return "rate limited" }

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

type serverError struct {
	statusCode int
	message    string
}

func (e *serverError) Error() string {
	return "server error: " + e.message
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

// classify maps go-openai API errors onto retry classes.
func classify(err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.HTTPStatusCode == 429:
		return &rateLimitError{}
	case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
		return &authError{message: apiErr.Message}
	case apiErr.HTTPStatusCode >= 500:
		return &serverError{statusCode: apiErr.HTTPStatusCode, message: apiErr.Message}
	default:
		return err
	}
}

func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		// Don't retry auth errors
		if IsAuthError(lastErr) {
			return lastErr
		}

		// Only retry rate limit and server errors
		var rle *rateLimitError
		var se *serverError
		if !errors.As(lastErr, &rle) && !errors.As(lastErr, &se) {
			return lastErr
		}

		if attempt < maxRetries {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
