package logger

import (
	"context"

	"go.uber.org/zap"
)

// sessionIDKey context key of the interactive session id
type sessionIDKey struct{}

// ContextWithSessionID 在 context 中保存会话 ID
func ContextWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext 读取会话 ID，没有时返回空字符串
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext 返回带有 context 中会话 ID 的 logger
func FromContext(ctx context.Context) *zap.Logger {
	if id := SessionIDFromContext(ctx); id != "" {
		return WithSessionID(id)
	}
	return Get()
}
