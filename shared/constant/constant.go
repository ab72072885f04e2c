package constant

import (
	"time"
)

const (
	RequestParamPage = "page"
	RequestParamSize = "size"

	RequestParamUsername = "username"
	RequestParamEmail    = "email"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValueLimit = 10

	MaxValueLimit = 100
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "middleware"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyUser         = "user"
	CacheKeyRevokedToken = "revoked_token"
	CacheKeyRateLimit    = "rate_limit"
)

const (
	EventTodoCreated    = "todo.created"
	EventTodoUpdated    = "todo.updated"
	EventTodoChecked    = "todo.checked"
	EventTodoDeleted    = "todo.deleted"
	EventSubTodoCreated = "subtodo.created"
	EventSubTodoUpdated = "subtodo.updated"
	EventSubTodoChecked = "subtodo.checked"
	EventSubTodoDeleted = "subtodo.deleted"
)
