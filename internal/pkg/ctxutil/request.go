// Package ctxutil carries per-request identity on a context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	requestDataKey struct{}
	traceDataKey   struct{}
)

// RequestData is set by the auth middleware once the bearer token verifies.
type RequestData struct {
	TokenString string
	OwnerID     uuid.UUID
}

type TraceData struct {
	TraceID   string
	RequestID string
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(Default(ctx), requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := Default(ctx).Value(requestDataKey{}).(*RequestData)
	return rd
}

// OwnerID is the authenticated owner, or uuid.Nil.
func OwnerID(ctx context.Context) uuid.UUID {
	if rd := GetRequestData(ctx); rd != nil {
		return rd.OwnerID
	}
	return uuid.Nil
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(Default(ctx), traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, _ := Default(ctx).Value(traceDataKey{}).(*TraceData)
	return td
}

// LogFields returns the request identifiers found on ctx as logger key/value pairs.
func LogFields(ctx context.Context) []interface{} {
	var fields []interface{}
	if td := GetTraceData(ctx); td != nil {
		if td.TraceID != "" {
			fields = append(fields, "trace_id", td.TraceID)
		}
		if td.RequestID != "" {
			fields = append(fields, "request_id", td.RequestID)
		}
	}
	if owner := OwnerID(ctx); owner != uuid.Nil {
		fields = append(fields, "owner_id", owner.String())
	}
	return fields
}
