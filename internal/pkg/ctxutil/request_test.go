package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestOwnerIDAndLogFields(t *testing.T) {
	if got := OwnerID(nil); got != uuid.Nil {
		t.Fatalf("nil ctx owner: %s", got)
	}
	if fields := LogFields(context.Background()); len(fields) != 0 {
		t.Fatalf("bare ctx fields: %v", fields)
	}

	owner := uuid.New()
	ctx := WithRequestData(context.Background(), &RequestData{OwnerID: owner})
	ctx = WithTraceData(ctx, &TraceData{TraceID: "t1"})
	if got := OwnerID(ctx); got != owner {
		t.Fatalf("owner: got %s want %s", got, owner)
	}
	fields := LogFields(ctx)
	want := []interface{}{"trace_id", "t1", "owner_id", owner.String()}
	if len(fields) != len(want) {
		t.Fatalf("fields: got %v want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("fields[%d]: got %v want %v", i, fields[i], want[i])
		}
	}
}
