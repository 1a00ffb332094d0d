package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRequestHooks{}
	r.OnRequest(ctx, "scoreboard", "https://api.mysportsfeeds.com/v1.2/pull/nfl/latest/scoreboard.json")
	r.OnResponse(ctx, "scoreboard", 200, time.Second)
	r.OnError(ctx, "scoreboard", errors.New("connection refused"))

	s := NoopStoreHooks{}
	s.OnStoreHit(ctx, "scoreboard-nfl-latest.json")
	s.OnStoreMiss(ctx, "scoreboard-nfl-latest.json")
	s.OnStoreSet(ctx, "scoreboard-nfl-latest.json", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Requests().(NoopRequestHooks); !ok {
		t.Error("Requests() should return NoopRequestHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	customRequests := &testRequestHooks{}
	SetRequestHooks(customRequests)
	if Requests() != customRequests {
		t.Error("SetRequestHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	Reset()
	if _, ok := Requests().(NoopRequestHooks); !ok {
		t.Error("Reset() should restore NoopRequestHooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testRequestHooks{}
	SetRequestHooks(custom)
	SetRequestHooks(nil)

	if Requests() != custom {
		t.Error("SetRequestHooks(nil) should be ignored")
	}
}

type testRequestHooks struct{ NoopRequestHooks }
type testStoreHooks struct{ NoopStoreHooks }
