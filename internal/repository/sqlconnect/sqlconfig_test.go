package sqlconnect

import (
	"context"
	"testing"
	"time"
)

func TestConnectDB_EmptyDSN(t *testing.T) {
	if _, err := ConnectDB(context.Background(), "", PoolConfig{}); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestPoolConfigDefaults(t *testing.T) {
	got := PoolConfig{MaxOpen: 4}.withDefaults()
	if got.MaxOpen != 4 || got.MaxIdle != 4 {
		t.Errorf("expected open/idle 4/4, got %d/%d", got.MaxOpen, got.MaxIdle)
	}
	if got.ConnMaxIdleTime != 5*time.Minute || got.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("unexpected lifetimes: %+v", got)
	}
	if got.PingTimeout != 3*time.Second {
		t.Errorf("unexpected ping timeout: %s", got.PingTimeout)
	}
}
