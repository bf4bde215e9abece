package redis_test

import (
	"context"
	"testing"
	"time"

	redisrepo "github.com/marketsync/seller-hub/repository/redis"
)

// Without a configured client every operation degrades to a no-op and
// locks always succeed, matching single-instance deployments.
func TestRepository_NoClient(t *testing.T) {
	repo := redisrepo.NewRepository()
	ctx := context.Background()

	if val, err := repo.Get(ctx, "cred:ozon:1"); err != nil || val != "" {
		t.Fatalf("Get() = (%q, %v), want empty no-op", val, err)
	}
	if err := repo.SetWithTTL(ctx, "cred:ozon:1", "x", time.Minute); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}
	if err := repo.Delete(ctx, "cred:ozon:1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	token, acquired, err := repo.AcquireLock(ctx, "order_sync_job", time.Minute)
	if err != nil || !acquired || token == "" {
		t.Fatalf("AcquireLock() = (%q, %v, %v), want token and acquired", token, acquired, err)
	}
	if err := repo.ReleaseLock(ctx, "order_sync_job", token); err != nil {
		t.Fatalf("ReleaseLock() error = %v", err)
	}
}
