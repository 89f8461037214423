package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type schedulerConfigStub struct {
	redisURL string
	queue    string
}

func (s schedulerConfigStub) GetRedisURL() string       { return s.redisURL }
func (s schedulerConfigStub) GetRedisTLSInsecure() bool { return false }
func (s schedulerConfigStub) GetAsynqQueueName() string { return s.queue }
func (s schedulerConfigStub) GetAsynqConcurrency() int  { return 1 }

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(schedulerConfigStub{}); err == nil {
		t.Fatalf("expected error without redis url")
	}
}

func TestRedisClientOptParsesURL(t *testing.T) {
	opt, err := redisClientOpt("redis://:secret@cache.internal:6380/2", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Addr != "cache.internal:6380" || opt.Password != "secret" || opt.DB != 2 {
		t.Fatalf("unexpected options %+v", opt)
	}
	if opt.TLSConfig == nil || !opt.TLSConfig.InsecureSkipVerify {
		t.Fatalf("expected insecure tls config")
	}
}

func TestScheduleFollowUpReminderEnqueuesOnce(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(schedulerConfigStub{redisURL: "redis://" + mr.Addr(), queue: "reminders"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer func() { _ = client.Close() }()

	interactionID := uuid.NewString()
	runAt := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	payload := FollowUpReminderPayload{
		ContactID:     uuid.NewString(),
		AgentID:       uuid.NewString(),
		InteractionID: interactionID,
		Channel:       "whatsapp",
		ScheduledFor:  runAt.Add(30 * time.Minute),
	}

	ctx := context.Background()
	if err := client.ScheduleFollowUpReminder(ctx, payload, runAt); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := client.ScheduleFollowUpReminder(ctx, payload, runAt); err != nil {
		t.Fatalf("duplicate schedule should be ignored, got %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	key := "asynq:{reminders}:scheduled"
	count, err := rdb.ZCard(ctx, key).Result()
	if err != nil {
		t.Fatalf("zcard: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 scheduled task, got %d", count)
	}

	score, err := rdb.ZScore(ctx, key, "follow-up:"+interactionID).Result()
	if err != nil {
		t.Fatalf("zscore: %v", err)
	}
	if int64(score) != runAt.Unix() {
		t.Fatalf("expected run at %d, got %d", runAt.Unix(), int64(score))
	}
}

func TestNilClientIsNoop(t *testing.T) {
	var client *Client
	if err := client.ScheduleFollowUpReminder(context.Background(), FollowUpReminderPayload{}, time.Now()); err != nil {
		t.Fatalf("expected nil client to be a no-op, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
