// Package redis publishes audit events to a Redis Stream so external
// consumers (archival, alerting) can follow portal activity without polling
// the database.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamName is the audit event stream written by the portal
const StreamName = "audit-events"

// Config holds all configuration for the Redis client
type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
	UseTLS   bool
}

// Client is a wrapper around the go-redis client scoped to the audit stream.
type Client struct {
	client *redis.Client
}

// NewClient creates and connects a new Client.
func NewClient(cfg *Config) (*Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.Username != "" {
		opts.Username = cfg.Username
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{client: rdb}, nil
}

// Close gracefully closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// PublishAuditEvent adds an event to the audit stream using XADD with an
// auto-generated ID.
func (c *Client) PublishAuditEvent(ctx context.Context, fields map[string]string) error {
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}

	err := c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to XADD to stream %s: %w", StreamName, err)
	}
	return nil
}
