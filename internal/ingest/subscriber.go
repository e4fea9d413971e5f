// Package ingest consumes doctor record updates published by the GMC sync
// job on a Redis channel and upserts them into the store. Delivery is
// fire-and-forget: a payload that fails to decode is logged and skipped, a
// store failure is logged and the subscriber moves on to the next message.
package ingest

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/medreg/revalidation-backend/internal/services"
)

// DoctorUpserter is the slice of DoctorService the subscriber needs.
type DoctorUpserter interface {
	UpdateTrainee(ctx context.Context, p services.DoctorPayload) error
}

// Subscriber listens on one Redis channel for doctor payloads.
type Subscriber struct {
	rdb     *goredis.Client
	channel string
	svc     DoctorUpserter
}

// NewSubscriber connects to Redis at addr and prepares a subscriber for the
// given channel. The connection is verified with a ping before returning.
func NewSubscriber(addr, channel string, svc DoctorUpserter) (*Subscriber, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Subscriber{rdb: rdb, channel: channel, svc: svc}, nil
}

// Start subscribes to the channel and consumes messages until ctx is
// cancelled. It returns once the subscription is confirmed; consumption
// runs on a background goroutine.
func (s *Subscriber) Start(ctx context.Context) error {
	sub := s.rdb.Subscribe(ctx, s.channel)

	// ensures the subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return err
	}

	log.Info().Str("channel", s.channel).Msg("ingest: subscribed")

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				s.handle(ctx, []byte(m.Payload))
			}
		}
	}()

	return nil
}

// handle decodes one feed payload and applies the upsert. Bad payloads and
// store failures are logged and skipped; the channel keeps flowing.
func (s *Subscriber) handle(ctx context.Context, payload []byte) {
	var p services.DoctorPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Warn().Err(err).Msg("ingest: undecodable doctor payload")
		return
	}
	if p.GMCReferenceNumber == "" {
		log.Warn().Msg("ingest: doctor payload without gmcReferenceNumber")
		return
	}
	if err := s.svc.UpdateTrainee(ctx, p); err != nil {
		log.Error().Err(err).Str("gmc_ref", p.GMCReferenceNumber).Msg("ingest: upsert failed")
		return
	}
	log.Info().Str("gmc_ref", p.GMCReferenceNumber).Msg("ingest: doctor record upserted")
}

// Close releases the Redis connection.
func (s *Subscriber) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
