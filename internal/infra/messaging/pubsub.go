package messaging

import (
	"fmt"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// Transport is the publisher plus a way to build one subscriber per handler.
type Transport struct {
	Publisher message.Publisher
	Subscribe func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error)
}

// NewTransport picks the in-process channel or Redis Streams. The redis client
// is only required for the redis driver.
func NewTransport(cfg config.EventsConfig, rdb redis.UniversalClient, logger watermill.LoggerAdapter) (*Transport, error) {
	switch cfg.Driver {
	case "", config.EventsDriverGoChannel:
		ch := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, logger)
		return &Transport{
			Publisher: ch,
			Subscribe: func(cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
				return ch, nil
			},
		}, nil

	case config.EventsDriverRedis:
		if rdb == nil {
			return nil, errs.New("redis events driver needs a redis client")
		}
		pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: rdb,
		}, logger)
		if err != nil {
			return nil, errs.Wrap(err, "failed to create redis stream publisher")
		}
		return &Transport{
			Publisher: pub,
			Subscribe: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
				return redisstream.NewSubscriber(redisstream.SubscriberConfig{
					Client:        rdb,
					ConsumerGroup: cfg.ConsumerGroup + "." + params.HandlerName,
				}, logger)
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
}

func topic(eventName string) string {
	return "events." + eventName
}
