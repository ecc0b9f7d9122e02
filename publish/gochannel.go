package publish

import (
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/TechArp/CafeApp/observability/logger"
)

// GoChannelConfig configures the in-process pub/sub.
type GoChannelConfig struct {
	Topic string `yaml:"topic" default:"cafe.tab_events"`

	// OutputBuffer is the size of every subscriber channel.
	OutputBuffer int64 `yaml:"output_buffer" default:"64"`

	// BlockUntilAck makes Publish wait until every subscriber acked the
	// message, which keeps events ordered for a single subscriber.
	BlockUntilAck bool `yaml:"block_until_ack" default:"true"`
}

// NewGoChannel creates an in-process watermill pub/sub logging through log.
// It is both a message.Publisher and a message.Subscriber.
func NewGoChannel(cfg GoChannelConfig, log logger.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            cfg.OutputBuffer,
		BlockPublishUntilSubscriberAck: cfg.BlockUntilAck,
	}, NewLoggerAdapter(log.Named("gochannel")))
}
