package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/broker"
	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/news"
)

// newsAnalyser produces (structured, raw) for one article body.
type newsAnalyser interface {
	Analyse(ctx context.Context, content string) (json.RawMessage, string, error)
}

// gatewayPusher fires the external push; errors stay inside.
type gatewayPusher interface {
	Push(ctx context.Context, message string)
}

// messagePublisher is the slice of the broker client the consumer
// needs for queue B.
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Consumer carries one queue-A delivery through analysis, the trade
// policy, queue B and the gateway push. An error return rejects the
// delivery without requeue.
type Consumer struct {
	analyser newsAnalyser
	policy   *TradePolicy
	mq       messagePublisher
	gateway  gatewayPusher // nil when no endpoint is configured
	met      *metrics.StageMetrics
	log      *zap.Logger

	// publishRaw lets raw-only messages flow to queue B; the sink then
	// records the raw text in the error column.
	publishRaw bool
}

func NewConsumer(analyser newsAnalyser, policy *TradePolicy, mq messagePublisher, gateway gatewayPusher, met *metrics.StageMetrics, log *zap.Logger) *Consumer {
	return &Consumer{
		analyser:   analyser,
		policy:     policy,
		mq:         mq,
		gateway:    gateway,
		met:        met,
		log:        log,
		publishRaw: config.GetEnvBool("ANALYSER_PUBLISH_RAW", false),
	}
}

func (c *Consumer) Handle(ctx context.Context, body []byte) error {
	start := time.Now()

	article, err := news.Decode(body)
	if err != nil {
		c.met.Failed.Inc()
		return err
	}
	log := c.log.With(zap.String("message_id", article.MessageID))
	log.Info("new message received")

	log.Info("analysing message content")
	structured, raw, err := c.analyser.Analyse(ctx, article.Content)
	if err != nil {
		c.met.Failed.Inc()
		return fmt.Errorf("analysis failed: %w", err)
	}
	article.ResponseStruct = structured
	article.ResponseRaw = raw

	if len(structured) > 0 {
		if c.policy != nil {
			c.policy.Evaluate(ctx, structured)
		}
	} else {
		log.Info("no structured result", zap.String("response", raw))
	}

	if len(structured) > 0 || c.publishRaw {
		if err := c.publishProcessed(ctx, article); err != nil {
			c.met.Failed.Inc()
			return err
		}
	}

	if c.gateway != nil {
		c.gateway.Push(ctx, raw)
	}

	c.met.Processed.Inc()
	c.met.Duration.Observe(time.Since(start).Seconds())
	return nil
}

func (c *Consumer) publishProcessed(ctx context.Context, article *news.ArticleMessage) error {
	body, err := article.Encode()
	if err != nil {
		return err
	}
	c.log.Info("pushing processed article",
		zap.String("queue", broker.QueueProcessedArticles),
		zap.String("message_id", article.MessageID),
	)
	return c.mq.Publish(ctx, broker.QueueProcessedArticles, body)
}
