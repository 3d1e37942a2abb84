package main

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/handoff"
	"github.com/wayming/Automated-Trading-System/news"
)

// queuePublisher is the slice of the broker client the publisher needs.
type queuePublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Publisher drains the handoff queue into broker queue A. An AMQP
// error puts the message back at the head and ends the run so the
// supervisor can shut down; any other publish error re-enqueues at the
// head after a wait and the loop continues.
type Publisher struct {
	mq    queuePublisher
	queue string
	in    *handoff.Queue[*news.ArticleMessage]
	log   *zap.Logger

	retryWait time.Duration
}

func NewPublisher(mq queuePublisher, queue string, in *handoff.Queue[*news.ArticleMessage], log *zap.Logger) *Publisher {
	return &Publisher{
		mq:        mq,
		queue:     queue,
		in:        in,
		log:       log,
		retryWait: 5 * time.Second,
	}
}

// Run returns nil once stop is closed and the queue has drained.
func (p *Publisher) Run(ctx context.Context, stop <-chan struct{}) error {
	for {
		select {
		case <-stop:
			if p.in.Empty() {
				return nil
			}
		default:
		}

		msg, ok := p.in.Get(time.Second)
		if !ok {
			continue
		}
		err := p.publish(ctx, msg)
		p.in.TaskDone()
		if err != nil {
			return err
		}
	}
}

func (p *Publisher) publish(ctx context.Context, msg *news.ArticleMessage) error {
	body, err := msg.Encode()
	if err != nil {
		p.log.Error("failed to encode article, dropping", zap.Error(err))
		return nil
	}

	p.log.Info("publishing article", zap.String("title", msg.Title))
	err = p.mq.Publish(ctx, p.queue, body)
	if err == nil {
		return nil
	}

	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		p.log.Error("queue error", zap.Error(err))
		p.in.PutFront(msg)
		return err
	}

	p.log.Error("failed to publish article, returning to queue", zap.Error(err))
	time.Sleep(p.retryWait)
	// Head buffer, not the channel: the publisher is the channel's only
	// consumer, so a blocking re-enqueue into a full channel would
	// deadlock the retry.
	p.in.PutFront(msg)
	return nil
}
