// Package broker is the single place that knows how to talk to
// RabbitMQ: connecting with a retry budget, declaring durable queues,
// publishing to the default exchange by routing key, and consuming
// with per-delivery ack/reject.
package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/config"
)

// Queue names. Both are durable; bodies are UTF-8 JSON ArticleMessages.
const (
	QueueTVArticles        = "tv_articles"        // scraper -> analyser
	QueueProcessedArticles = "processed_articles" // analyser -> ingestor
)

const (
	reconnectWait    = 5 * time.Second
	defaultHeartbeat = 60 * time.Second
)

// ErrConnect is returned when the broker stays unreachable for the
// whole connect budget. Fatal at startup.
var ErrConnect = errors.New("failed to connect to broker")

// Config holds the broker connection parameters.
type Config struct {
	Host           string
	Port           string
	User           string
	Pass           string
	Heartbeat      time.Duration
	ConnectTimeout time.Duration
}

// ConfigFromEnv reads the RABBITMQ_* variables with their documented
// defaults and the MQ_CONNECT_TIMEOUT budget in seconds.
func ConfigFromEnv() Config {
	return Config{
		Host:           config.GetEnv("RABBITMQ_HOST", "rabbitmq"),
		Port:           config.GetEnv("RABBITMQ_PORT", "5672"),
		User:           config.GetEnv("RABBITMQ_USER", "admin"),
		Pass:           config.GetEnv("RABBITMQ_PASS", "password"),
		Heartbeat:      defaultHeartbeat,
		ConnectTimeout: config.GetEnvSeconds("MQ_CONNECT_TIMEOUT", 60*time.Second),
	}
}

func (c Config) url() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.User, c.Pass, c.Host, c.Port)
}

// Client owns one connection and one channel. It redials on transport
// failure; Shutdown is idempotent and releases the channel before the
// connection.
type Client struct {
	cfg Config
	log *zap.Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// Connect dials with a fixed backoff until the connect budget runs
// out. Auth and host errors within the budget are retried too; only
// the expired budget surfaces, wrapped in ErrConnect.
func Connect(cfg Config, log *zap.Logger) (*Client, error) {
	c := &Client{cfg: cfg, log: log}

	giveUp := time.Now().Add(cfg.ConnectTimeout)
	for {
		err := c.dial()
		if err == nil {
			log.Info("connected to broker", zap.String("host", cfg.Host))
			return c, nil
		}
		if time.Now().After(giveUp) {
			return nil, fmt.Errorf("%w: %v", ErrConnect, err)
		}
		log.Error("broker connect failed, retrying", zap.Error(err))
		time.Sleep(reconnectWait)
	}
}

func (c *Client) dial() error {
	conn, err := amqp.DialConfig(c.cfg.url(), amqp.Config{Heartbeat: c.cfg.Heartbeat})
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	c.mu.Lock()
	c.conn = conn
	c.ch = ch
	c.mu.Unlock()
	return nil
}

// redial re-establishes the connection after a mid-operation transport
// failure, reusing the original connect budget.
func (c *Client) redial() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrConnect
	}
	c.mu.Unlock()

	giveUp := time.Now().Add(c.cfg.ConnectTimeout)
	for {
		err := c.dial()
		if err == nil {
			c.log.Info("broker connection re-established")
			return nil
		}
		if time.Now().After(giveUp) {
			return fmt.Errorf("%w: %v", ErrConnect, err)
		}
		c.log.Error("broker reconnect failed, retrying", zap.Error(err))
		time.Sleep(reconnectWait)
	}
}

// DeclareQueue declares a durable queue. Safe to call from every
// process that touches the queue.
func (c *Client) DeclareQueue(name string) error {
	c.mu.Lock()
	ch := c.ch
	c.mu.Unlock()

	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return nil
}

// Publish sends a persistent message to the default exchange under the
// given routing key. At-least-once: transient errors surface to the
// caller, which re-enqueues locally.
func (c *Client) Publish(ctx context.Context, routingKey string, body []byte) error {
	c.mu.Lock()
	ch := c.ch
	c.mu.Unlock()

	err := ch.PublishWithContext(ctx,
		"", // default exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Headers:      InjectTraceContext(ctx),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", routingKey, err)
	}
	return nil
}

// Shutdown closes the channel then the connection. Idempotent; every
// exit path of a process goes through here.
func (c *Client) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if c.ch != nil {
		if err := c.ch.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Handler processes one delivery body. All registered handlers must
// succeed for the delivery to be acked.
type Handler func(ctx context.Context, body []byte) error

// Consumer runs registered handlers against deliveries from one queue,
// one delivery at a time. A handler error rejects the delivery without
// requeue so poison messages cannot loop.
type Consumer struct {
	client   *Client
	queue    string
	handlers []Handler
	log      *zap.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// NewConsumer builds a consumer for queue. Handlers are registered
// with WithHandler before Consume is called.
func (c *Client) NewConsumer(queue string) *Consumer {
	return &Consumer{
		client: c,
		queue:  queue,
		log:    c.log.Named("consumer"),
		stop:   make(chan struct{}),
	}
}

// WithHandler appends a handler; handlers run in registration order.
func (cs *Consumer) WithHandler(h Handler) *Consumer {
	cs.handlers = append(cs.handlers, h)
	return cs
}

// Stop terminates the consume loop after the in-flight delivery
// completes. Idempotent.
func (cs *Consumer) Stop() {
	cs.stopOnce.Do(func() { close(cs.stop) })
}

// Consume blocks until Stop is called or ctx is cancelled. If the
// delivery stream dies mid-run the consumer redials within the connect
// budget and resumes; an exhausted budget surfaces as ErrConnect.
func (cs *Consumer) Consume(ctx context.Context) error {
	if len(cs.handlers) == 0 {
		return errors.New("no handlers registered")
	}

	for {
		deliveries, err := cs.open()
		if err != nil {
			return err
		}

		alive, err := cs.drain(ctx, deliveries)
		if err != nil || !alive {
			return err
		}

		// Delivery stream closed underneath us: transport failure.
		cs.log.Error("delivery stream closed, reconnecting", zap.String("queue", cs.queue))
		if err := cs.client.redial(); err != nil {
			return err
		}
		if err := cs.client.DeclareQueue(cs.queue); err != nil {
			return err
		}
	}
}

func (cs *Consumer) open() (<-chan amqp.Delivery, error) {
	cs.client.mu.Lock()
	ch := cs.client.ch
	cs.client.mu.Unlock()

	// One in-flight delivery per consumer keeps ordering and makes the
	// ack/reject discipline per-message.
	if err := ch.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}
	deliveries, err := ch.Consume(
		cs.queue,
		"",    // server-generated consumer tag
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming %s: %w", cs.queue, err)
	}
	return deliveries, nil
}

// drain processes deliveries until stop, cancel, or stream close.
// Returns alive=false when the consumer should exit cleanly.
func (cs *Consumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case <-cs.stop:
			return false, nil
		case d, ok := <-deliveries:
			if !ok {
				return true, nil
			}
			cs.process(ctx, d)
		}
	}
}

func (cs *Consumer) process(ctx context.Context, d amqp.Delivery) {
	msgCtx := ExtractTraceContext(ctx, d.Headers)
	msgCtx, span := otel.Tracer("broker").Start(msgCtx, "AMQP - consume - "+cs.queue)
	defer span.End()

	for _, handler := range cs.handlers {
		if err := handler(msgCtx, d.Body); err != nil {
			cs.log.Error("handler failed, rejecting message",
				zap.String("queue", cs.queue),
				zap.Error(err),
			)
			// Reject without requeue; redelivery policy is the
			// operator's call, idempotent sinks absorb redeliveries.
			if err := d.Reject(false); err != nil {
				cs.log.Error("failed to reject message", zap.Error(err))
			}
			return
		}
	}
	if err := d.Ack(false); err != nil {
		cs.log.Error("failed to ack message", zap.Error(err))
	}
}
