package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel and amqpConn are the parts of the amqp091 client the
// publisher uses.
type amqpChannel interface {
	IsClosed() bool
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpConn interface {
	IsClosed() bool
	Channel() (amqpChannel, error)
	Close() error
}

type dialFunc func(url string) (amqpConn, error)

type brokerConn struct{ *amqp.Connection }

func (c brokerConn) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func dialBroker(url string) (amqpConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return brokerConn{conn}, nil
}

// AMQPPublisher publishes persistent JSON messages to a durable queue on
// the default exchange. A dead connection is redialled and a dead channel
// reopened on the next publish.
type AMQPPublisher struct {
	url   string
	queue string
	dial  dialFunc
	log   *zap.Logger

	mu   sync.Mutex
	conn amqpConn
	ch   amqpChannel
}

func NewAMQPPublisher(url, queue string, log *zap.Logger) (*AMQPPublisher, error) {
	return newAMQPPublisher(url, queue, dialBroker, log)
}

func newAMQPPublisher(url, queue string, dial dialFunc, log *zap.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:   url,
		queue: queue,
		dial:  dial,
		log:   log.With(zap.String("publisher", "amqp"), zap.String("queue", queue)),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect must be called with mu held
func (p *AMQPPublisher) connect() error {
	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}

	p.conn, p.ch = conn, nil
	if err := p.openChannel(); err != nil {
		_ = conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// openChannel must be called with mu held and a live connection
func (p *AMQPPublisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	p.ch = ch
	return nil
}

// ensureChannel must be called with mu held
func (p *AMQPPublisher) ensureChannel() error {
	switch {
	case p.conn == nil || p.conn.IsClosed():
		if err := p.connect(); err != nil {
			p.log.Error("Reconnect failed", zap.Error(err))
			return err
		}
	case p.ch == nil || p.ch.IsClosed():
		// channel exceptions close only the channel
		if err := p.openChannel(); err != nil {
			p.log.Error("Reopen channel failed", zap.Error(err))
			return err
		}
	}
	return nil
}

func (p *AMQPPublisher) PublishTicketBooked(ctx context.Context, ev TicketBookedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal ticket booked event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Error("Publish failed", zap.Error(err), zap.String("ticket_id", ev.TicketID))
		return fmt.Errorf("publish ticket booked event: %w", err)
	}

	p.log.Debug("Event published", zap.String("ticket_id", ev.TicketID))
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn, p.ch = nil, nil
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}

// Consumer reads ticket booked events and hands them to a Handler.
type Consumer struct {
	url     string
	queue   string
	handler Handler
	log     *zap.Logger
}

func NewConsumer(url, queue string, handler Handler, log *zap.Logger) *Consumer {
	return &Consumer{
		url:     url,
		queue:   queue,
		handler: handler,
		log:     log.With(zap.String("consumer", "amqp"), zap.String("queue", queue)),
	}
}

// Run consumes until ctx is cancelled, reconnecting with backoff.
func (c *Consumer) Run(ctx context.Context) {
	backoff := time.Second

	for ctx.Err() == nil {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("Dial failed, retrying", zap.Error(err), zap.Duration("backoff", backoff))
			if !sleep(ctx, backoff) {
				return
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consume(ctx, conn); err != nil && ctx.Err() == nil {
			c.log.Warn("Consume loop ended, reconnecting", zap.Error(err))
			sleep(ctx, 2*time.Second)
		}
		_ = conn.Close()
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		c.log.Warn("Set QoS failed", zap.Error(err))
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.queue, err)
	}

	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.log.Info("Consumer started")
	for d := range msgs {
		if err := c.handle(ctx, d.Body); err != nil {
			c.log.Error("Handle message failed", zap.Error(err))
			// drop it, requeueing a poison message would loop forever
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}

	return errors.New("deliveries channel closed")
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var ev TicketBookedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	return c.handler(ctx, ev)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
