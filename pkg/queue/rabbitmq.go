package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vocal-feed/pkg/config"
	"vocal-feed/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	TTSQueueName  = "tts_generation_queue"
	TTSExchange   = "tts"
	TTSRoutingKey = "generate"
)

// TTSJob asks a worker to generate audio for text and optionally attach it
// to a post.
type TTSJob struct {
	Text         string    `json:"text"`
	Instructions string    `json:"instructions,omitempty"`
	PostID       string    `json:"postId,omitempty"`
	RequestedBy  string    `json:"requestedBy,omitempty"`
	RequestedAt  time.Time `json:"requestedAt"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// One unacked job per worker; generation is slow and rate limited.
	if err := channel.Qos(1, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		TTSExchange, // name
		"direct",    // type
		true,        // durable
		false,       // auto-deleted
		false,       // internal
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		TTSQueueName, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(TTSQueueName, TTSRoutingKey, TTSExchange, false, nil)
	if err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) PublishTTSJob(ctx context.Context, job TTSJob) error {
	if job.RequestedAt.IsZero() {
		job.RequestedAt = time.Now().UTC()
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal tts job: %w", err)
	}

	err = c.channel.PublishWithContext(ctx,
		TTSExchange,   // exchange
		TTSRoutingKey, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    job.RequestedAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish tts job for post=%q: %v", job.PostID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published tts job to exchange=%s, post=%q, text_len=%d", TTSExchange, job.PostID, len(job.Text))
	return nil
}

// ConsumeTTSJobs hands each job to handler until ctx is cancelled or the
// channel closes. Jobs are acked on success. Malformed or failed jobs are
// rejected without requeue.
func (c *Client) ConsumeTTSJobs(ctx context.Context, handler func(ctx context.Context, job TTSJob) error) error {
	msgs, err := c.channel.ConsumeWithContext(ctx,
		TTSQueueName, // queue
		"",           // consumer
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", TTSQueueName)

	go func() {
		for msg := range msgs {
			HandleDelivery(ctx, msg, handler, c.logger)
		}
		c.logger.Info("[RABBITMQ] Stopped consuming from queue: %s", TTSQueueName)
	}()

	return nil
}

// HandleDelivery decodes one delivery and settles it.
func HandleDelivery(ctx context.Context, msg amqp.Delivery, handler func(ctx context.Context, job TTSJob) error, log *logger.Logger) {
	var job TTSJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		log.Error("[RABBITMQ] Failed to unmarshal tts job: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(ctx, job); err != nil {
		log.Error("[RABBITMQ] Handler failed to process tts job for post=%q: %v", job.PostID, err)
		msg.Nack(false, false)
		return
	}

	msg.Ack(false)
}

func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(TTSQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
