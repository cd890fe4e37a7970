package reload

import (
	"context"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer reloads the index once per message on the reload queue.
type Consumer struct {
	log           *zap.Logger
	queue         contracts.ReloadQueue
	indexUsecase  contracts.IndexUsecase
	reloadTimeout time.Duration
	cancel        context.CancelFunc
	done          chan struct{}
}

func NewConsumer(log *zap.Logger, queue contracts.ReloadQueue, indexUsecase contracts.IndexUsecase, reloadTimeout time.Duration) *Consumer {
	return &Consumer{
		log:           log,
		queue:         queue,
		indexUsecase:  indexUsecase,
		reloadTimeout: reloadTimeout,
		done:          make(chan struct{}),
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.queue.Consume(ctx, constvars.ReloadConsumerTag)
	if err != nil {
		return err
	}

	var runCtx context.Context
	runCtx, c.cancel = context.WithCancel(ctx)
	go c.loop(runCtx, deliveries)

	c.log.Info("reload.consumer: started", zap.String(constvars.LoggingQueueNameKey, c.queue.Name()))
	return nil
}

// Stop cancels the broker subscription and waits for the message in hand.
func (c *Consumer) Stop() {
	if c.cancel == nil {
		return
	}
	if err := c.queue.Cancel(constvars.ReloadConsumerTag); err != nil {
		c.log.Warn("reload.consumer: failed to cancel subscription", zap.Error(err))
	}
	c.cancel()
	<-c.done
}

func (c *Consumer) loop(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				c.log.Warn("reload.consumer: delivery channel closed",
					zap.String(constvars.LoggingQueueNameKey, c.queue.Name()),
				)
				return
			}
			c.handle(ctx, delivery)
		}
	}
}

// handle acks once the reload is done. A reload already in progress also
// acks: the running one picks up the same source. Anything else is dropped
// without requeue so a poison message cannot loop.
func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var message requests.ReloadMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		c.log.Warn("reload.consumer: discarding undecodable message",
			zap.String(constvars.LoggingQueueNameKey, c.queue.Name()),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	if message.ID != "" {
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, message.ID)
	}
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)

	reloadCtx, cancel := context.WithTimeout(ctx, c.reloadTimeout)
	defer cancel()

	_, err := c.indexUsecase.Reload(reloadCtx, constvars.ReloadTriggerQueue)
	if err != nil && !isReloadInProgress(err) {
		c.log.Warn("reload.consumer: reload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	if err := delivery.Ack(false); err != nil {
		c.log.Warn("reload.consumer: failed to ack message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
