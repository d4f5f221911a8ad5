package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// WriterSource opens the database transaction an action runs in.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriterSource
	queue   chan ActionItem
	log     *logrus.Logger
}

func NewOperator(s WriterSource, queue chan ActionItem, log *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		log:     log,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(item.ctx); rollbackErr != nil {
			o.log.WithError(rollbackErr).Warn("Operator.processItem.rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
