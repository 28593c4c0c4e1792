package worker

import (
	"context"
	"sync"
)

type (
	ContextJob func(context.Context) error

	Group interface {
		Do(ContextJob)
		Wait() error
	}
)

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	wg        *sync.WaitGroup
	once      *sync.Once
}

// NewFailFastGroup runs jobs concurrently and cancels the group context
// after the first failure.
func NewFailFastGroup(ctx context.Context) (context.Context, Group) {
	ctx, ctxCancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:       ctx,
		ctxCancel: ctxCancel,
		errChan:   make(chan error, 1),
		wg:        &sync.WaitGroup{},
		once:      &sync.Once{},
	}
}

func (g *group) Do(job ContextJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		err := job(g.ctx)
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			g.ctxCancel()
		default:
		}
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.once.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
