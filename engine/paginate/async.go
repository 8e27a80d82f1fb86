package paginate

import (
	"context"

	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/folio/engine/dom"
)

// Promise is the future result of an asynchronous pagination pass.
type Promise interface {
	// Pages blocks until the pass has finished or ctx is done.
	Pages(ctx context.Context) ([]*Page, error)
}

type pagesPlusErr struct {
	pages []*Page
	err   error
}

type pageLoader struct {
	done   chan struct{}
	result pagesPlusErr
}

// PaginateAsync starts a pagination pass on a separate goroutine. The pass
// is stopped early if ctx is cancelled. The configuration is copied, so
// the caller is free to prepare the next configuration (e.g. after a
// resize) and start another pass at any time.
func PaginateAsync(ctx context.Context, root *dom.Node, conf parameters.TypesetConfig,
	images ImageSource) Promise {
	//
	loader := &pageLoader{done: make(chan struct{})}
	go func() {
		defer close(loader.done)
		pages, err := New(conf, images).PaginateContext(ctx, root)
		loader.result = pagesPlusErr{pages: pages, err: err}
	}()
	return loader
}

func (loader *pageLoader) Pages(ctx context.Context) ([]*Page, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.result.pages, loader.result.err
	}
}
