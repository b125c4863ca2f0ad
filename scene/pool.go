package scene

import "sync"

// ListPool manages a pool of reusable RenderList objects.
// After warmup, per-frame allocations are minimized by reusing lists.
//
// Usage:
//
//	pool := NewListPool()
//	list := pool.Get()
//	defer pool.Put(list)
//	// fill and draw list...
type ListPool struct {
	pool sync.Pool
}

// NewListPool creates a new render list pool.
func NewListPool() *ListPool {
	return &ListPool{
		pool: sync.Pool{
			New: func() any {
				return NewRenderList()
			},
		},
	}
}

// Get retrieves a list from the pool.
// The list is reset and ready for use.
func (p *ListPool) Get() *RenderList {
	list := p.pool.Get().(*RenderList)
	list.Reset()
	return list
}

// Put returns a list to the pool for reuse.
// The list will be reset on the next Get.
func (p *ListPool) Put(list *RenderList) {
	if list == nil {
		return
	}
	p.pool.Put(list)
}

// Warmup pre-allocates lists to avoid allocation during critical paths.
// Call this during initialization if allocation-free frames are required.
func (p *ListPool) Warmup(count int) {
	lists := make([]*RenderList, count)
	for i := 0; i < count; i++ {
		lists[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(lists[i])
	}
}

// DefaultPool is a global render list pool for convenience.
// For performance-critical code, consider creating dedicated pools.
var DefaultPool = NewListPool()

// GetList retrieves a list from the default pool.
func GetList() *RenderList {
	return DefaultPool.Get()
}

// PutList returns a list to the default pool.
func PutList(list *RenderList) {
	DefaultPool.Put(list)
}
