package wipe

import "sync"

// bufferPool hands out size-classed byte slices so repeated sessions and
// the demo provisioner do not churn the allocator with multi-megabyte
// buffers.
type bufferPool struct {
	mu    sync.RWMutex
	pools map[int]*sync.Pool
}

var globalBufferPool = &bufferPool{pools: make(map[int]*sync.Pool)}

// Standard size classes, powers of four up to 16 MiB.
var poolSizes = []int{4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

// GetBuffer returns a buffer of exactly size bytes backed by a pooled
// allocation of the next size class up.
func GetBuffer(size int) []byte {
	if size <= 0 {
		return nil
	}
	return globalBufferPool.get(size)
}

// PutBuffer returns a buffer obtained from GetBuffer to its pool.
func PutBuffer(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	globalBufferPool.put(buf)
}

func (bp *bufferPool) get(size int) []byte {
	class := poolClass(size)

	bp.mu.RLock()
	pool, ok := bp.pools[class]
	bp.mu.RUnlock()

	if !ok {
		bp.mu.Lock()
		pool, ok = bp.pools[class]
		if !ok {
			pool = &sync.Pool{
				New: func() any { return make([]byte, class) },
			}
			bp.pools[class] = pool
		}
		bp.mu.Unlock()
	}

	return pool.Get().([]byte)[:size]
}

func (bp *bufferPool) put(buf []byte) {
	class := poolClass(cap(buf))

	bp.mu.RLock()
	pool, ok := bp.pools[class]
	bp.mu.RUnlock()

	if ok && cap(buf) >= class {
		pool.Put(buf[:cap(buf)])
	}
}

// poolClass picks the size class for a requested buffer, rounding
// oversized requests up to a 4 KiB boundary.
func poolClass(size int) int {
	for _, class := range poolSizes {
		if size <= class {
			return class
		}
	}
	return ((size + 4095) / 4096) * 4096
}
