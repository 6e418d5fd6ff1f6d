package store

import "sync"

// KV is a minimal string key-value surface, the Go stand-in for the browser
// storage the local portal originally persisted to. Injected so the local
// store and session state can be swapped without touching callers.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemKV is the in-memory KV used by local mode and tests.
type MemKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string]string)}
}

func (kv *MemKV) Get(key string) (string, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok
}

func (kv *MemKV) Set(key, value string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
}

func (kv *MemKV) Delete(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.m, key)
}
