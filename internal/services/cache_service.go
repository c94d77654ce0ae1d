package services

import (
	"container/list"
	"sync"
	"time"
)

// Cache é a interface de cache em memória usada pelos providers.
type Cache interface {
	Get(key string) interface{}
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Size() int
}

type lruEntry struct {
	key        string
	value      interface{}
	expiration time.Time
}

// LRUCache é um cache LRU thread-safe com expiração por entrada. Usado para
// embeddings já gerados, evitando chamadas repetidas à API do Gemini.
type LRUCache struct {
	capacity int
	mu       sync.Mutex
	cache    map[string]*list.Element
	lruList  *list.List
}

// NewLRUCache cria um cache com a capacidade dada.
func NewLRUCache(capacity int) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		cache:    make(map[string]*list.Element),
		lruList:  list.New(),
	}
}

// Get recupera um valor vivo do cache, ou nil.
func (c *LRUCache) Get(key string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, found := c.cache[key]
	if !found {
		return nil
	}
	entry := element.Value.(*lruEntry)
	if time.Now().After(entry.expiration) {
		c.removeElement(element)
		return nil
	}

	c.lruList.MoveToBack(element)
	return entry.value
}

// Set adiciona ou atualiza um valor com o TTL dado.
func (c *LRUCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := time.Now().Add(ttl)

	if element, found := c.cache[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*lruEntry)
		entry.value = value
		entry.expiration = expiration
		return
	}

	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	element := c.lruList.PushBack(&lruEntry{key: key, value: value, expiration: expiration})
	c.cache[key] = element
}

// Delete remove uma entrada.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.cache[key]; found {
		c.removeElement(element)
	}
}

// Size retorna o número de entradas (expiradas inclusas até serem tocadas).
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lruList.Len()
}

// removeElement remove com o lock tomado.
func (c *LRUCache) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	entry := element.Value.(*lruEntry)
	delete(c.cache, entry.key)
}
