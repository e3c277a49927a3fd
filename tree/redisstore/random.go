package redisstore

import (
	"math/rand"
	"sync"
	"time"
)

const idChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// idGenerator produces random alphanumeric tree IDs and is safe for concurrent use
type idGenerator struct {
	lock sync.Mutex
	rnd  *rand.Rand
}

var ids = &idGenerator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}

// next returns a new ID with n characters
func (g *idGenerator) next(n int) string {
	id := make([]byte, n)
	g.lock.Lock()
	for i := range id {
		id[i] = idChars[g.rnd.Intn(len(idChars))]
	}
	g.lock.Unlock()
	return string(id)
}
