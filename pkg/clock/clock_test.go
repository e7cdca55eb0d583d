package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedReturnsInstalledInstant(t *testing.T) {
	at := MustParse("2022-01-01T00:00:00Z")
	c := NewFixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestFixedSetAndAdvance(t *testing.T) {
	c := NewFixed(MustParse("2022-01-01T00:00:00Z"))

	c.Set(MustParse("2022-02-01T00:00:00Z"))
	assert.Equal(t, MustParse("2022-02-01T00:00:00Z"), c.Now())

	next := c.Advance(24 * time.Hour)
	assert.Equal(t, MustParse("2022-02-02T00:00:00Z"), next)
	assert.Equal(t, next, c.Now())
}

func TestFixedNormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	c := NewFixed(time.Date(2022, 1, 1, 7, 0, 0, 0, loc))

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, MustParse("2022-01-01T00:00:00Z"), c.Now())
}

func TestSystemIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, System{}.Now().Location())
}

func TestFixedAdvanceConcurrently(t *testing.T) {
	c := NewFixed(MustParse("2022-01-01T00:00:00Z"))

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Minute)
		}()
	}
	wg.Wait()

	assert.Equal(t, MustParse("2022-01-01T01:04:00Z"), c.Now())
}
