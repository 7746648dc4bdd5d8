package realtime_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cambiove/exchange-api/internal/realtime"
)

func TestInbox_MergeDeduplicatesByID(t *testing.T) {
	inbox := realtime.NewInbox[string]()

	assert.True(t, inbox.Merge("m1", "hello"))
	assert.True(t, inbox.Merge("m2", "world"))

	// At-least-once delivery: the same event arrives again.
	assert.False(t, inbox.Merge("m1", "hello"))
	assert.False(t, inbox.Merge("m1", "hello (different payload, same id)"))

	assert.Equal(t, 2, inbox.Len())
	assert.Equal(t, []string{"hello", "world"}, inbox.Items())
}

func TestInbox_KeepsFirstSeenOrder(t *testing.T) {
	inbox := realtime.NewInbox[int]()

	// Redelivery out of order must not reorder the merged view.
	inbox.Merge("a", 1)
	inbox.Merge("b", 2)
	inbox.Merge("a", 99)
	inbox.Merge("c", 3)
	inbox.Merge("b", 99)

	assert.Equal(t, []int{1, 2, 3}, inbox.Items())
}

func TestInbox_ConcurrentMerge(t *testing.T) {
	inbox := realtime.NewInbox[string]()
	ids := make([]string, 50)
	for i := range ids {
		ids[i] = uuid.NewString()
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range ids {
				inbox.Merge(id, id)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(ids), inbox.Len())
}

func TestTopicNames(t *testing.T) {
	orderID := uuid.New()
	userID := uuid.New()

	assert.Equal(t, "order-"+orderID.String(), realtime.OrderTopic(orderID))
	assert.Equal(t, "user-"+userID.String(), realtime.UserTopic(userID))
	assert.Equal(t, "admin", realtime.TopicAdmin)
	assert.Equal(t, "rates", realtime.TopicRates)
}
