package wellness

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecordIgnoresEmptyTopics(t *testing.T) {
	mem := NewMemory()
	mem.Record(nil)
	mem.Record([]Topic{})
	assert.Equal(t, 0, mem.Len())

	_, ok := mem.LastSummary()
	assert.False(t, ok)
}

func TestMemoryRecordJoinsTopics(t *testing.T) {
	mem := NewMemory()
	mem.Record([]Topic{TopicAnxiety, TopicStudy})
	last, ok := mem.LastSummary()
	require.True(t, ok)
	assert.Equal(t, "anxiety, study", last)
}

func TestMemoryKeepsMostRecentEight(t *testing.T) {
	mem := &Memory{}
	batches := [][]Topic{
		{TopicStress},
		{TopicAnxiety},
		{TopicDepression},
		{TopicSleep},
		{TopicLoneliness},
		{TopicStudy},
		{TopicWork},
		{TopicStress, TopicStudy},
		{TopicAnxiety, TopicWork},
	}
	for idx, topics := range batches {
		mem.Record(topics)
		want := idx + 1
		if want > MemoryCapacity {
			want = MemoryCapacity
		}
		require.Equal(t, want, mem.Len())
	}

	last, ok := mem.LastSummary()
	require.True(t, ok)
	assert.Equal(t, "anxiety, work", last)

	snapshot := mem.Snapshot()
	assert.Len(t, snapshot, MemoryCapacity)
	assert.NotContains(t, snapshot, "stress")
	assert.Equal(t, "anxiety", snapshot[0])
}

func TestMemoryConcurrentRecord(t *testing.T) {
	mem := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mem.Record([]Topic{Topic("t" + strconv.Itoa(i))})
			_, _ = mem.LastSummary()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, MemoryCapacity, mem.Len())
}

func TestMemoryReset(t *testing.T) {
	mem := NewMemory()
	mem.Record([]Topic{TopicSleep})
	mem.Reset()
	assert.Equal(t, 0, mem.Len())
}
