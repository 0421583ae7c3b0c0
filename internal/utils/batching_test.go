package utils

import (
	"sync"
	"testing"
)

func TestBatchBufferAddAndClear(t *testing.T) {
	b := NewBatchBuffer[int]()

	if b.HasData() {
		t.Error("fresh buffer reports data")
	}
	if got := b.GetAndClear(); got != nil {
		t.Errorf("GetAndClear on empty buffer = %v, want nil", got)
	}

	b.Add(1)
	b.Add(2)
	b.Add(3)

	if b.Size() != 3 {
		t.Errorf("size = %d, want 3", b.Size())
	}
	if !b.HasData() {
		t.Error("buffer with items reports no data")
	}

	batch := b.GetAndClear()
	if len(batch) != 3 {
		t.Errorf("batch = %v, want 3 items", batch)
	}
	if b.Size() != 0 {
		t.Errorf("size after clear = %d, want 0", b.Size())
	}
}

func TestBatchBufferConcurrentAdds(t *testing.T) {
	b := NewBatchBuffer[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Add(n)
		}(i)
	}
	wg.Wait()

	if b.Size() != 100 {
		t.Errorf("size = %d, want 100", b.Size())
	}
}
