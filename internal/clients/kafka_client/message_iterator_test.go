package kafka_client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

type readResult struct {
	msg *kafka.Message
	err error
}

type fakeReader struct {
	responses []readResult
	calls     int
}

func (f *fakeReader) ReadMessage(timeout time.Duration) (*kafka.Message, error) {
	if f.calls >= len(f.responses) {
		return nil, kafka.NewError(kafka.ErrTimedOut, "timed out", false)
	}
	r := f.responses[f.calls]
	f.calls++
	return r.msg, r.err
}

func timedOut() readResult {
	return readResult{err: kafka.NewError(kafka.ErrTimedOut, "timed out", false)}
}

func TestNextWaitsThroughIdleTimeouts(t *testing.T) {
	want := &kafka.Message{Value: []byte(`{"request_id":"r1"}`)}

	// Far more consecutive timeouts than the retry budget allows for real
	// errors: an idle topic must not terminate the iterator.
	responses := make([]readResult, 0, MAX_RETRIES*4+1)
	for i := 0; i < MAX_RETRIES*4; i++ {
		responses = append(responses, timedOut())
	}
	responses = append(responses, readResult{msg: want})

	it := &KafkaMessageIterator{
		consumer: &fakeReader{responses: responses},
		ctx:      context.Background(),
	}

	got, err := it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v, want message after idle stretch", err)
	}
	if got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
}

func TestNextAbortsWhenAllBrokersDown(t *testing.T) {
	it := &KafkaMessageIterator{
		consumer: &fakeReader{responses: []readResult{
			{err: kafka.NewError(kafka.ErrAllBrokersDown, "all brokers down", true)},
		}},
		ctx: context.Background(),
	}

	if _, err := it.Next(); err == nil {
		t.Fatal("Next() = nil error, want brokers-down abort")
	}
}

func TestNextRecoversFromTransientError(t *testing.T) {
	want := &kafka.Message{Value: []byte("payload")}

	it := &KafkaMessageIterator{
		consumer: &fakeReader{responses: []readResult{
			{err: errors.New("transient read failure")},
			timedOut(),
			{msg: want},
		}},
		ctx: context.Background(),
	}

	got, err := it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v, want recovery after transient failure", err)
	}
	if got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
}

func TestNextStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := &KafkaMessageIterator{
		consumer: &fakeReader{},
		ctx:      ctx,
	}

	if _, err := it.Next(); !errors.Is(err, context.Canceled) {
		t.Fatalf("Next() error = %v, want context.Canceled", err)
	}
}
