package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifecycleRecorder records the order of service starts and stops
type lifecycleRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *lifecycleRecorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *lifecycleRecorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type recordingService struct {
	id         string
	startError error
	recorder   *lifecycleRecorder
}

func (s *recordingService) Start(ctx context.Context) error {
	s.recorder.record("start " + s.id)
	return s.startError
}

func (s *recordingService) Stop() {
	s.recorder.record("stop " + s.id)
}

func newRecordingServices(recorder *lifecycleRecorder, ids ...string) []*recordingService {
	services := make([]*recordingService, 0, len(ids))
	for _, id := range ids {
		services = append(services, &recordingService{id: id, recorder: recorder})
	}
	return services
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, 0, registry.Len())

	recorder := &lifecycleRecorder{}
	for _, s := range newRecordingServices(recorder, "store", "server") {
		registry.Register(s)
	}
	assert.Equal(t, 2, registry.Len())
	assert.Empty(t, recorder.Events())
}

func TestRegistry_StartAllThenStopAllInReverse(t *testing.T) {
	registry := NewRegistry()
	recorder := &lifecycleRecorder{}
	for _, s := range newRecordingServices(recorder, "store", "server", "janitor") {
		registry.Register(s)
	}

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()

	assert.Equal(t, []string{
		"start store", "start server", "start janitor",
		"stop janitor", "stop server", "stop store",
	}, recorder.Events())
}

func TestRegistry_StartAllErrorStopsStartedServices(t *testing.T) {
	registry := NewRegistry()
	recorder := &lifecycleRecorder{}
	services := newRecordingServices(recorder, "store", "server", "janitor")
	services[1].startError = errors.New("address in use")
	for _, s := range services {
		registry.Register(s)
	}

	err := registry.StartAll(context.Background())
	require.EqualError(t, err, "address in use")

	assert.Equal(t, []string{"start store", "start server", "stop store"}, recorder.Events())
}

func TestRegistry_StopAllIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	recorder := &lifecycleRecorder{}
	for _, s := range newRecordingServices(recorder, "store") {
		registry.Register(s)
	}

	registry.StopAll()
	assert.Empty(t, recorder.Events(), "nothing started, nothing to stop")

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()
	registry.StopAll()
	assert.Equal(t, []string{"start store", "stop store"}, recorder.Events())
}
