package driver

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pion/yuyv/pkg/io/video"
	"github.com/pion/yuyv/pkg/prop"
)

func wrapAdapter(a Adapter, info Info) Driver {
	recorder, ok := a.(VideoRecorder)
	if !ok {
		return nil
	}

	return &adapterWrapper{
		Adapter:  a,
		recorder: recorder,
		id:       uuid.NewString(),
		info:     info,
		state:    StateClosed,
	}
}

type adapterWrapper struct {
	Adapter
	recorder VideoRecorder
	id       string
	info     Info
	mu       sync.Mutex
	state    State
}

func (w *adapterWrapper) ID() string {
	return w.id
}

func (w *adapterWrapper) Info() Info {
	return w.info
}

func (w *adapterWrapper) Status() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *adapterWrapper) Open() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Update(StateOpened, w.Adapter.Open)
}

func (w *adapterWrapper) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Update(StateClosed, w.Adapter.Close)
}

func (w *adapterWrapper) Properties() []prop.Media {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateClosed {
		return nil
	}

	p := w.Adapter.Properties()
	for i := range p {
		p[i].DeviceID = w.id
	}
	return p
}

// VideoRecord starts the underlying recorder. If the recorder fails, the
// adapter is closed so that the driver can be opened again.
func (w *adapterWrapper) VideoRecord(p prop.Media) (video.Reader, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var r video.Reader
	err := w.state.Update(StateRunning, func() error {
		var err error
		r, err = w.recorder.VideoRecord(p)
		return err
	})
	if err != nil && w.state != StateClosed && w.state != StateRunning {
		if closeErr := w.state.Update(StateClosed, w.Adapter.Close); closeErr != nil {
			return nil, fmt.Errorf("%w (and failed to close: %v)", err, closeErr)
		}
	}
	return r, err
}
