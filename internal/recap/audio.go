package recap

import (
	"sync"
)

// AudioController, oturuma eşlik eden arka plan müziğinin tutamacı.
// Oturum başına tam bir tane vardır ve Close anında serbest bırakılır.
type AudioController interface {
	Play() error
	Pause()
	Release()
	State() AudioState
}

type AudioState struct {
	TrackURL string  `json:"track_url"`
	Volume   float64 `json:"volume"`
	Loop     bool    `json:"loop"`
	Playing  bool    `json:"playing"`
	Released bool    `json:"-"`
}

// LoopingTrack, ses durumunu sunucu tarafında izleyen AudioController
// gerçeklemesi. Asıl çalma istemcide olur; frame'lerdeki durum alanı
// istemciye ne yapacağını söyler.
type LoopingTrack struct {
	mu    sync.Mutex
	state AudioState
}

func NewLoopingTrack(trackURL string, volume float64) *LoopingTrack {
	return &LoopingTrack{
		state: AudioState{
			TrackURL: trackURL,
			Volume:   volume,
			Loop:     true,
		},
	}
}

func (t *LoopingTrack) Play() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Released {
		return ErrAudioReleased
	}
	t.state.Playing = true
	return nil
}

// Pause, çalmayı durdurur; konum korunur, baştan başlamaz.
func (t *LoopingTrack) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Playing = false
}

func (t *LoopingTrack) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Playing = false
	t.state.Released = true
}

func (t *LoopingTrack) State() AudioState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}
