package scanner

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// Decoder is the boundary to whatever produces decoded barcode text. The
// camera widget on the phone lives behind the same contract on the client
// side; here it covers station-attached hardware.
type Decoder interface {
	Start(onDecode func(code string), onError func(err error)) error
	Stop() error
}

// WedgeDecoder reads line-delimited codes from a stream. USB barcode
// scanners in keyboard-wedge mode type the code followed by Enter, so a
// station can feed stdin straight into the scan pipeline.
type WedgeDecoder struct {
	Input io.Reader

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

func NewWedgeDecoder(input io.Reader) *WedgeDecoder {
	return &WedgeDecoder{Input: input}
}

func (d *WedgeDecoder) Start(onDecode func(code string), onError func(err error)) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = true
	d.stop = make(chan struct{})
	stop := d.stop
	d.mu.Unlock()

	go func() {
		reader := bufio.NewScanner(d.Input)
		for reader.Scan() {
			select {
			case <-stop:
				return
			default:
			}

			code := strings.TrimSpace(reader.Text())
			if code == "" {
				// Blank lines are the wedge equivalent of a failed frame
				// decode: ignored, the loop keeps listening.
				continue
			}
			onDecode(code)
		}

		if err := reader.Err(); err != nil && onError != nil {
			onError(err)
		}
	}()

	return nil
}

func (d *WedgeDecoder) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return nil
	}
	d.running = false
	close(d.stop)
	return nil
}
