//go:build portaudio

package hw

import "github.com/gordonklaus/portaudio"

// PortaudioStream wraps a full-duplex PortAudio stream carrying one
// real-valued IQ sample pair (interleaved I/Q as stereo) per channel at
// a time, for the host build of the sample-rate loop.
type PortaudioStream struct {
	stream *portaudio.Stream
	in     []float32
	out    []float32
}

// OpenPortaudioStream opens the default full-duplex device at fs with a
// 2-channel (I/Q) input and output, framesPerBuffer samples per callback
// poll.
func OpenPortaudioStream(fs float64, framesPerBuffer int) (*PortaudioStream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	p := &PortaudioStream{
		in:  make([]float32, framesPerBuffer*2),
		out: make([]float32, framesPerBuffer*2),
	}
	stream, err := portaudio.OpenDefaultStream(2, 2, fs, framesPerBuffer, p.in, p.out)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	p.stream = stream
	return p, nil
}

// Start begins streaming.
func (p *PortaudioStream) Start() error { return p.stream.Start() }

// Stop halts streaming.
func (p *PortaudioStream) Stop() error { return p.stream.Stop() }

// Close stops the stream and releases PortAudio.
func (p *PortaudioStream) Close() error {
	err := p.stream.Close()
	portaudio.Terminate()
	return err
}

// ReadIQ blocks for one buffer and decodes it into (I, Q) sample pairs.
func (p *PortaudioStream) ReadIQ() ([]float64, []float64, error) {
	if err := p.stream.Read(); err != nil {
		return nil, nil, err
	}
	n := len(p.in) / 2
	i := make([]float64, n)
	q := make([]float64, n)
	for k := 0; k < n; k++ {
		i[k] = float64(p.in[2*k])
		q[k] = float64(p.in[2*k+1])
	}
	return i, q, nil
}

// WriteIQ encodes (I, Q) sample pairs and blocks until the buffer is
// written.
func (p *PortaudioStream) WriteIQ(i, q []float64) error {
	n := len(i)
	if n > len(p.out)/2 {
		n = len(p.out) / 2
	}
	for k := 0; k < n; k++ {
		p.out[2*k] = float32(i[k])
		p.out[2*k+1] = float32(q[k])
	}
	return p.stream.Write()
}
