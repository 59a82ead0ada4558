// Package terminal supplies the host-side keyboard source and terminal
// sink the ACIA talks to: either a live controlling terminal put into raw
// mode, or a data-injection file replayed byte by byte. Both translate LF
// to CR on read; the live source also holds Ctrl-R/Ctrl-X out of the
// emulated byte stream, while a data file's bytes are served unfiltered.
// Mirrors the original firmware's terminal.c.
package terminal

import (
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/term/termios"
)

const (
	ctrlR = 0x12
	ctrlX = 0x18
	lf    = 0x0A
	cr    = 0x0D
)

// pollInterval matches the original's stdin_polling_interval: polling the
// keyboard as often as the 6502 itself runs would burn a full host core for
// no benefit the emulated program could ever perceive.
const pollInterval = 20 * time.Millisecond

// Source is a keyboard source backed either by a live terminal (poller
// goroutine reading one byte at a time) or by a pre-read data file. It
// implements acia.KeyboardSource.
type Source struct {
	mu      sync.Mutex
	pending []byte // at most one buffered byte in live mode
	resetCh chan struct{}
	quitCh  chan struct{}

	fileData []byte // remaining bytes in data-injection mode
	fileMode bool

	in       *os.File
	oldAttr  syscall.Termios
	restored bool
}

// NewLiveSource puts in into raw mode and starts a background poller that
// reads one byte every pollInterval, matching the original's dedicated
// stdin-polling thread. Call Close to restore the terminal.
func NewLiveSource(in *os.File) (*Source, error) {
	s := &Source{
		in:      in,
		resetCh: make(chan struct{}, 1),
		quitCh:  make(chan struct{}, 1),
	}

	var oldAttr, rawAttr syscall.Termios
	if err := termios.Tcgetattr(in.Fd(), &oldAttr); err != nil {
		return nil, err
	}
	rawAttr = oldAttr
	termios.Cfmakeraw(&rawAttr)
	if err := termios.Tcsetattr(in.Fd(), termios.TCSANOW, &rawAttr); err != nil {
		return nil, err
	}
	s.oldAttr = oldAttr

	go s.poll()
	return s, nil
}

// NewDataFileSource reads path fully and serves its bytes in order. Once
// exhausted, Ready reports false forever; the original closes the file and
// reverts to interactive input, but a Source's keyboard role here is fixed
// for the process lifetime, so the driver is expected to fall back to a
// live source itself if interactive continuation is wanted.
func NewDataFileSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Source{fileData: data, fileMode: true}, nil
}

func (s *Source) poll() {
	for {
		time.Sleep(pollInterval)

		buf := make([]byte, 1)
		n, err := s.in.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		switch buf[0] {
		case ctrlR:
			select {
			case s.resetCh <- struct{}{}:
			default:
			}
		case ctrlX:
			select {
			case s.quitCh <- struct{}{}:
			default:
			}
		default:
			b := buf[0]
			if b == lf {
				b = cr
			}
			for {
				s.mu.Lock()
				full := len(s.pending) > 0
				if !full {
					s.pending = append(s.pending, b)
				}
				s.mu.Unlock()
				if !full {
					break
				}
				time.Sleep(pollInterval)
			}
		}
	}
}

// Ready reports whether a byte is available to read.
func (s *Source) Ready() bool {
	if s.fileMode {
		return len(s.fileData) > 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

// ReadByte consumes and returns the next available byte, or 0 if none is
// ready. This mirrors the MC6850's tolerance of a read racing the host: a
// ReadByte with nothing pending is defined, not an error.
func (s *Source) ReadByte() byte {
	if s.fileMode {
		if len(s.fileData) == 0 {
			return 0
		}
		b := s.fileData[0]
		s.fileData = s.fileData[1:]
		if b == lf {
			b = cr
		}
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b
}

// ResetRequested reports whether Ctrl-R has been seen since the last call.
func (s *Source) ResetRequested() bool {
	select {
	case <-s.resetCh:
		return true
	default:
		return false
	}
}

// QuitRequested reports whether Ctrl-X has been seen since the last call.
func (s *Source) QuitRequested() bool {
	select {
	case <-s.quitCh:
		return true
	default:
		return false
	}
}

// Close restores the terminal's original attributes, if this Source put it
// into raw mode.
func (s *Source) Close() {
	if s.fileMode || s.restored {
		return
	}
	termios.Tcsetattr(s.in.Fd(), termios.TCSANOW, &s.oldAttr)
	s.restored = true
}

// Sink writes transmitted bytes to w, flushing after every byte as the
// original's write_terminal does with fflush.
type Sink struct {
	w io.Writer
}

// NewSink wraps w as a terminal sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteByte implements acia.TerminalSink.
func (s *Sink) WriteByte(b byte) {
	s.w.Write([]byte{b})
	if f, ok := s.w.(interface{ Sync() error }); ok {
		f.Sync()
	}
}
