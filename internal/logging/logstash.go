// Package logging mirrors the process log stream to a Logstash TCP input.
package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// Logstash is an io.Writer that forwards newline-delimited log entries to a
// Logstash TCP input. Writes never block on a broken pipe: while Logstash is
// unreachable, entries are dropped and reconnects are rate-limited.
type Logstash struct {
	addr string
	cfg  Config

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

// Config tunes the connection behaviour. Zero values take the defaults.
type Config struct {
	DialTimeout   time.Duration // default 2s
	WriteTimeout  time.Duration // default 1s
	RetryInterval time.Duration // cool-down after a failure, default 5s
}

func NewLogstash(addr string, cfg Config) (*Logstash, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 5 * time.Second
	}
	return &Logstash{addr: addr, cfg: cfg}, nil
}

// Write implements io.Writer. It always reports the full length as written so
// a multi-writer setup never fails the primary log destination.
func (l *Logstash) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p))
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, io.ErrClosedPipe
	}
	if l.dialLocked() != nil {
		return len(p), nil
	}

	_ = l.conn.SetWriteDeadline(time.Now().Add(l.cfg.WriteTimeout))
	if _, err := l.conn.Write(data); err != nil {
		l.dropConnLocked()
		return len(p), nil
	}
	return len(p), nil
}

func (l *Logstash) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if l.conn == nil {
		return nil
	}
	err := l.conn.Close()
	l.conn = nil
	return err
}

func (l *Logstash) dialLocked() error {
	if l.conn != nil {
		return nil
	}
	now := time.Now()
	if now.Before(l.nextRetry) {
		return errors.New("logstash: retry cooldown in effect")
	}
	conn, err := net.DialTimeout("tcp", l.addr, l.cfg.DialTimeout)
	if err != nil {
		l.nextRetry = now.Add(l.cfg.RetryInterval)
		return err
	}
	l.conn = conn
	l.nextRetry = time.Time{}
	return nil
}

func (l *Logstash) dropConnLocked() {
	if l.conn != nil {
		_ = l.conn.Close()
		l.conn = nil
	}
	l.nextRetry = time.Now().Add(l.cfg.RetryInterval)
}
