package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/config"
	"github.com/tomz197/asteriods/internal/draw"
	"github.com/tomz197/asteriods/internal/logging"
	"github.com/tomz197/asteriods/internal/loop"
)

const (
	idleTimeout     = 2 * time.Minute
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg := config.LoadSSH()
	logger := logging.New(cfg.LogLevel)
	logger.Info("ssh config", "host", cfg.Host, "port", cfg.Port, "hostKey", cfg.HostKeyPath, "assets", cfg.AssetDir)

	// Loaded once; every session reads the same textures
	reg, err := asset.NewRegistry(asset.FileLoader{}, cfg.AssetDir)
	if err != nil {
		logger.Fatal("failed to load assets", "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			gameMiddleware(reg, logger),
			activeterm.Middleware(),
			wishlogging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs an independent world for each SSH session.
func gameMiddleware(reg *asset.Registry, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("new game session", "user", sess.User(), "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			tracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					tracker.update(win.Width, win.Height)
				}
			}()

			seed := uint64(time.Now().UnixNano())
			d := loop.NewDriver(loop.NewState(reg, rand.New(rand.NewPCG(seed, seed))))

			err := loop.RunTerminal(sess.Context(), sess, sess, d, loop.TerminalOptions{
				TermSizeFunc: tracker.getSize,
				IdleTimeout:  idleTimeout,
			})
			switch {
			case errors.Is(err, loop.ErrIdle):
				fmt.Fprintln(sess, "Disconnected after being idle.")
			case err != nil:
				logger.Warn("game error", "user", sess.User(), "err", err)
			}

			logger.Info("session ended", "user", sess.User())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
