package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/vimy/nub-core/agent"
	"github.com/nstehr/vimy/nub-core/config"
	"github.com/nstehr/vimy/nub-core/ipc"
	"github.com/nstehr/vimy/nub-core/model"
	"github.com/nstehr/vimy/nub-core/rules"
)

const banner = `
███╗   ██╗██╗   ██╗██████╗
████╗  ██║██║   ██║██╔══██╗
██╔██╗ ██║██║   ██║██████╔╝
██║╚██╗██║██║   ██║██╔══██╗
██║ ╚████║╚██████╔╝██████╔╝
╚═╝  ╚═══╝ ╚═════╝ ╚═════╝

Per-Turn Arena Tactics`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	board, err := config.LoadBoard(cfg.MapPath)
	if err != nil {
		slog.Error("failed to load board", "path", cfg.MapPath, "error", err)
		os.Exit(1)
	}

	// Fail at startup rather than on the first connection if the chain is broken.
	if _, err := rules.NewEngine(rules.DefaultRules(), rules.NewPicker(cfg.Seed)); err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(1)
	}

	slog.Info("starting nub", "board", board.Size, "spawnCells", len(board.SpawnLocations()), "seed", cfg.Seed)

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(cfg.SocketPath); err != nil {
		slog.Error("failed to clean up socket", "path", cfg.SocketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", cfg.SocketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", cfg.SocketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(cfg.SocketPath)

	slog.Info("listening on domain socket", "path", cfg.SocketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		seed := cfg.Seed
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn, board, seed)
			if seed != 0 {
				seed++
			}
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

// handleConn gives each session its own engine, since pickers are not
// safe to share between goroutines.
func handleConn(conn net.Conn, board model.Board, seed uint64) {
	engine, err := rules.NewEngine(rules.DefaultRules(), rules.NewPicker(seed))
	if err != nil {
		slog.Error("failed to build engine", "error", err)
		conn.Close()
		return
	}
	c := ipc.NewConnection(conn, nil)
	a := agent.New(board, engine)
	c.RegisterHandler(ipc.TypeHello, a.HandleHello)
	c.RegisterHandler(ipc.TypeTurn, a.HandleTurn)
	c.ReadLoop()
}
