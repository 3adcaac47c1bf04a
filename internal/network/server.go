// Package network exposes the engine over TCP as newline-delimited JSON.
package network

import (
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/toysql/toydb/internal/engine"
	"github.com/toysql/toydb/internal/executor"
)

// Request is one client message. Exactly one of Query or CreateTable should
// be set; CreateTable exists because table creation is not part of the
// statement grammar.
type Request struct {
	Query       string       `json:"query,omitempty"`
	CreateTable *CreateTable `json:"create_table,omitempty"`
}

// CreateTable names a table and its documentation-only column list.
type CreateTable struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// Server serves one shared Engine to any number of connections. The engine
// itself provides no locking, so the server serializes every CreateTable
// and Execute call through a single mutex.
type Server struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// NewServer wraps an engine for concurrent use.
func NewServer(eng *engine.Engine) *Server {
	return &Server{eng: eng}
}

// Serve accepts connections until the listener is closed.
func (s *Server) Serve(listener net.Listener) error {
	slog.Info("accepting connections", "addr", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	// Use Decoder instead of Scanner for network streams
	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return // Connection closed gracefully
			}
			slog.Error("decode error", "error", err)
			_ = encoder.Encode(&executor.Result{Error: "invalid request format"})
			return
		}

		result := s.dispatch(&req)
		if err := encoder.Encode(result); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}

func (s *Server) dispatch(req *Request) *executor.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.CreateTable != nil {
		if err := s.eng.CreateTable(req.CreateTable.Name, req.CreateTable.Columns); err != nil {
			return &executor.Result{Error: err.Error()}
		}
		return &executor.Result{Message: "CREATE TABLE"}
	}

	result, err := s.eng.Execute(req.Query)
	if err != nil {
		return &executor.Result{Error: err.Error()}
	}
	return result
}
