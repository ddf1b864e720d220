package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	trie "github.com/sarthakjha889/go-trie-dictionary"
	"github.com/sarthakjha889/go-trie-dictionary/internal/logger"
)

// Server answers dictionary requests read from an input stream.
type Server struct {
	dict         trie.Dictionary
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	limit        int
	requestCount int
	logger       *log.Logger
}

// NewServer creates a server reading requests from r and writing responses to w.
// limit caps the number of words in a reply when a request does not set one;
// zero means unlimited.
func NewServer(dict trie.Dictionary, r io.Reader, w io.Writer, limit int) *Server {
	return &Server{
		dict:   dict,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		limit:  limit,
		logger: logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input is exhausted.
// It returns nil on a clean end of input.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(Response{OK: true, Status: "ready"}); err != nil {
		return err
	}
	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requestCount++
		if err := s.send(s.handle(req)); err != nil {
			return err
		}
	}
}

// handle runs a single request against the dictionary.
func (s *Server) handle(req Request) Response {
	start := time.Now()
	resp := Response{ID: req.ID}

	switch req.Op {
	case OpSearch:
		resp.OK = s.dict.Search(req.Word)
	case OpInsert:
		resp.OK = s.dict.Insert(req.Word)
	case OpDelete:
		resp.OK = s.dict.Delete(req.Word)
	case OpComplete:
		resp.OK = true
		resp.Words = s.capped(s.dict.AutoSuggest(req.Word), req.Limit)
	case OpAll:
		resp.OK = true
		resp.Words = s.capped(s.dict.AllWords(), req.Limit)
	case OpSpell:
		words, err := s.dict.SpellingSuggestions(req.Word)
		if err != nil {
			resp.Error = err.Error()
			break
		}
		resp.OK = true
		resp.Words = s.capped(words, req.Limit)
	case OpLen:
		resp.OK = true
		resp.Count = s.dict.Len()
	case OpHealth:
		resp.OK = true
		resp.Status = "ok"
	default:
		resp.Error = fmt.Sprintf("unknown op: %q", req.Op)
	}

	if req.Op != OpLen {
		resp.Count = len(resp.Words)
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	s.logger.Debug("Handled request", "id", req.ID, "op", req.Op, "word", req.Word, "ok", resp.OK, "took", time.Since(start))
	return resp
}

// capped trims words to the request limit, falling back to the server default.
func (s *Server) capped(words []string, limit int) []string {
	if limit <= 0 {
		limit = s.limit
	}
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}

func (s *Server) send(resp Response) error {
	if err := s.enc.Encode(&resp); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
