package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/coder/websocket"
	"github.com/skip2/go-qrcode"

	"github.com/ddiliberto123/threejs-project/internal/board"
	"github.com/ddiliberto123/threejs-project/internal/protocol"
	"github.com/ddiliberto123/threejs-project/internal/web/views"
	"github.com/ddiliberto123/threejs-project/internal/ws"
)

type server struct {
	display  map[board.Terrain]board.TerrainDisplay
	hub      *ws.Hub
	sequence uint64
}

func newServer(display map[board.Terrain]board.TerrainDisplay) *server {
	return &server{display: display, hub: ws.NewHub()}
}

// generateBoard deals a layout for the given seed and packages it for the
// renderer. A fallback never fails the request; it is logged and flagged
// on the snapshot.
func (s *server) generateBoard(seed int64) protocol.BoardSnapshot {
	rng := rand.New(rand.NewPCG(uint64(seed), seedStream))
	gen := board.NewGenerator(rng)
	gen.OnFallback = func(attempts int) {
		log.Printf("board generation fell back to an unvalidated layout after %d attempts (seed %d)", attempts, seed)
	}
	layout, result := gen.Generate()
	return buildSnapshot(layout, result, seed, s.display)
}

// seedStream is the fixed second PCG word, so a seed alone reproduces a board.
const seedStream = 0x9e3779b97f4a7c15

func seedFromRequest(r *http.Request) int64 {
	if v := r.URL.Query().Get("seed"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return rand.Int64()
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	snapshot := s.generateBoard(seedFromRequest(r))
	if err := views.IndexPage(snapshot).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.Add(conn)
	log.Printf("renderer connected (%d active)", s.hub.Count())
	s.broadcastRendererCount()

	go func(c *websocket.Conn) {
		defer func() {
			s.hub.Remove(c)
			_ = c.Close(websocket.StatusNormalClosure, "")
			s.broadcastRendererCount()
		}()
		for {
			_, data, err := c.Read(context.Background())
			if err != nil {
				return
			}
			var env protocol.IntentEnvelope
			if err := json.Unmarshal(data, &env); err != nil {
				continue
			}
			switch env.Type {
			case "RequestNewBoard":
				var req protocol.RequestNewBoard
				if len(env.Payload) > 0 {
					if err := json.Unmarshal(env.Payload, &req); err != nil {
						continue
					}
				}
				seed := rand.Int64()
				if req.Seed != nil {
					seed = *req.Seed
				}
				s.broadcastBoard(seed)
			default:
			}
		}
	}(conn)
}

// nextEnvelope stamps a patch with the next sequence number; the event ID
// mirrors the sequence so the renderer can report which patch it last saw.
func (s *server) nextEnvelope(patchType string, payload any) protocol.PatchEnvelope {
	seq := atomic.AddUint64(&s.sequence, 1)
	return protocol.PatchEnvelope{
		Sequence: seq,
		EventID:  int64(seq),
		Type:     patchType,
		Payload:  payload,
	}
}

func (s *server) broadcastPatch(patchType string, payload any) {
	b, err := json.Marshal(s.nextEnvelope(patchType, payload))
	if err != nil {
		log.Printf("failed to marshal %s: %v", patchType, err)
		return
	}
	s.hub.Broadcast(context.Background(), b)
}

func (s *server) broadcastBoard(seed int64) {
	s.broadcastPatch("BoardRegenerated", protocol.BoardRegenerated{Board: s.generateBoard(seed)})
}

func rendererVariables(count int) protocol.VariablesChanged {
	return protocol.VariablesChanged{Entries: map[string]any{"renderers": count}}
}

// broadcastRendererCount tells every open page how many renderers are
// looking at the board, as connections come and go.
func (s *server) broadcastRendererCount() {
	s.broadcastPatch("VariablesChanged", rendererVariables(s.hub.Count()))
}

// handleShareQR renders a QR code for the seed-pinned board URL, so a
// board on screen can be pulled up on another device.
func (s *server) handleShareQR(w http.ResponseWriter, r *http.Request) {
	seed := seedFromRequest(r)
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	shareURL := fmt.Sprintf("%s://%s/?seed=%d", scheme, r.Host, seed)

	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
