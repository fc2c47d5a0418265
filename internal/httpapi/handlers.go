// Package httpapi is the HTTP adapter over the Game facade: one
// handler per operation, JSON in and out, errors surfaced as a
// {"error": "..."} body alongside a non-2xx status.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/facade"
	"github.com/sudokuforge/engine/internal/ports"
	"github.com/sudokuforge/engine/internal/validator"
)

var (
	errMethodNotAllowed = errors.New("method not allowed")
	errCatalogDisabled  = errors.New("no catalog configured")
	errMissingID        = errors.New("missing id parameter")
)

// Handler wires the HTTP surface to a Game facade, an optional
// puzzle catalog, and the fast conflict validator.
type Handler struct {
	Game      *facade.Game
	Catalog   ports.Catalog
	Validator *validator.FastValidator
}

// New returns a Handler ready to Register on a mux.
func New(gm *facade.Game, cat ports.Catalog) *Handler {
	return &Handler{Game: gm, Catalog: cat, Validator: validator.New()}
}

// Register mounts every /api/* route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/clear", h.handleClear)
	mux.HandleFunc("/api/put", h.handlePut)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/board", h.handleBoard)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseDifficulty(s string) ports.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return ports.Medium
	case "hard":
		return ports.Hard
	default:
		return ports.Easy
	}
}

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type statsResp struct {
	DurationMs int64 `json:"durationMs,omitempty"`
	Nodes      int   `json:"nodes,omitempty"`
}

type generateResp struct {
	Board *board.Board `json:"board"`
	Stats statsResp    `json:"stats"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req generateReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stats, err := h.Game.NewGame(r.Context(), seed, parseDifficulty(req.Difficulty))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Board: h.Game.Board(),
		Stats: statsResp{DurationMs: stats.Duration.Milliseconds(), Nodes: stats.Nodes},
	})
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	h.Game.Clear()
	writeJSON(w, http.StatusOK, map[string]*board.Board{"board": h.Game.Board()})
}

type putReq struct {
	X    int   `json:"x"`
	Y    int   `json:"y"`
	D    uint8 `json:"d"`
}
type putResp struct {
	OK       bool   `json:"ok"`
	Conflict string `json:"conflict,omitempty"`
}

func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req putReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ok, reason, err := h.Game.Put(req.X, req.Y, req.D)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, putResp{OK: ok, Conflict: reason.String()})
}

type solveResp struct {
	OK    bool         `json:"ok"`
	Board *board.Board `json:"board,omitempty"`
	Stats statsResp    `json:"stats"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	ok, stats, err := h.Game.Solve(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp := solveResp{OK: ok, Stats: statsResp{DurationMs: stats.Duration.Milliseconds(), Nodes: stats.Nodes}}
	if ok {
		resp.Board = h.Game.Board()
	}
	writeJSON(w, http.StatusOK, resp)
}

type validateResp struct {
	OK        bool                 `json:"ok"`
	Conflicts []validator.Conflict `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ok, conflicts, err := h.Validator.Validate(r.Context(), h.Game.Board())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]*board.Board{"board": h.Game.Board()})
}

type saveReq struct {
	Name string `json:"name,omitempty"`
}
type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		writeError(w, http.StatusNotImplemented, errCatalogDisabled)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req saveReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	p := &ports.Puzzle{
		Name:       req.Name,
		Difficulty: h.Game.Difficulty(),
		Board:      h.Game.Board(),
		CreatedAt:  time.Now().UnixNano(),
	}
	if err := h.Catalog.Save(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		writeError(w, http.StatusNotImplemented, errCatalogDisabled)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, errMissingID)
		return
	}
	p, err := h.Catalog.Load(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	h.Game.Clear()
	*h.Game.Board() = *p.Board
	writeJSON(w, http.StatusOK, map[string]*board.Board{"board": h.Game.Board()})
}

type listResp struct {
	Puzzles []ports.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		writeError(w, http.StatusNotImplemented, errCatalogDisabled)
		return
	}
	puzzles, err := h.Catalog.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: puzzles})
}
