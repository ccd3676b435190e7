package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/imaging"
	"github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/latent"
	"github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/logging"
	latentv1 "github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/rpc/latentv1"

	"github.com/klauspost/compress/gzhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type presetEntry struct {
	Name string `json:"name"`
	Area int64  `json:"area"`
}

type presetsResponse struct {
	Presets []presetEntry `json:"presets"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type gateway struct {
	client latentv1.PlannerClient
}

func main() {
	addr := envOrDefault("GATEWAY_ADDR", ":8084")
	plannerAddr := envOrDefault("PLANNER_ADDR", "planner:9092")
	logDir := envOrDefault("LOG_DIR", "/logs")

	if _, err := logging.Setup("gateway", logDir); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	log.Printf("starting gateway addr=%s planner=%s", addr, plannerAddr)

	conn, err := grpc.Dial(plannerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial planner at %s: %v", plannerAddr, err)
	}

	g := &gateway{client: latentv1.NewPlannerClient(conn)}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/plan", g.handlePlan)
	mux.HandleFunc("/v1/models", g.handleModels)
	mux.HandleFunc("/v1/presets", g.handlePresets)
	mux.HandleFunc("/v1/sweep", g.handleSweep)
	mux.HandleFunc("/v1/preview", g.handlePreview)
	mux.HandleFunc("/v1/health", g.handleHealth)

	log.Printf("gateway listening on %s", addr)
	if err := http.ListenAndServe(addr, logRequests(withCORS(gzhttp.GzipHandler(mux)))); err != nil {
		log.Fatalf("gateway stopped: %v", err)
	}
}

func (g *gateway) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	defer r.Body.Close()
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20+1))
	if err != nil {
		http.Error(w, "failed to read request", http.StatusBadRequest)
		return
	}
	if int64(len(payload)) > 1<<20 {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	var req latentv1.PlanRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp, err := g.client.PlanLatent(ctx, &req)
	if err != nil {
		writeRPCError(w, "plan", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (g *gateway) handleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp, err := g.client.ListModels(ctx, &latentv1.ListModelsRequest{})
	if err != nil {
		writeRPCError(w, "list models", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (g *gateway) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names := latent.Presets()
	entries := make([]presetEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, presetEntry{Name: name, Area: int64(latent.PresetArea(name))})
	}

	writeJSON(w, http.StatusOK, presetsResponse{Presets: entries})
}

func (g *gateway) handleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	req := &latentv1.SweepRequest{
		AspectRatio: q.Get("aspect"),
		ModelType:   q.Get("model"),
		UpscaleBy:   parseFloat(q.Get("upscale"), 0),
		BatchSize:   parseInt(q.Get("batch"), 0),
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	stream, err := g.client.SweepPresets(ctx, req)
	if err != nil {
		writeRPCError(w, "sweep", err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	for {
		event, err := stream.Recv()
		if err != nil {
			if err != io.EOF {
				log.Printf("sweep stream ended: %v", err)
			}
			return
		}
		payload, _ := json.Marshal(event)
		_, _ = w.Write([]byte("data: "))
		_, _ = w.Write(payload)
		_, _ = w.Write([]byte("\n\n"))
		flusher.Flush()
	}
}

func (g *gateway) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	req := &latentv1.PlanRequest{
		AspectRatio: q.Get("aspect"),
		Preset:      q.Get("preset"),
		Megapixels:  parseFloat(q.Get("mp"), 0),
		UpscaleBy:   parseFloat(q.Get("upscale"), 0),
		ModelType:   q.Get("model"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	plan, err := g.client.PlanLatent(ctx, req)
	if err != nil {
		writeRPCError(w, "preview", err)
		return
	}

	opts := imaging.PreviewOptions{
		Model:      plan.ModelType,
		BaseWidth:  plan.Width,
		BaseHeight: plan.Height,
	}
	if tiles := plan.Tiles; tiles != nil {
		opts.UpscaledWidth = tiles.UpscaledWidth
		opts.UpscaledHeight = tiles.UpscaledHeight
		opts.TileCols = tiles.Cols
		opts.TileRows = tiles.Rows
		opts.TileWidth = tiles.TileWidth
		opts.TileHeight = tiles.TileHeight
	}

	payload, err := imaging.RenderPreview(opts)
	if err != nil {
		log.Printf("render preview failed: %v", err)
		http.Error(w, "failed to render preview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (g *gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp, err := g.client.Health(ctx, &latentv1.HealthRequest{})
	if err != nil {
		writeRPCError(w, "health", err)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: resp.Status})
}

func writeRPCError(w http.ResponseWriter, op string, err error) {
	if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
		http.Error(w, st.Message(), http.StatusBadRequest)
		return
	}
	log.Printf("%s failed: %v", op, err)
	http.Error(w, "planner unavailable", http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("json encode error: %v", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloat(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
