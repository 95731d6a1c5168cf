package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/miretskiy/osviz/catalog"
	"github.com/miretskiy/osviz/scenario"
)

const maxScenarioBytes = 1 << 20

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

type server struct {
	index *template.Template
}

func (srv *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.serveHome)
	mux.HandleFunc("/ws", handleWebSocket)
	mux.HandleFunc("/api/run", handleRun)
	mux.HandleFunc("/api/algorithms", handleAlgorithms)
	mux.HandleFunc("/api/scenario", handleScenario)
	mux.HandleFunc("/quitquitquit", quitHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	// Wrap connection with mutex for safe concurrent writes
	safeConn := &safeConn{Conn: conn}

	log.Println("Client connected")
	promMetrics.activeSessions.Inc()
	defer promMetrics.activeSessions.Dec()

	state := newSession()
	if err := safeConn.WriteJSON(state.frame()); err != nil {
		log.Printf("Error sending status: %v", err)
		return
	}

	go playLoop(safeConn, state)

	// Handle messages from client
	for {
		var msg ClientMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			break
		}

		log.Printf("Received command: %s", msg.Type)

		switch msg.Type {
		case "load":
			sc := msg.Scenario
			if sc == nil {
				writeError(safeConn, errors.New("load requires a scenario"))
				continue
			}
			out, err := state.load(r.Context(), sc, msg.Algorithm)
			if err != nil {
				writeError(safeConn, err)
				continue
			}
			log.Printf("Scenario loaded: %s %v", out.Family, out.Algorithms)
			safeConn.WriteJSON(ServerMessage{Type: "status", Outcome: out})
			safeConn.WriteJSON(state.frame())

		case "select":
			if err := state.selectAlgorithm(msg.Algorithm); err != nil {
				writeError(safeConn, err)
				continue
			}
			safeConn.WriteJSON(state.frame())

		default:
			frame, err := state.control(msg)
			if err != nil {
				writeError(safeConn, err)
				continue
			}
			safeConn.WriteJSON(frame)
		}
	}

	// Clean up
	state.stop()
	log.Println("Client disconnected")
}

func handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sc scenario.Scenario
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScenarioBytes)).Decode(&sc); err != nil {
		http.Error(w, fmt.Sprintf("Invalid scenario: %v", err), http.StatusBadRequest)
		return
	}

	out, err := sc.Run(r.Context())
	if err != nil {
		promMetrics.runErrors.Inc()
		status := http.StatusInternalServerError
		var verr *scenario.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	updatePrometheusMetrics(out)
	writeJSON(w, out)
}

func handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	if c := q.Get("category"); c != "" {
		cat, err := catalog.ParseCategory(c)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if id := q.Get("id"); id != "" {
			info, ok := catalog.Lookup(cat, id)
			if !ok {
				http.Error(w, fmt.Sprintf("Unknown algorithm: %s", id), http.StatusNotFound)
				return
			}
			writeJSON(w, info)
			return
		}
		writeJSON(w, catalog.ByCategory(cat))
		return
	}
	if q.Get("id") != "" {
		http.Error(w, "id requires category", http.StatusBadRequest)
		return
	}

	writeJSON(w, struct {
		Categories []catalog.CategoryInfo                       `json:"categories"`
		Algorithms map[catalog.Category][]catalog.AlgorithmInfo `json:"algorithms"`
	}{catalog.Categories(), catalog.All()})
}

// handleScenario returns the preset of ?family=, or a generated workload when
// ?random=true (with optional seed, locality and size)
func handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	family, err := scenario.ParseFamily(q.Get("family"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if q.Get("random") != "true" {
		writeJSON(w, scenario.DefaultScenario(family))
		return
	}

	opts := scenario.RandomOptions{}
	if opts.Locality, err = scenario.ParseLocality(q.Get("locality")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			http.Error(w, fmt.Sprintf("Invalid seed: %s", v), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("size"); v != "" {
		if opts.Size, err = strconv.Atoi(v); err != nil {
			http.Error(w, fmt.Sprintf("Invalid size: %s", v), http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, scenario.RandomScenario(family, opts))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func (srv *server) serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := srv.index.Execute(w, catalog.Categories()); err != nil {
		log.Printf("Error executing template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func quitHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("🛑 Shutdown requested via /quitquitquit")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Server shutting down...")

	go func() {
		time.Sleep(100 * time.Millisecond)
		log.Println("👋 Server stopped")
		os.Exit(0)
	}()
}

// loadEnv reads .env when present; a missing file is not an error
func loadEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Fatalf("Error loading %s: %v", path, err)
	}
	log.Printf("✓ Loaded env file: %s", path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	envFile := flag.String("env", ".env", "Optional env file with OSVIZ_* settings")
	addrFlag := flag.String("addr", "", "Listen address (overrides OSVIZ_ADDR)")
	flag.Parse()
	loadEnv(*envFile)

	addr := envOr("OSVIZ_ADDR", ":8080")
	if *addrFlag != "" {
		addr = *addrFlag
	}
	templateDir := envOr("OSVIZ_TEMPLATE_DIR", "templates")

	templatePath := filepath.Join(templateDir, "index.html")
	indexTemplate, err := template.ParseFiles(templatePath)
	if err != nil {
		log.Fatalf("Error loading template: %v", err)
	}
	log.Printf("✓ Loaded template: %s", templatePath)

	initPrometheusMetrics(prometheus.DefaultRegisterer)
	srv := &server{index: indexTemplate}

	log.Printf("🚀 Server starting on http://localhost%s", addr)
	log.Printf("📡 WebSocket endpoint: ws://localhost%s/ws", addr)
	log.Printf("📈 Metrics endpoint: http://localhost%s/metrics", addr)
	log.Printf("🛑 Shutdown endpoint: http://localhost%s/quitquitquit", addr)
	log.Fatal(http.ListenAndServe(addr, srv.routes()))
}
