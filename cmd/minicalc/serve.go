package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"minicalc/pkg/session"
)

const defaultAddr = ":8080"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Allow all origins (for development - tighten in production)
	CheckOrigin: func(r *http.Request) bool { return true },
}

// startServer runs the web playground: a page at /, a JSON endpoint at
// /run, and a websocket at /ws. Every submitted program gets a fresh
// session; nothing is shared between requests or messages.
func startServer() {
	// .env is optional; without one the defaults apply.
	_ = godotenv.Load()

	addr := os.Getenv("MINICALC_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/run", handleRun)
	http.HandleFunc("/ws", handleWS)

	fmt.Printf("Playground listening on http://localhost%s\n", addr)
	fmt.Println("   Routes registered:")
	fmt.Println("     GET  /")
	fmt.Println("     POST /run")
	fmt.Println("     GET  /ws")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

type runRequest struct {
	Source string `json:"source"`
}

type lineResult struct {
	Line     int    `json:"line"`
	Text     string `json:"text"`
	Variable string `json:"variable,omitempty"`
	Postfix  string `json:"postfix"`
	Value    int64  `json:"value"`
	Error    string `json:"error,omitempty"`
}

type runResponse struct {
	Lines     []lineResult     `json:"lines"`
	Variables map[string]int64 `json:"variables"`
	Errors    []string         `json:"errors"`
}

func handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Bad request: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		http.Error(w, "No input to process", http.StatusBadRequest)
		return
	}

	report := session.Run(req.Source)

	resp := runResponse{
		Lines:     make([]lineResult, 0, len(report.Outcomes)),
		Variables: report.Variables,
		Errors:    report.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	for _, outcome := range report.Outcomes {
		line := lineResult{
			Line:     outcome.Number,
			Text:     outcome.Text,
			Variable: outcome.Variable,
			Postfix:  outcome.Postfix.String(),
			Value:    outcome.Value,
		}
		if outcome.Err != nil {
			line.Error = outcome.Err.Message
		}
		resp.Lines = append(resp.Lines, line)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		fmt.Fprintf(os.Stderr, "Response encoding failed: %v\n", err)
	}
}

// handleWS answers each received text message, a full program, with the
// rendered report text.
func handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Websocket upgrade failed: %v\n", err)
		return
	}
	defer conn.Close()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var out strings.Builder
		source := string(msg)
		if strings.TrimSpace(source) == "" {
			out.WriteString("No input to process\n")
		} else {
			session.Run(source).Render(&out)
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(out.String())); err != nil {
			return
		}
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>minicalc playground</title></head>
<body>
<h1>minicalc playground</h1>
<p>One statement per line: <code>x = 2 + 3</code> or a bare expression.</p>
<textarea id="source" rows="10" cols="60">x = 5
x + 1</textarea><br>
<button onclick="run()">Process</button>
<pre id="output"></pre>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function (ev) {
  document.getElementById("output").textContent = ev.data;
};
function run() {
  ws.send(document.getElementById("source").value);
}
</script>
</body>
</html>
`
