package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/bigoptcube/internal/cube"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
	Facelets string `json:"facelets"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve a scramble optimally</h2>
        <form id="solveForm">
            <label>Scramble:</label><br>
            <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>
    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble })
                });
                const result = await response.json();
                const box = document.getElementById('result');
                if (result.error) {
                    box.innerHTML = '<p style="color: red;">' + result.error + '</p>';
                } else {
                    box.innerHTML = '<p><strong>Solution:</strong> ' + result.solution + '</p>';
                }
                box.style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	var cc *cubie.CubieCube
	var err error
	switch {
	case req.Facelets != "":
		cc, err = cubie.FromFacelets(req.Facelets)
	default:
		cc, err = cube.Apply(req.Scramble)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := cc.Verify(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := s.solver.Solve(cc)
	writeJSON(w, http.StatusOK, SolveResponse{
		Solution: result.String(),
		Moves:    len(result.Moves),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
