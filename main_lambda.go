//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Garden json.RawMessage `json:"garden"`
}

type solveResponse struct {
	MaxEV    float64  `json:"maxEV"`
	BestMove string   `json:"bestMove,omitempty"`
	Path     []string `json:"path,omitempty"`
	TimeMs   int64    `json:"timeMs"`
	Detail   string   `json:"detail"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if len(req.Garden) == 0 {
		return errResp(400, "missing garden field")
	}

	g, err := ParseGarden(string(req.Garden))
	if err != nil {
		return errResp(400, err.Error())
	}

	sess := NewSession(g)
	start := time.Now()
	res := sess.Suggest()
	elapsed := time.Since(start)

	resp := solveResponse{
		MaxEV:  res.MaxEV,
		Path:   res.Path,
		TimeMs: elapsed.Milliseconds(),
		Detail: FormatResult(g, res),
	}
	if res.HasMove {
		resp.BestMove = res.BestMove.String()
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
