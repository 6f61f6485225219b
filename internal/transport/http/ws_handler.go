package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.PracticeService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.PracticeService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type questionPayload struct {
	SessionID string `json:"sessionId"`
	Index     int    `json:"index"`
}

type sessionPayload struct {
	SessionID string `json:"sessionId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives a practice session
// over the connection. A "timeUp" message is pushed when a started session's
// time budget runs out; the session itself stays open.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = r.Header.Get(UserHeader)
	}
	if userID == "" {
		http.Error(w, "missing userId", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[server] ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := newOutbox(16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		failed := false
		for msg := range out.ch {
			if failed {
				continue
			}
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("[server] ws write error: %v", err)
				failed = true
			}
		}
	}()

	var timers []*time.Timer
	send := out.push
	sendErr := func(err error) {
		send(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: publicMessage(err)}})
	}
	sendInvalid := func(kind string) {
		send(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid " + kind + " payload"}})
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var req domain.StartRequest
			if err := json.Unmarshal(inbound.Payload, &req); err != nil {
				if errors.Is(err, domain.ErrInvalidQuestionCount) {
					sendErr(err)
				} else {
					sendInvalid("start")
				}
				continue
			}
			resp, err := h.service.Start(ctx, userID, req)
			if err != nil {
				sendErr(err)
				continue
			}
			send(outboundMessage[any]{Type: "started", Payload: resp})
			timers = append(timers, scheduleTimeUp(out, resp))
		case "question":
			var p questionPayload
			if err := json.Unmarshal(inbound.Payload, &p); err != nil {
				sendInvalid("question")
				continue
			}
			view, err := h.service.Question(ctx, userID, p.SessionID, p.Index)
			if err != nil {
				sendErr(err)
				continue
			}
			send(outboundMessage[any]{Type: "question", Payload: view})
		case "answer":
			var p answerRequest
			if err := json.Unmarshal(inbound.Payload, &p); err != nil || p.QuestionIndex == nil || p.SelectedOption == nil {
				sendInvalid("answer")
				continue
			}
			outcome, err := h.service.SubmitAnswer(ctx, userID, p.SessionID, *p.QuestionIndex, *p.SelectedOption)
			if err != nil {
				sendErr(err)
				continue
			}
			send(outboundMessage[any]{Type: "answerResult", Payload: outcome})
		case "result":
			var p sessionPayload
			if err := json.Unmarshal(inbound.Payload, &p); err != nil || p.SessionID == "" {
				sendInvalid("result")
				continue
			}
			result, err := h.service.Result(ctx, userID, p.SessionID)
			if err != nil {
				sendErr(err)
				continue
			}
			send(outboundMessage[any]{Type: "result", Payload: result})
		default:
			send(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}

	for _, t := range timers {
		t.Stop()
	}
	out.close()
	<-writerDone
}

// outbox serializes writes from the reader loop and timers onto one channel
// drained by the writer goroutine.
type outbox struct {
	mu     sync.Mutex
	ch     chan outboundMessage[any]
	closed bool
}

func newOutbox(size int) *outbox {
	return &outbox{ch: make(chan outboundMessage[any], size)}
}

func (o *outbox) push(msg outboundMessage[any]) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.ch <- msg
}

func (o *outbox) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.closed = true
		close(o.ch)
	}
}

// scheduleTimeUp notifies the client when the session's duration elapses.
func scheduleTimeUp(out *outbox, resp domain.StartResponse) *time.Timer {
	return time.AfterFunc(time.Duration(resp.DurationSeconds)*time.Second, func() {
		out.push(outboundMessage[any]{Type: "timeUp", Payload: sessionPayload{SessionID: resp.SessionID}})
	})
}
