package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"MotionPong/core"
	"MotionPong/logger"

	"github.com/gorilla/websocket"
)

const JointsPath = "/joints"

// HeartBeatTimeout 超過這段時間沒收到任何資料就判定感測器斷線
const HeartBeatTimeout = 15 * time.Second

// JointServer 接收骨架追蹤橋接程式送來的手部座標，寫進 mailbox
type JointServer struct {
	addr     string
	mailbox  *core.Mailbox
	upgrader websocket.Upgrader

	httpServer *http.Server

	mutex   sync.RWMutex
	sensors map[string]*websocket.Conn
}

func NewJointServer(addr string, mailbox *core.Mailbox) *JointServer {
	s := &JointServer{
		addr:    addr,
		mailbox: mailbox,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		sensors: make(map[string]*websocket.Conn),
	}
	s.httpServer = &http.Server{Handler: s.Handler()}
	return s
}

func (s *JointServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(JointsPath, s.handleJoints)
	return mux
}

// SensorCount 目前連線中的感測器數量
func (s *JointServer) SensorCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sensors)
}

func (s *JointServer) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen sensor %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve ctx 取消時關閉服務與所有感測器連線
func (s *JointServer) Serve(ctx context.Context, listener net.Listener) error {
	logger.Log.Info(fmt.Sprintf(logger.SensorListenMsg, listener.Addr().String(), JointsPath))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.SensorShutdownErrorMsg, err))
		}
		s.disconnectAll()
	}()

	err := s.httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *JointServer) handleJoints(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("upgrade %s: %v", r.RemoteAddr, err))
		return
	}

	sensorId := conn.RemoteAddr().String()
	s.mutex.Lock()
	s.sensors[sensorId] = conn
	s.mutex.Unlock()
	logger.Log.Info(fmt.Sprintf(logger.SensorConnectedMsg, sensorId))

	go s.listenSensorPayload(sensorId, conn)
}

func (s *JointServer) listenSensorPayload(sensorId string, conn *websocket.Conn) {
	defer s.connBrokenHandle(sensorId)

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(HeartBeatTimeout))
	})

	for {
		conn.SetReadDeadline(time.Now().Add(HeartBeatTimeout))

		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		packet, err := core.ParsePayload(string(message))
		if err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.SensorPayloadErrorMsg, sensorId, err))
			continue
		}

		switch packet.Header {
		case core.JointFrameHeader:
			packet.Deliver(s.mailbox)

		//回覆心跳封包
		case core.HeartBeatHeader:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(core.GenerateHeartBeatPayload())); err != nil {
				return
			}

		case core.QuitMatchHeader:
			logger.Log.Info(fmt.Sprintf(logger.SensorQuitMsg, sensorId))
			s.mailbox.RequestQuit()
		}
	}
}

func (s *JointServer) connBrokenHandle(sensorId string) {
	s.mutex.Lock()
	if conn, ok := s.sensors[sensorId]; ok {
		conn.Close()
		delete(s.sensors, sensorId)
	}
	s.mutex.Unlock()

	logger.Log.Warn(fmt.Sprintf(logger.SensorConnBrokenMsg, sensorId))
}

func (s *JointServer) disconnectAll() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for sensorId, conn := range s.sensors {
		conn.Close()
		delete(s.sensors, sensorId)
	}
}
