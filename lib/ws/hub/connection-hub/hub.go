package connectionhub

import (
	"admission-backend/db"
	staffstore "admission-backend/lib/auth/store"
	"admission-backend/models"
	wsmodels "admission-backend/models/ws"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	NotifyCurators(code, msg string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients:    map[string]clientSession{},
		staffStore: staffstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu         sync.Mutex
	clients    map[string]clientSession //map[userID]
	staffStore staffstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[msg.ToUserID]
	if ok {
		i.trySend(sess, msg)
	}
}

// trySend не блокируется на зависшем клиенте:
// при переполненном буфере сессии сообщение отбрасывается
func (i *impl) trySend(sess clientSession, msg wsmodels.ServerMessage) {
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("user_id", msg.ToUserID).
			WithField("code", msg.Code).
			Warn("клиент не вычитывает сообщения, пуш отброшен")
	}
}

// NotifyCurators рассылает событие всем подключенным кураторам
func (i *impl) NotifyCurators(code, msg string) {
	list, err := i.staffStore.ListByRole(models.UserRoleCurator)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка кураторов")
		return
	}
	now := time.Now().Format("02.01.2006 15:04:05")
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, user := range list {
		sess, ok := i.clients[user.ID]
		if !ok || sess.conn == nil || sess.conn.Conn == nil {
			continue
		}
		i.trySend(sess, wsmodels.ServerMessage{
			ToUserID: user.ID,
			Time:     now,
			Code:     code,
			Msg:      msg,
		})
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
