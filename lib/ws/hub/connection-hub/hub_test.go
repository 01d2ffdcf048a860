package connectionhub

import (
	wsmodels "admission-backend/models/ws"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	t.Run(`сообщение доставляется в свободный буфер`, func(t *testing.T) {
		h := &impl{clients: map[string]clientSession{}}
		sess := clientSession{sendCh: make(chan any, 1), stop: func() {}}
		h.clients["user-1"] = sess

		h.SendMessage(wsmodels.ServerMessage{ToUserID: "user-1", Code: wsmodels.CodeSlotClaimed})
		require.Len(t, sess.sendCh, 1)
	})

	t.Run(`зависший клиент не блокирует хаб`, func(t *testing.T) {
		h := &impl{clients: map[string]clientSession{}}
		sess := clientSession{sendCh: make(chan any, 1), stop: func() {}}
		h.clients["user-1"] = sess
		sess.sendCh <- wsmodels.ServerMessage{} // буфер занят, клиент не вычитывает

		done := make(chan struct{})
		go func() {
			h.SendMessage(wsmodels.ServerMessage{ToUserID: "user-1", Code: wsmodels.CodeSlotClaimed})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("отправка заблокировалась на переполненном буфере")
		}
		require.Len(t, sess.sendCh, 1)
	})

	t.Run(`неизвестный получатель игнорируется`, func(t *testing.T) {
		h := &impl{clients: map[string]clientSession{}}
		h.SendMessage(wsmodels.ServerMessage{ToUserID: "no-such-user"})
	})
}
