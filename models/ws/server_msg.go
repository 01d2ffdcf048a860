package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Code     string `json:"code"`
	Msg      string `json:"msg"`
}

const (
	CodeSlotClaimed        = "SLOT_CLAIMED"
	CodeInterviewCompleted = "INTERVIEW_COMPLETED"
)
