package invitationapimodels

import (
	streamapimodels "admission-backend/models/api/stream"
	dbmodels "admission-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type IssueRequest struct {
	ApplicantID string   `json:"applicant_id"`
	StreamIDs   []string `json:"stream_ids"`
}

func (r IssueRequest) Validate() error {
	if r.ApplicantID == "" {
		return errors.New("не указан кандидат")
	}
	if len(r.StreamIDs) == 0 {
		return errors.New("не указаны потоки собеседований")
	}
	return nil
}

type ClaimRequest struct {
	SlotID string `json:"slot_id"`
}

func (r ClaimRequest) Validate() error {
	if r.SlotID == "" {
		return errors.New("не указан слот")
	}
	return nil
}

// InvitationView - публичная страница выбора слота
type InvitationView struct {
	ApplicantName string                     `json:"applicant_name"`
	ExpiredAt     time.Time                  `json:"expired_at"`
	Used          bool                       `json:"used"`
	Expired       bool                       `json:"expired"`
	Slots         []streamapimodels.SlotView `json:"slots"`
}

func InvitationConvert(rec dbmodels.InterviewInvitation, freeSlots []dbmodels.InterviewSlot, now time.Time) InvitationView {
	view := InvitationView{
		ExpiredAt: rec.ExpiredAt,
		Used:      rec.IsUsed(),
		Expired:   rec.IsExpired(now),
	}
	if rec.Applicant != nil {
		view.ApplicantName = rec.Applicant.GetFullName()
	}
	view.Slots = make([]streamapimodels.SlotView, 0, len(freeSlots))
	for _, slot := range freeSlots {
		view.Slots = append(view.Slots, streamapimodels.SlotConvert(slot))
	}
	return view
}
