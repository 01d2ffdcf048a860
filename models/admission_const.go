package models

type ApplicantStatus string

const (
	ApplicantStatusNew                 ApplicantStatus = "NEW"
	ApplicantStatusOnlineTest          ApplicantStatus = "ONLINE_TEST"
	ApplicantStatusExam                ApplicantStatus = "EXAM"
	ApplicantStatusRejectedByExam      ApplicantStatus = "REJECTED_BY_EXAM"
	ApplicantStatusToBeScheduled       ApplicantStatus = "INTERVIEW_TOBE_SCHEDULED"
	ApplicantStatusInterviewScheduled  ApplicantStatus = "INTERVIEW_SCHEDULED"
	ApplicantStatusInterviewCompleted  ApplicantStatus = "INTERVIEW_COMPLETED"
	ApplicantStatusAccept              ApplicantStatus = "ACCEPT"
	ApplicantStatusAcceptIf            ApplicantStatus = "ACCEPT_IF"
	ApplicantStatusVolunteer           ApplicantStatus = "VOLUNTEER"
	ApplicantStatusRejectedByInterview ApplicantStatus = "REJECTED_BY_INTERVIEW"
	ApplicantStatusTheyRefused         ApplicantStatus = "THEY_REFUSED"
)

// IsFinal - финальный статус не перезаписывается автоматической синхронизацией
func (s ApplicantStatus) IsFinal() bool {
	switch s {
	case ApplicantStatusAccept,
		ApplicantStatusAcceptIf,
		ApplicantStatusVolunteer,
		ApplicantStatusRejectedByInterview,
		ApplicantStatusTheyRefused:
		return true
	}
	return false
}

var applicantStatusHumanName = map[ApplicantStatus]string{
	ApplicantStatusNew:                 "Новый",
	ApplicantStatusOnlineTest:          "Онлайн-тест",
	ApplicantStatusExam:                "Экзамен",
	ApplicantStatusRejectedByExam:      "Отклонён по экзамену",
	ApplicantStatusToBeScheduled:       "Ожидает назначения собеседования",
	ApplicantStatusInterviewScheduled:  "Собеседование назначено",
	ApplicantStatusInterviewCompleted:  "Собеседование завершено",
	ApplicantStatusAccept:              "Принят",
	ApplicantStatusAcceptIf:            "Принят условно",
	ApplicantStatusVolunteer:           "Вольнослушатель",
	ApplicantStatusRejectedByInterview: "Отклонён по собеседованию",
	ApplicantStatusTheyRefused:         "Отказался сам",
}

func (s ApplicantStatus) ToHuman() string {
	if human, exist := applicantStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type InterviewStatus string

const (
	InterviewStatusApproval  InterviewStatus = "APPROVAL"  // ожидает согласования кураторов
	InterviewStatusApproved  InterviewStatus = "APPROVED"  // согласовано
	InterviewStatusCompleted InterviewStatus = "COMPLETED" // все собеседующие оставили комментарии
	InterviewStatusCanceled  InterviewStatus = "CANCELED"
	InterviewStatusDeferred  InterviewStatus = "DEFERRED"
)

var interviewStatusHumanName = map[InterviewStatus]string{
	InterviewStatusApproval:  "На согласовании",
	InterviewStatusApproved:  "Согласовано",
	InterviewStatusCompleted: "Завершено",
	InterviewStatusCanceled:  "Отменено",
	InterviewStatusDeferred:  "Отложено",
}

func (s InterviewStatus) ToHuman() string {
	if human, exist := interviewStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type InterviewSection string

const (
	SectionAllInOne       InterviewSection = "all_in_one"
	SectionMathPrograms   InterviewSection = "math_programs"
	SectionDataScience    InterviewSection = "data_science"
	SectionSoftwareEng    InterviewSection = "software_engineering"
	SectionRobotics       InterviewSection = "robotics"
)

type InterviewFormat string

const (
	InterviewFormatOffline InterviewFormat = "offline"
	InterviewFormatOnline  InterviewFormat = "online"
)

type EmailJobKind string

const (
	EmailJobInvitation EmailJobKind = "invitation"
	EmailJobReminder   EmailJobKind = "reminder"
	EmailJobFeedback   EmailJobKind = "feedback"
)

type CampaignBranch string

const (
	BranchSPB      CampaignBranch = "spb"
	BranchNSK      CampaignBranch = "nsk"
	BranchDistance CampaignBranch = "distance"
)
