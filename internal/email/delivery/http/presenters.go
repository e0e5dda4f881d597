package http

import "nurse-manager/internal/email"

type sendReq struct {
	To      []string `json:"to"      binding:"required,min=1,dive,email"`
	Subject string   `json:"subject" binding:"required,max=200"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

func (r sendReq) toInput() email.SendInput {
	return email.SendInput{To: r.To, Subject: r.Subject, Text: r.Text, HTML: r.HTML}
}

type scheduleNotificationReq struct {
	To                []string `json:"to"                 binding:"required,min=1,dive,email"`
	NurseName         string   `json:"nurse_name"         binding:"required"`
	ScheduleDetails   string   `json:"schedule_details"   binding:"required"`
	StartDate         string   `json:"start_date"         binding:"required"`
	EndDate           string   `json:"end_date"           binding:"required"`
	AdditionalMessage string   `json:"additional_message"`
}

func (r scheduleNotificationReq) toInput() email.ScheduleNotificationInput {
	return email.ScheduleNotificationInput{
		To:                r.To,
		NurseName:         r.NurseName,
		ScheduleDetails:   r.ScheduleDetails,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		AdditionalMessage: r.AdditionalMessage,
	}
}

type alertReq struct {
	To             []string `json:"to"              binding:"required,min=1,dive,email"`
	AlertType      string   `json:"alert_type"      binding:"required"`
	AlertDetails   string   `json:"alert_details"   binding:"required"`
	ActionRequired bool     `json:"action_required"`
	ActionText     string   `json:"action_text"`
	DueDate        string   `json:"due_date"`
}

func (r alertReq) toInput() email.AlertInput {
	return email.AlertInput{
		To:             r.To,
		AlertType:      email.AlertType(r.AlertType),
		AlertDetails:   r.AlertDetails,
		ActionRequired: r.ActionRequired,
		ActionText:     r.ActionText,
		DueDate:        r.DueDate,
	}
}

type recipient struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

type batchReq struct {
	Recipients     []recipient `json:"recipients"      binding:"required,min=1,dive"`
	Subject        string      `json:"subject"         binding:"required,max=200"`
	MessageContent string      `json:"message_content" binding:"required"`
}

func (r batchReq) toInput() email.BatchInput {
	to := make([]string, len(r.Recipients))
	for i, rc := range r.Recipients {
		to[i] = rc.Email
	}
	return email.BatchInput{Recipients: to, Subject: r.Subject, MessageContent: r.MessageContent}
}

type resultResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newResultResp(r email.Result) resultResp {
	return resultResp{Success: r.Success, Message: r.Message}
}
