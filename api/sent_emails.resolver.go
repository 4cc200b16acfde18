package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type sentEmailResponse struct {
	ID        int32     `json:"id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sentAt"`
}

func (m ApiHandler) listSentEmails(c *gin.Context) {
	sentEmails, err := m.SessionApp.ListSentEmails()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []sentEmailResponse{}
	for _, e := range sentEmails {
		out = append(out, sentEmailResponse{
			ID:        e.ID,
			Recipient: e.Recipient,
			Subject:   e.Subject,
			Content:   e.Content,
			SentAt:    e.SentAt,
		})
	}

	c.JSON(200, out)
}
