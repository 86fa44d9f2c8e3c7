package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"testing"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeQueueMessage round-trips a MailMessage the way the producer and the
// queue consumer do, so Data arrives generically decoded.
func decodeQueueMessage(t *testing.T, msg domain.MailMessage) domain.MailMessage {
	t.Helper()

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded domain.MailMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func renderMailBody(t *testing.T, msg domain.MailMessage) string {
	t.Helper()

	def, ok := mailTemplates[msg.Type]
	require.True(t, ok)

	data, err := mailTemplateData(msg.Type, msg.Data)
	require.NoError(t, err)

	// The consumer runs from the repo root, the test from cmd/mail.
	tmpl, err := template.ParseFiles("../../" + def.file[2:])
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

func TestRenderCreateUserMail(t *testing.T) {
	msg := decodeQueueMessage(t, domain.MailMessage{
		Type: "create_user",
		To:   "anna.muster@example.org",
		Data: domain.CreateUserMailData{
			FullName: "Anna Muster",
			Username: "anna.muster",
			Password: "Xk2mQp8r",
		},
	})

	body := renderMailBody(t, msg)
	assert.Contains(t, body, "Anna Muster")
	assert.Contains(t, body, "anna.muster")
	assert.Contains(t, body, "Xk2mQp8r")
	assert.NotContains(t, body, "&lt;no value&gt;")
	assert.NotContains(t, body, "<no value>")
}

func TestRenderResetPasswordMail(t *testing.T) {
	msg := decodeQueueMessage(t, domain.MailMessage{
		Type: "reset_password",
		To:   "anna.muster@example.org",
		Data: domain.ResetPasswordMailData{
			FullName:   "Anna Muster",
			OTP:        "483920",
			Expiration: 5,
		},
	})

	body := renderMailBody(t, msg)
	assert.Contains(t, body, "483920")
	assert.Contains(t, body, "5 Minuten")
	assert.NotContains(t, body, "<no value>")
}

func TestRenderShiftAssignedMail(t *testing.T) {
	msg := decodeQueueMessage(t, domain.MailMessage{
		Type: "shift_assigned",
		To:   "anna.muster@example.org",
		Data: domain.ShiftAssignedMailData{
			EmployeeName: "Anna Muster",
			GroupName:    "Haus A",
			ShiftName:    "Frühschicht",
			Date:         "2025-01-06",
			StartTime:    "06:00",
			EndTime:      "14:00",
		},
	})

	body := renderMailBody(t, msg)
	assert.Contains(t, body, "Haus A")
	assert.Contains(t, body, "Frühschicht")
	assert.Contains(t, body, "06:00")
	assert.NotContains(t, body, "<no value>")
}

func TestMailTemplateDataUnknownType(t *testing.T) {
	_, err := mailTemplateData("newsletter", map[string]any{})
	assert.Error(t, err)
}
