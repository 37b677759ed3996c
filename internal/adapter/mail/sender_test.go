package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage_HeaderInjection(t *testing.T) {
	msg := string(buildMessage("no-reply@crowdoo.local", "owner@example.com",
		"Payout scheduled for Garden\r\nBcc: attacker@evil.test", "line one\nline two"))

	head, body, ok := strings.Cut(msg, "\r\n\r\n")
	assert.True(t, ok)
	assert.Equal(t, "line one\r\nline two", body)

	lines := strings.Split(head, "\r\n")
	assert.Equal(t, []string{
		"From: no-reply@crowdoo.local",
		"To: owner@example.com",
		"Subject: Payout scheduled for Garden Bcc: attacker@evil.test",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}, lines)
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", "Wypłata: Ogród", "x"))
	assert.Contains(t, msg, "Subject: =?utf-8?q?Wyp=C5=82ata:_Ogr=C3=B3d?=\r\n")
}
