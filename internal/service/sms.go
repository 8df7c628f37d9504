package service

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender pushes a short confirmation text through Twilio. It is a side
// notification next to the email: failures are logged by the caller and
// never affect the dispatch outcome.
type SMSSender struct {
	accountSID string
	authToken  string
	from       string
}

func NewSMSSender(accountSID, authToken, from string) *SMSSender {
	return &SMSSender{accountSID: accountSID, authToken: authToken, from: from}
}

func (s *SMSSender) Send(to, message string) error {
	if s.accountSID == "" || s.authToken == "" || s.from == "" {
		return fmt.Errorf("twilio credentials not fully configured")
	}
	if !strings.HasPrefix(to, "+") {
		return fmt.Errorf("destination number %q is not E.164", to)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.accountSID,
		Password: s.authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send SMS: %w", err)
	}
	return nil
}
