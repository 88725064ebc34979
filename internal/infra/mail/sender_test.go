package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type MockDialer struct {
	mock.Mock
}

func (m *MockDialer) DialAndSend(msgs ...*gomail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

func testMessage(t entity.InteractionType) usecase.OutboundMessage {
	return usecase.OutboundMessage{
		InteractionID: 1,
		LeadID:        "1",
		LeadName:      "Abebe Bikila",
		LeadEmail:     "abebe@marathon.et",
		Type:          t,
		Subject:       "Proposal",
		Content:       "Line one\n\nLine two",
	}
}

func TestEmailSender_DeliverEmail(t *testing.T) {
	dialer := new(MockDialer)
	var sent *gomail.Message
	dialer.On("DialAndSend", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).([]*gomail.Message)[0]
	}).Return(nil)

	s := NewEmailSender("localhost", 25, "", "", "hello@ethiocodes.et").WithDialer(dialer)
	err := s.Deliver(context.Background(), testMessage(entity.InteractionEmail))
	require.NoError(t, err)

	dialer.AssertNumberOfCalls(t, "DialAndSend", 1)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"abebe@marathon.et"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Proposal"}, sent.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hi Abebe")
}

func TestEmailSender_NonEmailIsNotSent(t *testing.T) {
	dialer := new(MockDialer)
	s := NewEmailSender("localhost", 25, "", "", "hello@ethiocodes.et").WithDialer(dialer)

	for _, typ := range []entity.InteractionType{entity.InteractionSMS, entity.InteractionCall, entity.InteractionNote} {
		assert.NoError(t, s.Deliver(context.Background(), testMessage(typ)))
	}
	dialer.AssertNotCalled(t, "DialAndSend", mock.Anything)
}

func TestEmailSender_SMTPFailure(t *testing.T) {
	dialer := new(MockDialer)
	dialer.On("DialAndSend", mock.Anything).Return(errors.New("connection refused"))

	s := NewEmailSender("localhost", 25, "", "", "hello@ethiocodes.et").WithDialer(dialer)
	err := s.Deliver(context.Background(), testMessage(entity.InteractionEmail))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRenderInteraction_EscapesHTML(t *testing.T) {
	body, err := renderInteraction(InteractionEmailData{Name: "Sara", Content: "<script>x</script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Hi Sara")
}
